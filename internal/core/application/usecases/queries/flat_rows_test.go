package queries_test

import (
	"testing"
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatRow(t *testing.T, orderID int64, memberName, itemName string, price, count int) queries.OrderFlatRow {
	t.Helper()
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	require.NoError(t, err)

	return queries.OrderFlatRow{
		OrderID:    orderID,
		MemberName: memberName,
		OrderDate:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Status:     order.Ordered,
		Address:    address,
		ItemName:   itemName,
		OrderPrice: price,
		Count:      count,
	}
}

func TestGroupFlatRows_Empty(t *testing.T) {
	views := queries.GroupFlatRows(nil)
	assert.Empty(t, views)
	assert.NotNil(t, views)
}

func TestGroupFlatRows_SingleOrder(t *testing.T) {
	rows := []queries.OrderFlatRow{
		flatRow(t, 1, "kim", "bookA", 10000, 3),
		flatRow(t, 1, "kim", "bookB", 20000, 1),
	}

	views := queries.GroupFlatRows(rows)

	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].OrderID)
	assert.Equal(t, "kim", views[0].MemberName)
	require.Len(t, views[0].Items, 2)
	assert.Equal(t, "bookA", views[0].Items[0].ItemName)
	assert.Equal(t, "bookB", views[0].Items[1].ItemName)
}

func TestGroupFlatRows_MultipleOrdersKeepFirstAppearanceOrder(t *testing.T) {
	rows := []queries.OrderFlatRow{
		flatRow(t, 2, "kim", "bookA", 10000, 3),
		flatRow(t, 2, "kim", "bookB", 20000, 1),
		flatRow(t, 5, "lee", "bookC", 15000, 2),
	}

	views := queries.GroupFlatRows(rows)

	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].OrderID)
	assert.Equal(t, int64(5), views[1].OrderID)
	assert.Len(t, views[0].Items, 2)
	assert.Len(t, views[1].Items, 1)
}

func TestGroupFlatRows_ViewCountEqualsDistinctOrders(t *testing.T) {
	rows := []queries.OrderFlatRow{
		flatRow(t, 1, "kim", "bookA", 10000, 1),
		flatRow(t, 2, "lee", "bookA", 10000, 1),
		flatRow(t, 1, "kim", "bookB", 20000, 1),
		flatRow(t, 1, "kim", "bookC", 15000, 1),
	}

	views := queries.GroupFlatRows(rows)

	require.Len(t, views, 2)
	// Interleaved rows of the same order still land in one group.
	assert.Len(t, views[0].Items, 3)
	assert.Len(t, views[1].Items, 1)
}

func TestGroupFlatRows_ItemFieldsNeverSplitGroups(t *testing.T) {
	// Two identical item rows on one order stay two lines of one view.
	rows := []queries.OrderFlatRow{
		flatRow(t, 1, "kim", "bookA", 10000, 1),
		flatRow(t, 1, "kim", "bookA", 10000, 1),
	}

	views := queries.GroupFlatRows(rows)

	require.Len(t, views, 1)
	assert.Len(t, views[0].Items, 2)
}
