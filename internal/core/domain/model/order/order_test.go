package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	require.NoError(t, err)
	return address
}

func testItems(t *testing.T) []*order.OrderItem {
	t.Helper()
	first, err := order.NewOrderItem(1, 10000, 3)
	require.NoError(t, err)
	second, err := order.NewOrderItem(2, 20000, 1)
	require.NoError(t, err)
	return []*order.OrderItem{first, second}
}

func TestNewOrder_ValidInput(t *testing.T) {
	address := testAddress(t)

	newOrder, err := order.NewOrder(7, address, testItems(t))
	require.NoError(t, err)

	assert.Equal(t, int64(0), newOrder.ID())
	assert.NotEqual(t, uuid.Nil, newOrder.Number())
	assert.Equal(t, int64(7), newOrder.MemberID())
	assert.Equal(t, order.Ordered, newOrder.Status())
	assert.WithinDuration(t, time.Now(), newOrder.OrderedAt(), time.Second)

	require.NotNil(t, newOrder.Delivery())
	assert.Equal(t, order.Ready, newOrder.Delivery().Status())
	assert.True(t, newOrder.Delivery().Address().IsEqual(address))
}

func TestNewOrder_UniqueNumbers(t *testing.T) {
	address := testAddress(t)

	first, err := order.NewOrder(1, address, testItems(t))
	require.NoError(t, err)
	second, err := order.NewOrder(1, address, testItems(t))
	require.NoError(t, err)

	assert.NotEqual(t, first.Number(), second.Number())
}

func TestNewOrder_EmptyItems(t *testing.T) {
	_, err := order.NewOrder(1, testAddress(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderItemsAreRequired)
}

func TestNewOrder_InvalidMemberID(t *testing.T) {
	_, err := order.NewOrder(0, testAddress(t), testItems(t))
	require.Error(t, err)
}

func TestOrder_TotalPrice(t *testing.T) {
	newOrder, err := order.NewOrder(1, testAddress(t), testItems(t))
	require.NoError(t, err)

	// 10000*3 + 20000*1
	assert.Equal(t, 50000, newOrder.TotalPrice())
}

func TestOrder_AssignID(t *testing.T) {
	newOrder, err := order.NewOrder(1, testAddress(t), testItems(t))
	require.NoError(t, err)

	require.NoError(t, newOrder.AssignID(42))
	assert.Equal(t, int64(42), newOrder.ID())

	require.Error(t, newOrder.AssignID(43))
}

func TestOrder_CompleteDelivery(t *testing.T) {
	newOrder, err := order.NewOrder(1, testAddress(t), testItems(t))
	require.NoError(t, err)

	require.NoError(t, newOrder.CompleteDelivery())
	assert.Equal(t, order.Completed, newOrder.Delivery().Status())

	require.Error(t, newOrder.CompleteDelivery())
}

func TestNewOrderItem_Validation(t *testing.T) {
	tests := []struct {
		name       string
		itemID     int64
		orderPrice int
		count      int
		wantErr    bool
	}{
		{"valid", 1, 10000, 2, false},
		{"free item", 1, 0, 1, false},
		{"zero item id", 0, 10000, 2, true},
		{"negative price", 1, -1, 2, true},
		{"zero count", 1, 10000, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewOrderItem(tt.itemID, tt.orderPrice, tt.count)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOrderItem_TotalPrice(t *testing.T) {
	orderItem, err := order.NewOrderItem(1, 10000, 3)
	require.NoError(t, err)
	assert.Equal(t, 30000, orderItem.TotalPrice())
}

func TestRestoreOrder(t *testing.T) {
	address := testAddress(t)
	delivery, err := order.RestoreDelivery(5, address, order.Completed)
	require.NoError(t, err)
	orderItem, err := order.RestoreOrderItem(9, 1, 10000, 2)
	require.NoError(t, err)

	number := uuid.New()
	orderedAt := time.Now().Add(-time.Hour)

	restored, err := order.RestoreOrder(11, number, 7, delivery, []*order.OrderItem{orderItem}, order.Ordered, orderedAt)
	require.NoError(t, err)

	assert.Equal(t, int64(11), restored.ID())
	assert.Equal(t, number, restored.Number())
	assert.Equal(t, order.Ordered, restored.Status())
	assert.Equal(t, orderedAt, restored.OrderedAt())
	assert.Equal(t, 20000, restored.TotalPrice())
}
