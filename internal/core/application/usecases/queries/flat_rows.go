package queries

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderFlatRow is one denormalized join row of the flat mode: one row per
// (order, item) pair, with the order-level fields repeated on every row of
// the same order.
type OrderFlatRow struct {
	OrderID    int64
	MemberName string
	OrderDate  time.Time
	Status     order.Status
	Address    kernel.Address
	ItemName   string
	OrderPrice int
	Count      int
}

// flatGroupKey is the composite grouping key of the degrouper. It is
// derived from the order-level fields only, never from item fields, so rows
// of the same order collapse into one group regardless of item count.
type flatGroupKey struct {
	orderID    int64
	memberName string
	orderDate  time.Time
	status     order.Status
	address    kernel.Address
}

// GroupFlatRows regroups denormalized join rows into nested order views.
//
// Rows are grouped by the order-level composite key; within each group the
// item-level fields are projected into the view's item list in row arrival
// order. The groups themselves keep first-appearance order. The emitted
// view count always equals the number of distinct orders in the input,
// never the number of input rows.
func GroupFlatRows(rows []OrderFlatRow) []OrderView {
	views := make([]OrderView, 0)
	index := make(map[flatGroupKey]int)

	for _, row := range rows {
		key := flatGroupKey{
			orderID:    row.OrderID,
			memberName: row.MemberName,
			orderDate:  row.OrderDate,
			status:     row.Status,
			address:    row.Address,
		}

		i, ok := index[key]
		if !ok {
			i = len(views)
			index[key] = i
			views = append(views, OrderView{
				OrderID:    row.OrderID,
				MemberName: row.MemberName,
				OrderDate:  row.OrderDate,
				Status:     row.Status,
				Address:    row.Address,
				Items:      make([]OrderItemView, 0, 1),
			})
		}

		views[i].Items = append(views[i].Items, OrderItemView{
			ItemName:   row.ItemName,
			OrderPrice: row.OrderPrice,
			Count:      row.Count,
		})
	}

	return views
}
