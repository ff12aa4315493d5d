package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// projectionLoader loads view-shaped results: the store is asked only for
// the columns the view needs, and rows land in the view types directly with
// no entity materialization in between.
type projectionLoader struct {
	db *gorm.DB
}

func newProjectionLoader(db *gorm.DB) *projectionLoader {
	return &projectionLoader{db: db}
}

// loadRootViews projects the root level of a page of orders: one query for
// the order, member name, and delivery address columns. Item lists come
// back empty; the caller decides how to fill them.
func (l *projectionLoader) loadRootViews(ctx context.Context, search OrderSearch, window pageWindow) ([]OrderView, error) {
	qb := rootSelect(
		"o.id", "m.name", "o.ordered_at", "o.status",
		"d.city", "d.street", "d.zipcode",
	).Join("deliveries d ON d.id = o.delivery_id")
	qb = search.applyTo(qb).
		OrderBy("o.id").
		Offset(uint64(window.offset)).
		Limit(uint64(window.limit))

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := l.db.WithContext(ctx).Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			view                 OrderView
			statusStr            string
			city, street, zipcode string
			orderedAt            time.Time
		)
		if err = rows.Scan(&view.OrderID, &view.MemberName, &orderedAt, &statusStr, &city, &street, &zipcode); err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(statusStr)
		if statusErr != nil {
			return nil, statusErr
		}

		address, addrErr := kernel.NewAddress(city, street, zipcode)
		if addrErr != nil {
			return nil, addrErr
		}

		view.OrderDate = orderedAt
		view.Status = status
		view.Address = address
		view.Items = []OrderItemView{}
		views = append(views, view)
	}

	return views, rows.Err()
}

// loadViewsPerRoot projects a page of order views, then fills each order's
// item list with its own item query. One root query plus one collection
// query per root.
func (l *projectionLoader) loadViewsPerRoot(ctx context.Context, search OrderSearch, window pageWindow) ([]OrderView, error) {
	views, err := l.loadRootViews(ctx, search, window)
	if err != nil {
		return nil, err
	}

	for i := range views {
		items, itemErr := l.loadItemViews(ctx, views[i].OrderID)
		if itemErr != nil {
			return nil, itemErr
		}
		views[i].Items = items
	}

	return views, nil
}

// loadViewsBatched projects a page of order views and fills every item list
// with a single keyed batch lookup: two queries total for any page size.
func (l *projectionLoader) loadViewsBatched(ctx context.Context, search OrderSearch, window pageWindow) ([]OrderView, error) {
	views, err := l.loadRootViews(ctx, search, window)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(views))
	for i := range views {
		ids = append(ids, views[i].OrderID)
	}

	sqlStr, args, err := itemSelect().Where(sq.Eq{"oi.order_id": ids}).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := l.db.WithContext(ctx).Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[int64][]OrderItemView)
	for rows.Next() {
		var (
			orderID int64
			item    OrderItemView
		)
		if err = rows.Scan(&orderID, &item.ItemName, &item.OrderPrice, &item.Count); err != nil {
			return nil, err
		}
		grouped[orderID] = append(grouped[orderID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		if items, ok := grouped[views[i].OrderID]; ok {
			views[i].Items = items
		}
	}

	return views, nil
}

// loadFlatRows projects everything in one query joined down to the item
// level. Order-level values repeat on every row of the same order; the
// result row count is the total item count, not the order count, which is
// why this mode carries no page window (see NewListOrdersQuery).
func (l *projectionLoader) loadFlatRows(ctx context.Context, search OrderSearch) ([]OrderFlatRow, error) {
	qb := rootSelect(
		"o.id", "m.name", "o.ordered_at", "o.status",
		"d.city", "d.street", "d.zipcode",
		"i.name", "oi.order_price", "oi.count",
	).
		Join("deliveries d ON d.id = o.delivery_id").
		Join("order_items oi ON oi.order_id = o.id").
		Join("items i ON i.id = oi.item_id")
	qb = search.applyTo(qb).OrderBy("o.id", "oi.id")

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := l.db.WithContext(ctx).Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flat := make([]OrderFlatRow, 0)
	for rows.Next() {
		var (
			row                  OrderFlatRow
			statusStr            string
			city, street, zipcode string
			orderedAt            time.Time
		)
		if err = rows.Scan(
			&row.OrderID, &row.MemberName, &orderedAt, &statusStr,
			&city, &street, &zipcode,
			&row.ItemName, &row.OrderPrice, &row.Count,
		); err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(statusStr)
		if statusErr != nil {
			return nil, statusErr
		}

		address, addrErr := kernel.NewAddress(city, street, zipcode)
		if addrErr != nil {
			return nil, addrErr
		}

		row.OrderDate = orderedAt
		row.Status = status
		row.Address = address
		flat = append(flat, row)
	}

	return flat, rows.Err()
}

// loadItemViews loads the item views of a single order.
func (l *projectionLoader) loadItemViews(ctx context.Context, orderID int64) ([]OrderItemView, error) {
	sqlStr, args, err := itemSelect().Where(sq.Eq{"oi.order_id": orderID}).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := l.db.WithContext(ctx).Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			ignored int64
			item    OrderItemView
		)
		if err = rows.Scan(&ignored, &item.ItemName, &item.OrderPrice, &item.Count); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
