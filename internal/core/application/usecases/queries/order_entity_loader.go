package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/lazy"
)

// entityLoader loads entity-shaped order aggregates. One loader serves one
// retrieval call: the member and delivery maps below are the request-scoped
// identity map backing lazy resolution — an association fetched once during
// the call is never refetched within it — and are never shared across
// requests.
type entityLoader struct {
	db         *gorm.DB
	members    map[int64]MemberSummary
	deliveries map[int64]DeliverySummary
}

func newEntityLoader(db *gorm.DB) *entityLoader {
	return &entityLoader{
		db:         db,
		members:    make(map[int64]MemberSummary),
		deliveries: make(map[int64]DeliverySummary),
	}
}

// rootSelect is the base select over order roots. The member join is always
// present because the search filter may constrain the member's name; only
// the selected columns vary per mode.
func rootSelect(columns ...string) sq.SelectBuilder {
	return sq.Select(columns...).
		From("orders o").
		Join("members m ON m.id = o.member_id")
}

// loadRoots loads bare order roots: no association is populated. Member,
// delivery, and items come back as deferred references; touching one costs
// a follow-up query. This is the worst strategy query-count-wise and is
// kept faithful on purpose — it is the baseline the other modes are
// measured against.
func (l *entityLoader) loadRoots(ctx context.Context, search OrderSearch, window pageWindow) ([]OrderEntity, error) {
	qb := rootSelect("o.id", "o.number", "o.member_id", "o.delivery_id", "o.status", "o.ordered_at")
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

	entities := make([]OrderEntity, 0)
	for rows.Next() {
		var (
			id, memberID, deliveryID int64
			number                   uuid.UUID
			statusStr                string
			orderedAt                time.Time
		)
		if err = rows.Scan(&id, &number, &memberID, &deliveryID, &statusStr, &orderedAt); err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(statusStr)
		if statusErr != nil {
			return nil, statusErr
		}

		entities = append(entities, OrderEntity{
			ID:        id,
			Number:    number,
			MemberID:  memberID,
			Status:    status,
			OrderedAt: orderedAt,
			Member:    lazy.Deferred(l.memberResolver(memberID)),
			Delivery:  lazy.Deferred(l.deliveryResolver(deliveryID)),
			Items:     lazy.Deferred(l.itemsResolver(id)),
		})
	}

	return entities, rows.Err()
}

// loadRootsToOneJoined loads order roots with member and delivery eagerly
// joined in the same query. To-one joins never multiply root rows, so this
// costs nothing over the bare root query; the item collection stays
// deferred.
func (l *entityLoader) loadRootsToOneJoined(ctx context.Context, search OrderSearch, window pageWindow) ([]OrderEntity, error) {
	qb := rootSelect(
		"o.id", "o.number", "o.member_id", "o.delivery_id", "o.status", "o.ordered_at",
		"m.name", "m.city", "m.street", "m.zipcode",
		"d.status", "d.city", "d.street", "d.zipcode",
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

	entities := make([]OrderEntity, 0)
	for rows.Next() {
		root, scanErr := l.scanJoinedRoot(rows, nil)
		if scanErr != nil {
			return nil, scanErr
		}

		root.Items = lazy.Deferred(l.itemsResolver(root.ID))
		entities = append(entities, *root)
	}

	return entities, rows.Err()
}

// loadFullCollectionJoined loads complete aggregates in a single query
// joining member, delivery, order items, and items. The item join
// multiplies root rows (one row per item), so the rows are deduplicated
// back to distinct orders here, preserving each order's full item list.
//
// The row cap and any offset are structurally inapplicable: the store
// delivers the full multiplied result set and slicing it after in-memory
// deduplication would not be real pagination. Callers requesting a page in
// this mode are rejected up front (see NewListOrdersQuery).
func (l *entityLoader) loadFullCollectionJoined(ctx context.Context, search OrderSearch) ([]OrderEntity, error) {
	qb := rootSelect(
		"o.id", "o.number", "o.member_id", "o.delivery_id", "o.status", "o.ordered_at",
		"m.name", "m.city", "m.street", "m.zipcode",
		"d.status", "d.city", "d.street", "d.zipcode",
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

	entities := make([]OrderEntity, 0)
	itemLists := make([][]OrderItemView, 0)
	seen := make(map[int64]int)

	for rows.Next() {
		var itemRow OrderItemView
		root, scanErr := l.scanJoinedRoot(rows, &itemRow)
		if scanErr != nil {
			return nil, scanErr
		}

		i, ok := seen[root.ID]
		if !ok {
			i = len(entities)
			seen[root.ID] = i
			entities = append(entities, *root)
			itemLists = append(itemLists, make([]OrderItemView, 0, 1))
		}
		itemLists[i] = append(itemLists[i], itemRow)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range entities {
		entities[i].Items = lazy.Loaded(itemLists[i])
	}

	return entities, nil
}

// attachItemsBatch resolves the item collections of a page of roots with
// exactly one keyed batch lookup, regardless of page size: collect the root
// ids, select every matching item row with a single IN clause, group the
// rows by order id, and attach each order's slice. An order with no
// matching items gets an empty slice, never a missing entry.
func (l *entityLoader) attachItemsBatch(ctx context.Context, entities []OrderEntity) error {
	if len(entities) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(entities))
	for i := range entities {
		ids = append(ids, entities[i].ID)
	}

	grouped, err := l.loadItemsByOrderIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range entities {
		items, ok := grouped[entities[i].ID]
		if !ok {
			items = []OrderItemView{}
		}
		entities[i].Items = lazy.Loaded(items)
	}

	return nil
}

// scanJoinedRoot scans one row of a member+delivery joined root query into
// an OrderEntity with loaded to-one references, seeding the identity maps.
// When itemRow is non-nil the trailing item columns are scanned into it.
func (l *entityLoader) scanJoinedRoot(rows *sql.Rows, itemRow *OrderItemView) (*OrderEntity, error) {
	var (
		id, memberID, deliveryID                   int64
		number                                     uuid.UUID
		statusStr, memberName                      string
		mCity, mStreet, mZipcode                   string
		deliveryStatusStr, dCity, dStreet, dZipcode string
		orderedAt                                  time.Time
	)

	dest := []any{
		&id, &number, &memberID, &deliveryID, &statusStr, &orderedAt,
		&memberName, &mCity, &mStreet, &mZipcode,
		&deliveryStatusStr, &dCity, &dStreet, &dZipcode,
	}
	if itemRow != nil {
		dest = append(dest, &itemRow.ItemName, &itemRow.OrderPrice, &itemRow.Count)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(statusStr)
	if err != nil {
		return nil, err
	}

	memberAddress, err := kernel.NewAddress(mCity, mStreet, mZipcode)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := order.ParseDeliveryStatus(deliveryStatusStr)
	if err != nil {
		return nil, err
	}

	deliveryAddress, err := kernel.NewAddress(dCity, dStreet, dZipcode)
	if err != nil {
		return nil, err
	}

	m := MemberSummary{ID: memberID, Name: memberName, Address: memberAddress}
	d := DeliverySummary{ID: deliveryID, Status: deliveryStatus, Address: deliveryAddress}
	l.members[memberID] = m
	l.deliveries[deliveryID] = d

	return &OrderEntity{
		ID:        id,
		Number:    number,
		MemberID:  memberID,
		Status:    status,
		OrderedAt: orderedAt,
		Member:    lazy.Loaded(m),
		Delivery:  lazy.Loaded(d),
	}, nil
}

// itemSelect is the base select over order lines joined to their catalog
// items, ordered by line id so item order is stable and follows insertion.
func itemSelect() sq.SelectBuilder {
	return sq.Select("oi.order_id", "i.name", "oi.order_price", "oi.count").
		From("order_items oi").
		Join("items i ON i.id = oi.item_id").
		OrderBy("oi.id")
}

// loadItemsByOrderIDs loads the item views of every given order in one
// query and groups them by order id.
func (l *entityLoader) loadItemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]OrderItemView, error) {
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

	return grouped, rows.Err()
}

// memberResolver returns the resolver behind an unloaded member reference.
// The identity map short-circuits repeat resolutions within the request.
func (l *entityLoader) memberResolver(memberID int64) lazy.ResolveFunc[MemberSummary] {
	return func(ctx context.Context) (MemberSummary, error) {
		if m, ok := l.members[memberID]; ok {
			return m, nil
		}

		sqlStr, args, err := sq.Select("m.name", "m.city", "m.street", "m.zipcode").
			From("members m").
			Where(sq.Eq{"m.id": memberID}).
			ToSql()
		if err != nil {
			return MemberSummary{}, err
		}

		var name, city, street, zipcode string
		row := l.db.WithContext(ctx).Raw(sqlStr, args...).Row()
		if err = row.Scan(&name, &city, &street, &zipcode); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return MemberSummary{}, errs.NewObjectNotFoundError("member", memberID)
			}
			return MemberSummary{}, err
		}

		address, err := kernel.NewAddress(city, street, zipcode)
		if err != nil {
			return MemberSummary{}, err
		}

		m := MemberSummary{ID: memberID, Name: name, Address: address}
		l.members[memberID] = m
		return m, nil
	}
}

// deliveryResolver returns the resolver behind an unloaded delivery
// reference.
func (l *entityLoader) deliveryResolver(deliveryID int64) lazy.ResolveFunc[DeliverySummary] {
	return func(ctx context.Context) (DeliverySummary, error) {
		if d, ok := l.deliveries[deliveryID]; ok {
			return d, nil
		}

		sqlStr, args, err := sq.Select("d.status", "d.city", "d.street", "d.zipcode").
			From("deliveries d").
			Where(sq.Eq{"d.id": deliveryID}).
			ToSql()
		if err != nil {
			return DeliverySummary{}, err
		}

		var statusStr, city, street, zipcode string
		row := l.db.WithContext(ctx).Raw(sqlStr, args...).Row()
		if err = row.Scan(&statusStr, &city, &street, &zipcode); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return DeliverySummary{}, errs.NewObjectNotFoundError("delivery", deliveryID)
			}
			return DeliverySummary{}, err
		}

		status, err := order.ParseDeliveryStatus(statusStr)
		if err != nil {
			return DeliverySummary{}, err
		}

		address, err := kernel.NewAddress(city, street, zipcode)
		if err != nil {
			return DeliverySummary{}, err
		}

		d := DeliverySummary{ID: deliveryID, Status: status, Address: address}
		l.deliveries[deliveryID] = d
		return d, nil
	}
}

// itemsResolver returns the resolver behind an unloaded item collection.
func (l *entityLoader) itemsResolver(orderID int64) lazy.ResolveFunc[[]OrderItemView] {
	return func(ctx context.Context) ([]OrderItemView, error) {
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
}
