package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListOrdersResult carries the outcome of an order listing. Exactly one of
// the three result slices is populated, matching the mode's shape: entity
// modes fill Entities, view modes fill Views, the flat mode fills FlatRows.
type ListOrdersResult struct {
	Mode FetchMode

	Entities []OrderEntity
	Views    []OrderView
	FlatRows []OrderFlatRow
}

// ListOrdersQueryHandler executes order listings against the read store.
// Every mode reads through raw SQL; no aggregate is materialized on the
// write model's path.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(OrderSearch{}, FetchFlat, nil)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	views := GroupFlatRows(result.FlatRows)
//	fmt.Printf("%d orders from %d flat rows\n", len(views), len(result.FlatRows))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle runs the listing in the query's fetch mode. Results are ordered by
// root id in every mode, so the same filter yields the same orders in the
// same sequence regardless of mode.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResult, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResult{}, err
	}

	result := ListOrdersResult{Mode: query.Mode()}
	search := query.Search()
	window := windowFor(query.Page())

	switch query.Mode() {
	case FetchRawEntity:
		entities, err := newEntityLoader(h.db).loadRoots(ctx, search, window)
		if err != nil {
			return ListOrdersResult{}, err
		}
		result.Entities = entities

	case FetchToOneJoined:
		entities, err := newEntityLoader(h.db).loadRootsToOneJoined(ctx, search, window)
		if err != nil {
			return ListOrdersResult{}, err
		}
		result.Entities = entities

	case FetchFullCollectionJoined:
		entities, err := newEntityLoader(h.db).loadFullCollectionJoined(ctx, search)
		if err != nil {
			return ListOrdersResult{}, err
		}
		result.Entities = entities

	case FetchToOneJoinedBatch:
		loader := newEntityLoader(h.db)
		entities, err := loader.loadRootsToOneJoined(ctx, search, window)
		if err != nil {
			return ListOrdersResult{}, err
		}
		if err = loader.attachItemsBatch(ctx, entities); err != nil {
			return ListOrdersResult{}, err
		}
		result.Entities = entities

	case FetchProjectionPerRoot:
		views, err := newProjectionLoader(h.db).loadViewsPerRoot(ctx, search, window)
		if err != nil {
			return ListOrdersResult{}, err
		}
		result.Views = views

	case FetchProjectionBatched:
		views, err := newProjectionLoader(h.db).loadViewsBatched(ctx, search, window)
		if err != nil {
			return ListOrdersResult{}, err
		}
		result.Views = views

	case FetchFlat:
		flat, err := newProjectionLoader(h.db).loadFlatRows(ctx, search)
		if err != nil {
			return ListOrdersResult{}, err
		}
		result.FlatRows = flat

	default:
		return ListOrdersResult{}, fmt.Errorf("unhandled fetch mode: %s", query.Mode())
	}

	return result, nil
}
