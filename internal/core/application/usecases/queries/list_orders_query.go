package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)

	// ErrPagingNotSupported rejects a page request in a mode whose single
	// joined query cannot page over roots: the item join multiplies rows,
	// so a row-level LIMIT would cut orders mid-collection.
	ErrPagingNotSupported = errors.New("fetch mode does not support paging")
)

// ListOrdersQuery retrieves order aggregates using one of the seven fetch
// modes. The mode decides the result shape and the query count; the search
// filter and the page window mean the same thing in every mode that accepts
// them.
//
// Example:
//
//	page, _ := NewPageRequest(0, 100)
//	query, err := NewListOrdersQuery(OrderSearch{}, FetchProjectionBatched, page)
//	if err != nil {
//	    return fmt.Errorf("failed to build order listing: %w", err)
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for _, view := range result.Views {
//	    fmt.Printf("order %d by %s, %d lines\n",
//	        view.OrderID, view.MemberName, len(view.Items))
//	}
type ListOrdersQuery struct {
	search OrderSearch
	mode   FetchMode
	page   *PageRequest

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query. A nil page means the
// default window (first MaxRows roots) in paging modes. Requesting a page
// in a mode that cannot honor one fails here with ErrPagingNotSupported
// rather than letting the store silently return a wrong page.
func NewListOrdersQuery(search OrderSearch, mode FetchMode, page *PageRequest) (ListOrdersQuery, error) {
	if err := mode.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	if page != nil {
		if err := page.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		if !mode.SupportsPaging() {
			return ListOrdersQuery{}, ErrPagingNotSupported
		}
	}

	return ListOrdersQuery{
		search: search,
		mode:   mode,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search returns the filter applied to the order roots.
func (q ListOrdersQuery) Search() OrderSearch {
	return q.search
}

// Mode returns the fetch mode the listing runs under.
func (q ListOrdersQuery) Mode() FetchMode {
	return q.mode
}

// Page returns the requested page window, or nil for the default window.
func (q ListOrdersQuery) Page() *PageRequest {
	return q.page
}
