package queries

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// MaxRows is the hard ceiling applied to every query-issuing mode that
// supports paging. It is an admission-control safety valve against unbounded
// result sets, not a configurable backpressure mechanism. The
// full-collection-joined and flat modes cannot enforce it (the item join
// multiplies rows before the cap could apply) and reject paging outright
// instead.
const MaxRows = 1000

var (
	// ErrPageRequestIsNotConstructed is returned when a PageRequest was not
	// created through NewPageRequest.
	ErrPageRequestIsNotConstructed = errors.New("PageRequest must be created via NewPageRequest constructor")
)

// PageRequest is an offset/limit window over a paging-capable listing.
// A limit above MaxRows is clamped to it; the cap always wins.
type PageRequest struct {
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewPageRequest creates a page window. Offset must be non-negative and
// limit positive.
func NewPageRequest(offset, limit int) (PageRequest, error) {
	if offset < 0 {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("offset", offset)
	}
	if limit <= 0 {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("limit", limit)
	}
	if limit > MaxRows {
		limit = MaxRows
	}

	return PageRequest{
		offset: offset,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PageRequest was created through the constructor.
func (p PageRequest) Validate() error {
	return p.guard.Validate(ErrPageRequestIsNotConstructed)
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.offset
}

// Limit returns the maximum number of rows to return.
func (p PageRequest) Limit() int {
	return p.limit
}

// pageWindow is the effective window applied to root queries. Without an
// explicit page request the window starts at 0 and spans the row cap.
type pageWindow struct {
	offset int
	limit  int
}

func windowFor(page *PageRequest) pageWindow {
	if page == nil {
		return pageWindow{offset: 0, limit: MaxRows}
	}
	return pageWindow{offset: page.Offset(), limit: page.Limit()}
}
