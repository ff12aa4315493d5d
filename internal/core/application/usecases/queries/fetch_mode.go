package queries

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// FetchMode names one of the strategies for loading order aggregates.
// Modes differ in query count, payload duplication, and paging support;
// callers pick one explicitly, nothing is auto-selected.
type FetchMode int

const (
	// UnknownFetchMode represents an invalid or undefined mode.
	UnknownFetchMode FetchMode = iota

	// FetchRawEntity loads bare order roots; member, delivery, and items are
	// unloaded references whose resolution issues a visible follow-up query
	// per association. Worst case 1 + 2N queries when every root's to-one
	// associations are touched. Supports paging.
	FetchRawEntity

	// FetchToOneJoined eagerly joins member and delivery in the root query;
	// items stay unloaded. 1 query plus N item touches. Supports paging.
	FetchToOneJoined

	// FetchFullCollectionJoined joins everything, items included, in one
	// query and deduplicates the multiplied root rows in memory.
	// Does not support paging.
	FetchFullCollectionJoined

	// FetchToOneJoinedBatch joins member and delivery in the root query and
	// resolves every root's items in one keyed batch lookup. Exactly 2
	// queries per page; the recommended default for paged listings.
	FetchToOneJoinedBatch

	// FetchProjectionPerRoot projects result rows directly, loading each
	// root's items with its own query. 1 + N queries; simple code, fine for
	// single-order lookups. Supports paging.
	FetchProjectionPerRoot

	// FetchProjectionBatched projects result rows directly with one keyed
	// batch lookup for all items. Exactly 2 queries; best for multi-order
	// listings. Supports paging.
	FetchProjectionBatched

	// FetchFlat issues one denormalized join query (one row per order×item
	// pair) and regroups the rows in memory. Cheapest query count, most
	// transfer duplication. Does not support paging.
	FetchFlat
)

// ResultShape is the kind of result a fetch mode produces.
type ResultShape int

const (
	// ShapeUnknown represents an invalid shape.
	ShapeUnknown ResultShape = iota

	// ShapeEntity means entity-shaped aggregates with explicit association
	// references ([]OrderEntity).
	ShapeEntity

	// ShapeView means nested result DTOs ([]OrderView).
	ShapeView

	// ShapeFlat means denormalized flat rows ([]OrderFlatRow).
	ShapeFlat
)

func getFetchModeStrings() map[FetchMode]string {
	return map[FetchMode]string{
		FetchRawEntity:            "raw-entity",
		FetchToOneJoined:          "to-one-joined",
		FetchFullCollectionJoined: "full-collection-joined",
		FetchToOneJoinedBatch:     "to-one-joined-batch",
		FetchProjectionPerRoot:    "projection-per-root",
		FetchProjectionBatched:    "projection-batched",
		FetchFlat:                 "flat",
	}
}

// Validate checks that the mode is one of the defined strategies.
func (m FetchMode) Validate() error {
	if _, ok := getFetchModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fetchMode", fmt.Errorf("%d is not a valid fetch mode", m))
	}
	return nil
}

// String returns the mode's wire name.
func (m FetchMode) String() string {
	if str, ok := getFetchModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// SupportsPaging reports whether the mode can honor an offset/limit window.
// Modes that join the item collection cannot: the join multiplies root rows
// before any cap or offset could apply meaningfully, so any page slicing
// would have to happen after in-memory deduplication, which defeats true
// pagination.
func (m FetchMode) SupportsPaging() bool {
	switch m {
	case FetchFullCollectionJoined, FetchFlat:
		return false
	default:
		return true
	}
}

// Shape returns the kind of result the mode produces.
func (m FetchMode) Shape() ResultShape {
	switch m {
	case FetchRawEntity, FetchToOneJoined, FetchFullCollectionJoined, FetchToOneJoinedBatch:
		return ShapeEntity
	case FetchProjectionPerRoot, FetchProjectionBatched:
		return ShapeView
	case FetchFlat:
		return ShapeFlat
	default:
		return ShapeUnknown
	}
}

// ParseFetchMode converts a wire name back to a FetchMode.
func ParseFetchMode(s string) (FetchMode, error) {
	for mode, str := range getFetchModeStrings() {
		if str == s {
			return mode, nil
		}
	}
	return UnknownFetchMode, errs.NewValueIsInvalidErrorWithCause("fetchMode", fmt.Errorf("%q is not a valid fetch mode", s))
}
