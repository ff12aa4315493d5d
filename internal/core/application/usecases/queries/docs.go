// Package queries contains the read side of the application: the
// order-aggregate retrieval layer.
//
// Loading an order aggregate (root order, member, delivery, item lines with
// their catalog items) from a relational store is a trade-off between query
// count, payload duplication, and paging support. Joining to-one
// associations (member, delivery) is free: it never multiplies root rows.
// Joining the to-many item collection multiplies root rows, so it either
// forces in-memory deduplication and kills paging, or has to be replaced by
// a separate keyed batch lookup. This package exposes the resulting
// strategies as seven explicit fetch modes (see FetchMode) instead of
// auto-selecting one, so callers make the cost/capability trade-off
// themselves:
//
//	mode                    queries (N roots)   paging
//	raw-entity              1 + 2N on touch     yes
//	to-one-joined           1 (+N item touch)   yes
//	full-collection-joined  1                   no
//	to-one-joined-batch     2                   yes
//	projection-per-root     1 + N               yes
//	projection-batched      2                   yes
//	flat                    1                   no
//
// The layer is read-only and request-scoped: handlers share no state across
// requests, never write, and surface store errors unchanged.
package queries
