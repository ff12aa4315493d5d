// Package order provides the order aggregate: the root Order entity together
// with its owned Delivery and OrderItem collection, treated as one
// consistency and retrieval unit.
//
// Key business rules:
//   - An order always belongs to exactly one member and owns exactly one delivery
//   - The item collection is non-empty once the order is placed
//   - Item prices and quantities are snapshots frozen at placement time
//   - Deliveries move Ready -> Completed; Completed is final
//
// Stock adjustment and order cancellation rules are owned by a surrounding
// layer; this package only models the states they produce so stored orders
// of every status can be retrieved and filtered.
package order
