// Package kernel contains shared value objects used across domain aggregates.
//
// Currently this is the Address value object, which is embedded by both the
// member aggregate (home address) and the delivery owned by an order
// (destination address). Value objects in this package are immutable, carry
// no identity, and compare by value.
package kernel
