package queries

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"shop/internal/core/domain/model/order"
)

// OrderSearch is the transient filter over the order listing. Both fields
// are optional; an absent or blank field adds no constraint and is never an
// error. Set fields combine conjunctively.
type OrderSearch struct {
	// Status, when set, requires exact equality on the order status.
	Status *order.Status

	// MemberName, when non-blank after trimming, requires a substring match
	// on the owning member's name.
	MemberName string
}

// applyTo adds the filter's conditions to a select over `orders o` joined to
// `members m`. An empty filter returns the builder unchanged, matching all
// rows.
func (s OrderSearch) applyTo(qb sq.SelectBuilder) sq.SelectBuilder {
	if s.Status != nil {
		qb = qb.Where(sq.Eq{"o.status": s.Status.String()})
	}
	if name := strings.TrimSpace(s.MemberName); name != "" {
		qb = qb.Where(sq.Like{"m.name": "%" + name + "%"})
	}
	return qb
}
