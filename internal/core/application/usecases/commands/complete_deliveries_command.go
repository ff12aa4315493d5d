package commands

import (
	"errors"
	"time"

	"shop/internal/pkg/guard"
)

var (
	ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
		"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// CompleteDeliveriesCommand represents a request to complete every ready
// delivery of orders placed before the cutoff time. Issued periodically by
// the delivery completion job.
type CompleteDeliveriesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCompleteDeliveriesCommand creates a delivery completion command for
// orders placed before the given cutoff.
func NewCompleteDeliveriesCommand(cutoff time.Time) (CompleteDeliveriesCommand, error) {
	if cutoff.IsZero() {
		return CompleteDeliveriesCommand{}, ErrCutoffIsRequired
	}

	return CompleteDeliveriesCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveriesCommandIsNotConstructed if validation fails.
func (c CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveriesCommandIsNotConstructed)
}

// Cutoff returns the placement time threshold.
func (c CompleteDeliveriesCommand) Cutoff() time.Time {
	return c.cutoff
}
