package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// An order is created in Ordered status. Cancellation exists in the data
// model so cancelled orders can be stored and filtered on, but the
// cancellation business rules (stock restoration and the delivery check)
// belong to a surrounding layer and are not modeled here.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Ordered is the status of a placed order.
	Ordered

	// Cancelled is the status of a cancelled order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Ordered:       "Ordered",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Ordered:   "Ordered",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This is also the value persisted in the orders table.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a persisted status value back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}
