package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DeliveryStatus represents the state of an order's delivery.
//
// State transitions:
//
//	Ready ──> Completed
//
// Completed is a final state.
type DeliveryStatus int

const (
	// UnknownDeliveryStatus represents an invalid or undefined status.
	UnknownDeliveryStatus DeliveryStatus = iota

	// Ready is the initial status of a delivery created at order placement.
	Ready

	// Completed indicates the delivery has been carried out.
	Completed
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownDeliveryStatus: "Unknown",
		Ready:                 "Ready",
		Completed:             "Completed",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		Ready:     "Ready",
		Completed: "Completed",
	}
}

// Validate checks that the status is one of the defined values.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This is also the value persisted in the deliveries table.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseDeliveryStatus converts a persisted status value back to a DeliveryStatus.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for status, str := range getValidDeliveryStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownDeliveryStatus, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Complete transitions the status to Completed.
// Only Ready deliveries can be completed.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}
