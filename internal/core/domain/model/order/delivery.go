package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is the shipment owned one-to-one by an Order. Its lifetime is
// tied to the order: it is created at placement and persisted and loaded
// together with it.
type Delivery struct {
	id      int64
	address kernel.Address
	status  DeliveryStatus

	isConstructed bool
}

// NewDelivery creates a Ready delivery to the given address.
func NewDelivery(address kernel.Address) (*Delivery, error) {
	d := &Delivery{
		status:        Ready,
		isConstructed: true,
	}

	if err := d.setAddress(address); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a persisted delivery from storage.
func RestoreDelivery(id int64, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(address)
	if err != nil {
		return nil, err
	}

	d.id = id
	d.status = status
	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's identifier, or 0 if not yet persisted.
func (d *Delivery) ID() int64 {
	return d.id
}

// Address returns the destination address.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// Status returns the current delivery status.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Complete marks the delivery as carried out.
// Returns an error if the delivery is not in Ready status.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}
