package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrMemberIDIsInvalid   = errors.New("member id must be greater than 0")
	ErrOrderLinesAreEmpty  = errors.New("at least one order line is required")
	ErrOrderLineIsInvalid  = errors.New("order line must reference an item and a positive count")
)

// OrderLine is one requested item and quantity within an order placement.
type OrderLine struct {
	ItemID int64
	Count  int
}

// PlaceOrderCommand represents a request to place an order for a member.
// The order's delivery goes to the member's current home address, and each
// line's price is snapshotted from the catalog at placement time.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(memberID, []OrderLine{
//	    {ItemID: bookID, Count: 3},
//	    {ItemID: albumID, Count: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	memberID int64
	lines    []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates the member id and that every line names an item with a
// positive count.
func NewPlaceOrderCommand(memberID int64, lines []OrderLine) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setMemberID(memberID),
		orderCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// MemberID returns the ordering member's id.
func (c PlaceOrderCommand) MemberID() int64 {
	return c.memberID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *PlaceOrderCommand) setMemberID(memberID int64) error {
	if memberID <= 0 {
		return ErrMemberIDIsInvalid
	}

	c.memberID = memberID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreEmpty
	}

	for _, line := range lines {
		if line.ItemID <= 0 || line.Count <= 0 {
			return ErrOrderLineIsInvalid
		}
	}

	c.lines = lines
	return nil
}
