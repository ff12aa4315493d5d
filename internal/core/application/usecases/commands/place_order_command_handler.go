package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Looks up the member and the requested items, snapshots each item's price
// into the order line, and persists the order with a ready delivery to the
// member's address.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(memberID, []OrderLine{{ItemID: bookID, Count: 2}})
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory because placement reads members and items and
// writes orders inside one transaction.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the store
// assigned order id. An unknown member or item fails the whole placement.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderingMember, err := uow.MemberRepository().Get(ctx, cmd.MemberID())
	if err != nil {
		return 0, err
	}

	itemIDs := make([]int64, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		itemIDs = append(itemIDs, line.ItemID)
	}

	catalogItems, err := uow.ItemRepository().GetByIDs(ctx, itemIDs)
	if err != nil {
		return 0, err
	}

	pricesByID := make(map[int64]int, len(catalogItems))
	for _, catalogItem := range catalogItems {
		pricesByID[catalogItem.ID()] = catalogItem.Price()
	}

	orderItems := make([]*order.OrderItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		price, ok := pricesByID[line.ItemID]
		if !ok {
			return 0, errs.NewObjectNotFoundError("item", line.ItemID)
		}

		orderItem, itemErr := order.NewOrderItem(line.ItemID, price, line.Count)
		if itemErr != nil {
			return 0, itemErr
		}
		orderItems = append(orderItems, orderItem)
	}

	newOrder, err := order.NewOrder(orderingMember.ID(), orderingMember.Address(), orderItems)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
