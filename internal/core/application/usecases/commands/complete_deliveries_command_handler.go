package commands

import (
	"context"
)

// CompleteDeliveriesCommandHandler completes ready deliveries of orders
// placed before the command's cutoff. Each order transitions through the
// aggregate so the delivery state rule stays in one place.
type CompleteDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveriesCommandHandler creates a handler for delivery
// completion sweeps.
func NewCompleteDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle completes every eligible delivery in one transaction and returns
// how many orders were updated.
func (h *CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) (int, error) {
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

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllWithReadyDeliveryBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, pendingOrder := range orders {
		if err = pendingOrder.CompleteDelivery(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, pendingOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
