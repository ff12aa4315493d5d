package jobs

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// deliveryCompletionGracePeriod is how long an order must have been placed
// before its delivery is swept to completed.
const deliveryCompletionGracePeriod = 30 * time.Second

// DeliveryCompletionJob periodically completes ready deliveries of orders
// that have been placed long enough ago. Stands in for the warehouse
// confirming shipment.
type DeliveryCompletionJob struct {
	handler commands.CompleteDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCompletionJob creates a new job for completing deliveries.
// Uses CompleteDeliveriesCommandHandler to sweep ready deliveries every
// ten seconds.
func NewDeliveryCompletionJob(handler commands.CompleteDeliveriesCommandHandler, logger *slog.Logger) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job to run every ten seconds.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCompleteDeliveriesCommand(time.Now().Add(-deliveryCompletionGracePeriod))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed to build command", "error", cmdErr)
			return
		}

		completed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", handleErr)
			return
		}

		if completed > 0 {
			j.logger.InfoContext(ctx, "Deliveries completed", "count", completed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every ten seconds)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
