package commands

import (
	"context"
	"errors"
	"log/slog"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/core/ports"
	"orderintake/internal/pkg/errs"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Verifies the vendor exists, rejects duplicate (order_id, vendor_id) pairs,
// persists the order in pending status, and hands it to the fulfillment queue
// after the transaction commits.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, queue)
//	submitted, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// Order is accepted and queued for background fulfillment
type SubmitOrderCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.FulfillmentQueue
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// Requires a cross-aggregate UoWFactory (vendor lookup + order insert in one
// transaction) and the fulfillment queue for background processing.
func NewSubmitOrderCommandHandler(
	uowFactory UoWFactory, queue ports.FulfillmentQueue,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the order submission command and returns the accepted order.
//
// Returns errs.ErrObjectNotFound if the vendor does not exist and
// errs.ErrObjectAlreadyExists if the vendor already submitted this order ID.
// The duplicate check is advisory: the database's unique index settles
// concurrent duplicate submissions, so a race still surfaces as AlreadyExists.
func (h *SubmitOrderCommandHandler) Handle(
	ctx context.Context, cmd SubmitOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.VendorRepository().Get(ctx, cmd.VendorID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetByOrderID(ctx, cmd.OrderID(), cmd.VendorID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError("order_id", cmd.OrderID())
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.VendorID(),
		cmd.Priority(),
		cmd.Address(),
		cmd.Items(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// The order is durably pending at this point. If the queue has shut down,
	// the stuck-order watchdog will surface the order; the submission itself
	// must not fail after commit.
	task := ports.FulfillmentTask{
		OrderID:   newOrder.ID(),
		Expedited: newOrder.Priority().IsExpedited(),
	}
	if err = h.queue.Enqueue(task); err != nil {
		slog.Error("failed to enqueue order for fulfillment",
			"order_id", newOrder.OrderID(),
			"vendor_id", newOrder.VendorID().String(),
			"error", err)
	}

	return newOrder, nil
}
