package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/core/domain/services"
	"orderintake/internal/pkg/errs"
)

// ProcessOrderCommandHandler drives one order through its fulfillment pipeline.
// Each status transition runs in its own transaction so that a crash between
// stages leaves the order observable as processing rather than silently pending.
//
// The handler never propagates processing faults to the worker: a fault marks
// the order failed (best effort) and is logged. Only infrastructure errors
// before the order is claimed are returned.
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pipeline   services.FulfillmentPipeline
}

// NewProcessOrderCommandHandler creates a handler for background order processing.
func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory, pipeline services.FulfillmentPipeline,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		pipeline:   pipeline,
	}
}

// Handle claims the order, walks the pipeline stages, and records the terminal
// status.
//
// An order that is missing or no longer pending is skipped with a warning and
// no error: the task is consumed either way, and re-processing a terminal
// order must never happen.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.claimOrder(ctx, cmd)
	if err != nil || aggregate == nil {
		return err
	}

	if err = h.runPipeline(ctx, aggregate, cmd.Expedited()); err != nil {
		slog.Error("order fulfillment failed",
			"order_id", aggregate.OrderID(),
			"vendor_id", aggregate.VendorID().String(),
			"error", err)
		h.markFailed(ctx, aggregate)
		return nil
	}

	slog.Info("order fulfillment completed",
		"order_id", aggregate.OrderID(),
		"vendor_id", aggregate.VendorID().String(),
		"expedited", cmd.Expedited())
	return nil
}

// claimOrder loads the order and transitions it from pending to processing in
// one transaction. Returns (nil, nil) when the task should be dropped.
func (h *ProcessOrderCommandHandler) claimOrder(
	ctx context.Context, cmd ProcessOrderCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			slog.Warn("order to process not found, dropping task", "id", cmd.OrderID().String())
			return nil, nil
		}
		return nil, err
	}

	if err = aggregate.StartProcessing(); err != nil {
		slog.Warn("order is not pending, dropping task",
			"order_id", aggregate.OrderID(),
			"status", aggregate.Status().String())
		return nil, nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// runPipeline walks the stages and persists the processed status. A panic in
// a stage is converted to an error so the order still reaches a terminal state.
func (h *ProcessOrderCommandHandler) runPipeline(
	ctx context.Context, aggregate *order.Order, expedited bool,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during fulfillment: %v", r)
		}
	}()

	for _, stage := range h.pipeline.Plan(expedited) {
		slog.Info(stage.Name,
			"order_id", aggregate.OrderID(),
			"vendor_id", aggregate.VendorID().String())
		time.Sleep(stage.Delay)
	}

	if err = aggregate.MarkProcessed(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// markFailed records the failed status best effort. Persistence errors here
// are only logged; the stuck-order watchdog catches orders left in processing.
func (h *ProcessOrderCommandHandler) markFailed(ctx context.Context, aggregate *order.Order) {
	if err := aggregate.MarkFailed(); err != nil {
		slog.Error("cannot mark order failed", "order_id", aggregate.OrderID(), "error", err)
		return
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		slog.Error("cannot begin failure transaction", "order_id", aggregate.OrderID(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		slog.Error("cannot persist failed status", "order_id", aggregate.OrderID(), "error", err)
		return
	}
	if err := uow.Commit(ctx); err != nil {
		slog.Error("cannot commit failed status", "order_id", aggregate.OrderID(), "error", err)
	}
}
