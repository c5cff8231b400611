package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"commerce/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler moves an order through its lifecycle. The
// first transition to Shipped assigns a tracking number.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change. A transition out of Cancelled fails
// with InvalidStateTransitionError and leaves the order untouched.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() == order.Shipped && aggregate.TrackingNumber() == "" {
		if err = aggregate.SetTrackingNumber(newTrackingNumber()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// newTrackingNumber generates a carrier-agnostic tracking code like
// TRK-1B9F0C3A2D.
func newTrackingNumber() string {
	raw := uuid.New()
	return fmt.Sprintf("TRK-%X", raw[:5])
}
