package commands

import (
	"context"

	"commerce/internal/pkg/errs"
)

// RemoveOrderItemCommandHandler removes a line item from an order. The order
// total is recomputed and the write goes through the optimistic lock.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for removing order items.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. An item id not present on the order fails
// with ObjectNotFoundError.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	removed := false
	for _, item := range aggregate.Items() {
		if item.ID() == cmd.ItemID() {
			if err = aggregate.RemoveItem(item); err != nil {
				return err
			}
			removed = true
			break
		}
	}
	if !removed {
		return errs.NewObjectNotFoundError("orderItemId", cmd.ItemID())
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
