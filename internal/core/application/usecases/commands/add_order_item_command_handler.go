package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler adds a line item to an existing order. The item
// snapshots the product's current name and price; the order total is
// recomputed and written under the order's optimistic lock.
type AddOrderItemCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory OrderProductUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. A concurrent mutation of the same order
// surfaces as ConcurrentModificationError from the repository.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	item, err := order.NewOrderItem(p.ID(), p.Name(), p.Price(), cmd.Quantity(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
