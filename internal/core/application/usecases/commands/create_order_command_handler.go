package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
)

// CreateOrderCommandHandler handles order placement. It verifies the customer
// exists, snapshots each product's current name and price into the line
// items, and persists the order with its items in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the new order id.
// A missing customer or product fails with ObjectNotFoundError and nothing
// is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return 0, err
	}

	products, err := h.resolveProducts(ctx, uow, cmd.Lines())
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), cmd.ShippingAddress(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	for _, line := range cmd.Lines() {
		p := products[line.ProductID]
		item, itemErr := order.NewOrderItem(p.ID(), p.Name(), p.Price(), line.Quantity, line.Notes)
		if itemErr != nil {
			return 0, itemErr
		}
		if addErr := aggregate.AddItem(item); addErr != nil {
			return 0, addErr
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}

// resolveProducts loads the distinct products referenced by the lines and
// indexes them by id. Every referenced product must exist.
func (h CreateOrderCommandHandler) resolveProducts(
	ctx context.Context, uow UoW, lines []OrderLine,
) (map[int64]*product.Product, error) {
	seen := make(map[int64]bool, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	products, err := uow.ProductRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	return byID, nil
}
