package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
	ErrOrderIDIsInvalid   = errors.New("order id must be greater than 0")
	ErrProductIDIsInvalid = errors.New("product id must be greater than 0")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// AddOrderItemCommand represents a request to add a line to an existing order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	productID int64
	quantity  int
	notes     string

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to an order.
func NewAddOrderItemCommand(orderID, productID int64, quantity int, notes string) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's id.
func (c AddOrderItemCommand) OrderID() int64 {
	return c.orderID
}

// ProductID returns the product to add.
func (c AddOrderItemCommand) ProductID() int64 {
	return c.productID
}

// Quantity returns the requested quantity.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// Notes returns the optional line notes.
func (c AddOrderItemCommand) Notes() string {
	return c.notes
}

func (c *AddOrderItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
