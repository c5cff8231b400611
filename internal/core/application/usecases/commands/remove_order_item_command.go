package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
		"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
	)
	ErrItemIDIsInvalid = errors.New("item id must be greater than 0")
)

// RemoveOrderItemCommand represents a request to remove a line from an order.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	itemID  int64

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove an order item.
func NewRemoveOrderItemCommand(orderID, itemID int64) (RemoveOrderItemCommand, error) {
	cmd := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's id.
func (c RemoveOrderItemCommand) OrderID() int64 {
	return c.orderID
}

// ItemID returns the id of the line item to remove.
func (c RemoveOrderItemCommand) ItemID() int64 {
	return c.itemID
}

func (c *RemoveOrderItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return ErrItemIDIsInvalid
	}

	c.itemID = itemID
	return nil
}
