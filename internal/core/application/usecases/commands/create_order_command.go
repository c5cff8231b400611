package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsInvalid       = errors.New("customer id must be greater than 0")
	ErrShippingAddressIsRequired = errors.New("shipping address is required")
	ErrOrderLinesAreRequired     = errors.New("at least one order line is required")
	ErrOrderLineIsInvalid        = errors.New("order line must have a product id and positive quantity")
)

// OrderLine is one requested line of a new order: which product and how many.
// The product's name and price are snapshotted by the handler at creation
// time, so the command never carries them.
type OrderLine struct {
	ProductID int64
	Quantity  int
	Notes     string
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "1 Main St, Springfield", []OrderLine{
//	    {ProductID: 7, Quantity: 2},
//	    {ProductID: 9, Quantity: 1, Notes: "gift wrap"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      int64
	shippingAddress string
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Every line must
// name a product and a positive quantity; snapshot data is resolved later.
func NewCreateOrderCommand(customerID int64, shippingAddress string, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setShippingAddress(shippingAddress),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's id.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// ShippingAddress returns the destination address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return ErrShippingAddressIsRequired
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			return ErrOrderLineIsInvalid
		}
	}

	c.lines = lines
	return nil
}
