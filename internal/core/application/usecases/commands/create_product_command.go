package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrSKUIsRequired         = errors.New("sku is required")
	ErrPriceIsNegative       = errors.New("price must not be negative")
	ErrStockIsNegative       = errors.New("stock quantity must not be negative")
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name          string
	description   string
	sku           string
	price         kernel.Money
	stockQuantity int
	category      string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a catalog product.
func NewCreateProductCommand(
	name, description, sku string,
	price kernel.Money,
	stockQuantity int,
	category string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setSKU(sku),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional long description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// SKU returns the stock keeping unit, unique across the catalog.
func (c CreateProductCommand) SKU() string {
	return c.sku
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// StockQuantity returns the initial on-hand quantity.
func (c CreateProductCommand) StockQuantity() int {
	return c.stockQuantity
}

// Category returns the optional category label.
func (c CreateProductCommand) Category() string {
	return c.category
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return ErrPriceIsNegative
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return ErrStockIsNegative
	}

	c.stockQuantity = stockQuantity
	return nil
}
