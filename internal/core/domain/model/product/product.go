package product

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Field length limits, matching the catalog schema.
const (
	MaxNameLen        = 100
	MaxDescriptionLen = 500
	MaxSKULen         = 50
	MaxCategoryLen    = 100
)

// Product represents a catalog product. It validates its own field
// constraints at the construction and mutation boundary; SKU uniqueness is
// enforced by the persistence layer and surfaces as a ConflictError at commit
// time.
//
// Invariants:
//   - name is non-blank, at most 100 characters
//   - SKU is non-blank, at most 50 characters
//   - price is zero or positive
//   - stock quantity is never negative
type Product struct {
	id            int64
	name          string
	description   string
	sku           string
	price         kernel.Money
	stockQuantity int
	category      string

	isConstructed bool
}

// NewProduct creates a validated Product with no identity yet; the surrogate
// id is assigned by the persistence adapter on first insert.
func NewProduct(name, description, sku string, price kernel.Money, stockQuantity int, category string) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setName(name),
		p.setDescription(description),
		p.setSKU(sku),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage, re-running
// all field validation so corrupt rows cannot produce an invalid aggregate.
func RestoreProduct(id int64, name, description, sku string, price kernel.Money, stockQuantity int, category string) (*Product, error) {
	p, err := NewProduct(name, description, sku, price, stockQuantity, category)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// Validate ensures the Product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the surrogate identifier, zero until first persisted.
func (p *Product) ID() int64 {
	return p.id
}

// AssignID records the identifier generated by the database on insert.
// Intended for the persistence adapter; fails if an id is already set.
func (p *Product) AssignID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("product id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("product id")
	}

	p.id = id
	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id != 0 && p.id == other.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

func (p *Product) Category() string {
	return p.category
}

// ChangePrice replaces the list price. The new price must be zero or positive.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// AdjustStock applies a relative stock change. The resulting quantity must
// not be negative.
func (p *Product) AdjustStock(delta int) error {
	next := p.stockQuantity + delta
	if next < 0 {
		return errs.NewValidationError("stockQuantity", "validation.product.stock.positiveOrZero")
	}

	p.stockQuantity = next
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValidationError("name", "validation.product.name.mandatory")
	}
	if len(name) > MaxNameLen {
		return errs.NewValidationError("name", "validation.product.name.size")
	}

	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	if len(description) > MaxDescriptionLen {
		return errs.NewValidationError("description", "validation.product.description.size")
	}

	p.description = description
	return nil
}

func (p *Product) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValidationError("sku", "validation.product.sku.mandatory")
	}
	if len(sku) > MaxSKULen {
		return errs.NewValidationError("sku", "validation.product.sku.size")
	}

	p.sku = sku
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValidationError("price", "validation.product.price.positiveOrZero")
	}

	p.price = price
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValidationError("stockQuantity", "validation.product.stock.positiveOrZero")
	}

	p.stockQuantity = stockQuantity
	return nil
}

func (p *Product) setCategory(category string) error {
	if len(category) > MaxCategoryLen {
		return errs.NewValidationError("category", "validation.product.category.size")
	}

	p.category = category
	return nil
}
