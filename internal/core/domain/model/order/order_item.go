package order

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// MaxItemNotesLen bounds the free-text notes on a line item.
const MaxItemNotesLen = 200

// OrderItem is a line item owned by an Order. It references a product by id
// and carries a denormalized product name and unit price snapshot taken at
// order time, so later catalog changes do not rewrite order history.
//
// Invariants:
//   - quantity is a positive integer
//   - unit price is strictly positive
//   - subtotal is always unitPrice x quantity, derived, never stored here
type OrderItem struct {
	id          int64
	productID   int64
	productName string
	unitPrice   kernel.Money
	quantity    int
	notes       string

	isConstructed bool
}

// NewOrderItem creates a validated line item with no identity yet.
func NewOrderItem(productID int64, productName string, unitPrice kernel.Money, quantity int, notes string) (*OrderItem, error) {
	item := &OrderItem{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		item.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs a line item from persistent storage.
func RestoreOrderItem(id, productID int64, productName string, unitPrice kernel.Money, quantity int, notes string) (*OrderItem, error) {
	item, err := NewOrderItem(productID, productName, unitPrice, quantity, notes)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the item was built through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the surrogate identifier, zero until first persisted.
func (i *OrderItem) ID() int64 {
	return i.id
}

// AssignID records the identifier generated by the database on insert.
// Intended for the persistence adapter; fails if an id is already set.
func (i *OrderItem) AssignID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidError("order item id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order item id")
	}

	i.id = id
	return nil
}

func (i *OrderItem) ProductID() int64 {
	return i.productID
}

func (i *OrderItem) ProductName() string {
	return i.productName
}

func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) Notes() string {
	return i.notes
}

// Subtotal returns the exact, unrounded line extension unitPrice x quantity.
// Rounding to the money scale happens once, at the order total.
func (i *OrderItem) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// ChangeQuantity replaces the quantity. The caller owns recomputing the order
// total; Order.AddItem/RemoveItem callers normally go through the aggregate.
func (i *OrderItem) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *OrderItem) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValidationError("productId", "validation.orderItem.product.mandatory")
	}

	i.productID = productID
	return nil
}

func (i *OrderItem) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValidationError("productName", "validation.orderItem.name.mandatory")
	}

	i.productName = productName
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValidationError("unitPrice", "validation.orderItem.price.positive")
	}

	i.unitPrice = unitPrice
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValidationError("quantity", "validation.orderItem.quantity.positive")
	}

	i.quantity = quantity
	return nil
}

func (i *OrderItem) setNotes(notes string) error {
	if len(notes) > MaxItemNotesLen {
		return errs.NewValidationError("notes", "validation.orderItem.notes.size")
	}

	i.notes = notes
	return nil
}
