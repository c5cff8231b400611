package order

import (
	"errors"
	"strings"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Optional field length limits.
const (
	MaxNotesLen          = 500
	MaxPaymentMethodLen  = 50
	MaxShippingMethodLen = 100
	MaxTrackingNumberLen = 100
)

// Order is the aggregate root for a customer order. It exclusively owns its
// line items: their lifetime is bound to the order, and removing an item from
// the collection deletes it.
//
// Order maintains these invariants:
//   - totalAmount always equals the half-up 2-decimal rounding of the sum of
//     its items' line extensions; every item mutation recomputes it
//   - once status is Cancelled, the status can never change to anything else
//   - shipping address is mandatory; optional text fields are length-bounded
//
// The version counter supports optimistic concurrency: the persistence
// adapter increments it on every successful write, and a mismatched expected
// version fails the commit with a ConcurrentModificationError.
type Order struct {
	id              int64
	customerID      int64
	orderDate       time.Time
	status          Status
	items           []*OrderItem
	totalAmount     kernel.Money
	taxAmount       kernel.Money
	discountAmount  kernel.Money
	shippingAddress string
	notes           string
	paymentMethod   string
	shippingMethod  string
	trackingNumber  string
	version         int

	isConstructed bool
}

// NewOrder creates an empty order in Pending status for the given customer.
// A zero orderDate defaults to the current time.
func NewOrder(customerID int64, shippingAddress string, orderDate time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}
	o.orderDate = orderDate

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage. Items must
// already be restored; optional text and money fields are applied afterwards
// through the regular mutators by the persistence adapter.
func RestoreOrder(
	id, customerID int64,
	orderDate time.Time,
	status Status,
	shippingAddress string,
	items []*OrderItem,
	version int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(customerID, shippingAddress, orderDate)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	o.id = id
	o.status = status
	o.items = append(o.items, items...)
	o.version = version
	o.recalculateTotal()

	return o, nil
}

// Validate ensures the Order was built through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the surrogate identifier, zero until first persisted.
func (o *Order) ID() int64 {
	return o.id
}

// AssignID records the identifier generated by the database on insert.
// Intended for the persistence adapter; fails if an id is already set.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidError("order id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

func (o *Order) CustomerID() int64 {
	return o.customerID
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

func (o *Order) ShippingMethod() string {
	return o.shippingMethod
}

func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

func (o *Order) TaxAmount() kernel.Money {
	return o.taxAmount
}

func (o *Order) DiscountAmount() kernel.Money {
	return o.discountAmount
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// AdvanceVersion increments the version counter after a successful write.
// Intended for the persistence adapter only.
func (o *Order) AdvanceVersion() {
	o.version++
}

// Items returns a copy of the line item slice. The items themselves are
// shared; mutate them only through the aggregate.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the current order total: the half-up 2-decimal rounding
// of the sum of all line extensions.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// AddItem appends a line item and recomputes the total. A nil item is a
// caller bug and fails as a precondition violation, not a domain error.
func (o *Order) AddItem(item *OrderItem) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalculateTotal()
	return nil
}

// RemoveItem deletes a line item from the order and recomputes the total.
// Items are matched by identity when persisted, by pointer otherwise.
func (o *Order) RemoveItem(item *OrderItem) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}

	for idx, existing := range o.items {
		if existing == item || (item.ID() != 0 && existing.ID() == item.ID()) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recalculateTotal()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderItem", item.ID())
}

// ChangeStatus requests a lifecycle transition. A cancelled order rejects
// every target except Cancelled itself and keeps its status unchanged on
// failure. Status changes do not touch the total.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// RecalculateTotal recomputes the total from the current items. Mutations
// through AddItem/RemoveItem keep the total fresh already; the persistence
// adapter calls this once more immediately before a write so a stale total
// can never be observed after a successful commit. Recomputation is
// idempotent.
func (o *Order) RecalculateTotal() {
	o.recalculateTotal()
}

// SetNotes replaces the free-text notes.
func (o *Order) SetNotes(notes string) error {
	if len(notes) > MaxNotesLen {
		return errs.NewValidationError("notes", "validation.order.notes.size")
	}
	o.notes = notes
	return nil
}

// SetPaymentMethod replaces the payment method label.
func (o *Order) SetPaymentMethod(paymentMethod string) error {
	if len(paymentMethod) > MaxPaymentMethodLen {
		return errs.NewValidationError("paymentMethod", "validation.order.paymentMethod.size")
	}
	o.paymentMethod = paymentMethod
	return nil
}

// SetShippingMethod replaces the shipping method label.
func (o *Order) SetShippingMethod(shippingMethod string) error {
	if len(shippingMethod) > MaxShippingMethodLen {
		return errs.NewValidationError("shippingMethod", "validation.order.shippingMethod.size")
	}
	o.shippingMethod = shippingMethod
	return nil
}

// SetTrackingNumber replaces the carrier tracking number.
func (o *Order) SetTrackingNumber(trackingNumber string) error {
	if len(trackingNumber) > MaxTrackingNumberLen {
		return errs.NewValidationError("trackingNumber", "validation.order.trackingNumber.size")
	}
	o.trackingNumber = trackingNumber
	return nil
}

// SetTaxAmount records the tax portion. Stored alongside the total but never
// folded into it; the total is the plain sum of line extensions.
func (o *Order) SetTaxAmount(taxAmount kernel.Money) error {
	if taxAmount.IsNegative() {
		return errs.NewValidationError("taxAmount", "validation.order.total.negative")
	}
	o.taxAmount = taxAmount
	return nil
}

// SetDiscountAmount records the discount portion. Like tax, informational
// only.
func (o *Order) SetDiscountAmount(discountAmount kernel.Money) error {
	if discountAmount.IsNegative() {
		return errs.NewValidationError("discountAmount", "validation.order.total.negative")
	}
	o.discountAmount = discountAmount
	return nil
}

// recalculateTotal sums the exact line extensions and rounds half-up to the
// 2-decimal money scale. Item positivity was already enforced at the item
// construction boundary, so the aggregation assumes valid inputs.
func (o *Order) recalculateTotal() {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	o.totalAmount = sum.Round2()
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValidationError("customerId", "validation.order.customer.mandatory")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShippingAddress(shippingAddress string) error {
	if strings.TrimSpace(shippingAddress) == "" {
		return errs.NewValidationError("shippingAddress", "validation.order.shippingAddress.mandatory")
	}
	o.shippingAddress = shippingAddress
	return nil
}
