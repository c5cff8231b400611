// Package messages resolves validation message keys to human-readable text.
// The domain layer only ever emits keys (see errs.ValidationError); this
// package owns the key-to-text mapping so wording and localization can change
// without touching any entity.
package messages

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
)

// Catalog maps validation message keys to display text. A Catalog with an
// empty overlay falls back to the built-in defaults, so callers can localize
// selectively.
type Catalog struct {
	overlay map[string]string
}

// defaultCatalog carries the English text for every key the domain emits.
var defaultCatalog = map[string]string{
	"validation.customer.code.mandatory":      "customer code is mandatory",
	"validation.customer.firstName.mandatory": "first name is mandatory",
	"validation.customer.firstName.size":      "first name must not exceed 50 characters",
	"validation.customer.lastName.mandatory":  "last name is mandatory",
	"validation.customer.lastName.size":       "last name must not exceed 50 characters",
	"validation.customer.email.mandatory":     "email is mandatory",
	"validation.customer.email.invalid":       "email must be a well-formed address",
	"validation.customer.phone.mandatory":     "phone is mandatory",
	"validation.customer.password.mandatory":  "password is mandatory",
	"validation.customer.balance.negative":    "account balance must not be negative",

	"validation.address.street.mandatory":     "street is mandatory",
	"validation.address.street.size":          "street must not exceed 100 characters",
	"validation.address.city.mandatory":       "city is mandatory",
	"validation.address.city.size":            "city must not exceed 50 characters",
	"validation.address.postalCode.mandatory": "postal code is mandatory",
	"validation.address.postalCode.size":      "postal code must not exceed 20 characters",
	"validation.address.countryCode.invalid":  "country code must be exactly 2 letters",

	"validation.order.customer.mandatory":        "order must belong to a customer",
	"validation.order.shippingAddress.mandatory": "shipping address is mandatory",
	"validation.order.notes.size":                "notes must not exceed 500 characters",
	"validation.order.paymentMethod.size":        "payment method must not exceed 50 characters",
	"validation.order.shippingMethod.size":       "shipping method must not exceed 100 characters",
	"validation.order.trackingNumber.size":       "tracking number must not exceed 100 characters",
	"validation.order.total.negative":            "order total must not be negative",

	"validation.orderItem.product.mandatory":  "order item must reference a product",
	"validation.orderItem.name.mandatory":     "order item product name is mandatory",
	"validation.orderItem.quantity.mandatory": "quantity is mandatory",
	"validation.orderItem.quantity.positive":  "quantity must be positive",
	"validation.orderItem.price.mandatory":    "unit price is mandatory",
	"validation.orderItem.price.positive":     "unit price must be positive",
	"validation.orderItem.notes.size":         "order item notes must not exceed 200 characters",

	"validation.product.name.mandatory":       "product name is mandatory",
	"validation.product.name.size":            "product name must not exceed 100 characters",
	"validation.product.description.size":     "description must not exceed 500 characters",
	"validation.product.sku.mandatory":        "SKU is mandatory",
	"validation.product.sku.size":             "SKU must not exceed 50 characters",
	"validation.product.price.mandatory":      "price is mandatory",
	"validation.product.price.positiveOrZero": "price must be zero or positive",
	"validation.product.stock.positiveOrZero": "stock quantity must be zero or positive",
	"validation.product.category.size":        "category must not exceed 100 characters",
}

// NewCatalog creates a catalog with the built-in defaults. The overlay, if
// non-nil, takes precedence over defaults key by key.
func NewCatalog(overlay map[string]string) Catalog {
	return Catalog{overlay: overlay}
}

// Resolve returns the text for a message key. Unknown keys resolve to the key
// itself rather than failing, so a missing translation degrades to something
// still traceable in logs.
func (c Catalog) Resolve(key string) string {
	if c.overlay != nil {
		if text, ok := c.overlay[key]; ok {
			return text
		}
	}
	if text, ok := defaultCatalog[key]; ok {
		return text
	}
	return key
}

// Describe renders an error for display or logging. A ValidationError
// anywhere in the chain has its message key resolved through the catalog;
// any other error keeps its Error text.
func (c Catalog) Describe(err error) string {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("%s: %s", validationErr.Field, c.Resolve(validationErr.MessageKey))
	}
	return err.Error()
}

// Has reports whether the key is known to the catalog, defaults included.
func (c Catalog) Has(key string) bool {
	if c.overlay != nil {
		if _, ok := c.overlay[key]; ok {
			return true
		}
	}
	_, ok := defaultCatalog[key]
	return ok
}
