package customer

import (
	"errors"
	"strings"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address field length limits.
const (
	MaxStreetLen     = 100
	MaxCityLen       = 50
	MaxPostalCodeLen = 20
)

// Address is the embedded postal address value object of a Customer. All
// fields are mandatory and length-bounded; the country code is exactly two
// letters and is stored upper-case.
//
// Address is immutable: changing a customer's address means constructing a
// new value and calling Customer.ChangeAddress.
type Address struct {
	street      string
	city        string
	postalCode  string
	countryCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address.
func NewAddress(street, city, postalCode, countryCode string) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setStreet(street),
		a.setCity(city),
		a.setPostalCode(postalCode),
		a.setCountryCode(countryCode),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate ensures the Address was built through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

func (a Address) PostalCode() string {
	return a.postalCode
}

// CountryCode returns the upper-cased ISO 3166-1 alpha-2 code.
func (a Address) CountryCode() string {
	return a.countryCode
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.countryCode == other.countryCode
}

func (a *Address) setStreet(street string) error {
	if strings.TrimSpace(street) == "" {
		return errs.NewValidationError("address.street", "validation.address.street.mandatory")
	}
	if len(street) > MaxStreetLen {
		return errs.NewValidationError("address.street", "validation.address.street.size")
	}

	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValidationError("address.city", "validation.address.city.mandatory")
	}
	if len(city) > MaxCityLen {
		return errs.NewValidationError("address.city", "validation.address.city.size")
	}

	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if strings.TrimSpace(postalCode) == "" {
		return errs.NewValidationError("address.postalCode", "validation.address.postalCode.mandatory")
	}
	if len(postalCode) > MaxPostalCodeLen {
		return errs.NewValidationError("address.postalCode", "validation.address.postalCode.size")
	}

	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountryCode(countryCode string) error {
	if !isAlpha2(countryCode) {
		return errs.NewValidationError("address.countryCode", "validation.address.countryCode.invalid")
	}

	a.countryCode = strings.ToUpper(countryCode)
	return nil
}

// isAlpha2 reports whether s is an ISO 3166-1 alpha-2 shaped code: exactly
// two ASCII letters. Byte length alone is not enough since a single
// multi-byte letter is two bytes but not a valid code.
func isAlpha2(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
