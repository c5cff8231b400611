package customer

import (
	"errors"
	"regexp"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Name field length limit.
const MaxNameLen = 50

// emailPattern accepts the usual local@domain.tld shape. It deliberately does
// not try to implement the full RFC grammar; the mailbox is only proven real
// by a delivery, not by a regexp.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Customer is the aggregate root for a registered customer. Field constraints
// are enforced here at the construction and mutation boundary; uniqueness of
// customer code, email, and phone is delegated to the persistence layer and
// surfaces as a ConflictError at commit time.
type Customer struct {
	id             int64
	customerCode   string
	firstName      string
	lastName       string
	email          string
	phone          string
	passwordHash   string
	address        Address
	accountBalance kernel.Money

	isConstructed bool
}

// NewCustomer creates a validated Customer with a zero account balance and no
// identity yet. The password hash must already be computed by the caller; the
// domain never sees a plaintext password.
func NewCustomer(customerCode, firstName, lastName, email, phone, passwordHash string, address Address) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setCustomerCode(customerCode),
		c.setFirstName(firstName),
		c.setLastName(lastName),
		c.setEmail(email),
		c.setPhone(phone),
		c.setPasswordHash(passwordHash),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(
	id int64,
	customerCode, firstName, lastName, email, phone, passwordHash string,
	address Address,
	accountBalance kernel.Money,
) (*Customer, error) {
	c, err := NewCustomer(customerCode, firstName, lastName, email, phone, passwordHash, address)
	if err != nil {
		return nil, err
	}

	if err := c.SetAccountBalance(accountBalance); err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Customer was built through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the surrogate identifier, zero until first persisted.
func (c *Customer) ID() int64 {
	return c.id
}

// AssignID records the identifier generated by the database on insert.
// Intended for the persistence adapter; fails if an id is already set.
func (c *Customer) AssignID(id int64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("customer id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("customer id")
	}

	c.id = id
	return nil
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id != 0 && c.id == other.id
}

func (c *Customer) CustomerCode() string {
	return c.customerCode
}

func (c *Customer) FirstName() string {
	return c.firstName
}

func (c *Customer) LastName() string {
	return c.lastName
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

func (c *Customer) Address() Address {
	return c.address
}

func (c *Customer) AccountBalance() kernel.Money {
	return c.accountBalance
}

// ChangeEmail replaces the email after re-validating its shape.
func (c *Customer) ChangeEmail(email string) error {
	return c.setEmail(email)
}

// ChangePhone replaces the phone number.
func (c *Customer) ChangePhone(phone string) error {
	return c.setPhone(phone)
}

// ChangeAddress replaces the embedded address with a new value object.
func (c *Customer) ChangeAddress(address Address) error {
	return c.setAddress(address)
}

// SetAccountBalance replaces the account balance. Negative balances are
// rejected.
func (c *Customer) SetAccountBalance(balance kernel.Money) error {
	if balance.IsNegative() {
		return errs.NewValidationError("accountBalance", "validation.customer.balance.negative")
	}

	c.accountBalance = balance
	return nil
}

func (c *Customer) setCustomerCode(customerCode string) error {
	if strings.TrimSpace(customerCode) == "" {
		return errs.NewValidationError("customerCode", "validation.customer.code.mandatory")
	}

	c.customerCode = customerCode
	return nil
}

func (c *Customer) setFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValidationError("firstName", "validation.customer.firstName.mandatory")
	}
	if len(firstName) > MaxNameLen {
		return errs.NewValidationError("firstName", "validation.customer.firstName.size")
	}

	c.firstName = firstName
	return nil
}

func (c *Customer) setLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValidationError("lastName", "validation.customer.lastName.mandatory")
	}
	if len(lastName) > MaxNameLen {
		return errs.NewValidationError("lastName", "validation.customer.lastName.size")
	}

	c.lastName = lastName
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValidationError("email", "validation.customer.email.mandatory")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValidationError("email", "validation.customer.email.invalid")
	}

	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValidationError("phone", "validation.customer.phone.mandatory")
	}

	c.phone = phone
	return nil
}

func (c *Customer) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValidationError("password", "validation.customer.password.mandatory")
	}

	c.passwordHash = passwordHash
	return nil
}

func (c *Customer) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
