package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
	ErrEmailIsRequired     = errors.New("email is required")
	ErrPhoneIsRequired     = errors.New("phone is required")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
)

// MinPasswordLen is the minimum accepted raw password length.
const MinPasswordLen = 8

// CreateCustomerCommand represents a request to register a new customer.
// The raw password never reaches the domain: the handler hashes it and the
// aggregate only ever sees the hash.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand(
//	    "Jane", "Doe", "jane@example.com", "+15550001", "s3cretpass",
//	    "1 Main St", "Springfield", "12345", "US",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	firstName   string
	lastName    string
	email       string
	phone       string
	password    string
	street      string
	city        string
	postalCode  string
	countryCode string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Field-level constraints (lengths, email shape, country code) are enforced
// by the domain; the command only guards presence and password length.
func NewCreateCustomerCommand(
	firstName, lastName, email, phone, password string,
	street, city, postalCode, countryCode string,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		street:      street,
		city:        city,
		postalCode:  postalCode,
		countryCode: countryCode,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setPassword(password),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// FirstName returns the customer's given name.
func (c CreateCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's family name.
func (c CreateCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the contact email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the contact phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Password returns the raw password to be hashed by the handler.
func (c CreateCustomerCommand) Password() string {
	return c.password
}

// Street returns the address street line.
func (c CreateCustomerCommand) Street() string {
	return c.street
}

// City returns the address city.
func (c CreateCustomerCommand) City() string {
	return c.city
}

// PostalCode returns the address postal code.
func (c CreateCustomerCommand) PostalCode() string {
	return c.postalCode
}

// CountryCode returns the two-letter country code.
func (c CreateCustomerCommand) CountryCode() string {
	return c.countryCode
}

func (c *CreateCustomerCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *CreateCustomerCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateCustomerCommand) setPassword(password string) error {
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	c.password = password
	return nil
}
