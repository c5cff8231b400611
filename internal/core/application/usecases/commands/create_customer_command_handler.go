package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"commerce/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer
// registration: password hashing, customer code generation, and persistence.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new customer's
// id. Duplicate email, phone, or customer code surfaces as a ConflictError
// from the repository.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	address, err := customer.NewAddress(cmd.Street(), cmd.City(), cmd.PostalCode(), cmd.CountryCode())
	if err != nil {
		return 0, err
	}

	aggregate, err := customer.NewCustomer(
		newCustomerCode(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.Phone(),
		string(hash),
		address,
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}

// newCustomerCode generates an opaque external identifier like CUST-1b9f0c3a.
func newCustomerCode() string {
	return fmt.Sprintf("CUST-%s", uuid.NewString()[:8])
}
