// Package ports defines the persistence contracts between the domain layer
// and infrastructure adapters, enabling dependency inversion and testability.
//
// Soft delete is part of every contract: Delete flips the deleted marker
// instead of removing the row, Get excludes deleted rows, and the
// GetWithDeleted variants opt in to seeing them.
package ports

import (
	"context"

	"commerce/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer
// aggregates. Uniqueness of customer code, email, and phone is enforced here
// (unique indexes) and surfaces as a ConflictError on Add/Update.
type CustomerRepository interface {
	// Add persists a new customer and assigns its surrogate id.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id, excluding soft-deleted rows.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// GetWithDeleted retrieves a customer by id regardless of deletion state.
	GetWithDeleted(ctx context.Context, id int64) (*customer.Customer, error)

	// GetByEmail retrieves a non-deleted customer by exact email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// Delete soft-deletes a customer. The row remains and is excluded from
	// default-scope reads.
	Delete(ctx context.Context, id int64) error
}
