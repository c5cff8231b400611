package ports

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Updates use optimistic concurrency: the write is conditioned on the
// aggregate's current version, a mismatch fails with a
// ConcurrentModificationError, and a successful write increments the version
// by exactly one. Implementations recompute the order total immediately
// before writing so a stale total can never be observed after a commit.
type OrderRepository interface {
	// Add persists a new order with its line items and assigns ids.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, reconciling its line
	// item rows. Fails with ConcurrentModificationError on a version mismatch.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items, excluding soft-deleted orders.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetWithDeleted retrieves an order regardless of deletion state.
	GetWithDeleted(ctx context.Context, id int64) (*order.Order, error)

	// GetAllPendingBefore retrieves non-deleted orders still in Pending
	// status whose order date is strictly before the cutoff. Used by the
	// stale-order cancellation job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete soft-deletes an order. Its item rows remain owned by it.
	Delete(ctx context.Context, id int64) error
}
