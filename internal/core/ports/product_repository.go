package ports

import (
	"context"

	"commerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// SKU uniqueness is enforced here and surfaces as a ConflictError on
// Add/Update.
type ProductRepository interface {
	// Add persists a new product and assigns its surrogate id.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id, excluding soft-deleted rows.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetWithDeleted retrieves a product by id regardless of deletion state.
	GetWithDeleted(ctx context.Context, id int64) (*product.Product, error)

	// GetBySKU retrieves a non-deleted product by exact SKU.
	GetBySKU(ctx context.Context, sku string) (*product.Product, error)

	// GetMany retrieves the non-deleted products for the given ids. Missing
	// ids fail with an ObjectNotFoundError naming the first absent id.
	GetMany(ctx context.Context, ids []int64) ([]*product.Product, error)

	// Delete soft-deletes a product. The row remains and is excluded from
	// default-scope reads.
	Delete(ctx context.Context, id int64) error
}
