// Package queries contains read operations in the CQRS architecture. Query
// handlers read the database directly and return plain response structs;
// they never load aggregates or go through repositories.
package queries

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrProductIDIsInvalid = errors.New("product id must be greater than 0")
)

// GetProductQuery retrieves one catalog product by id. By default archived
// (soft-deleted) products are invisible; IncludeDeleted opts in to seeing
// them, which also bypasses the cache.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID      int64
	includeDeleted bool

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for a product lookup.
func NewGetProductQuery(productID int64, includeDeleted bool) (GetProductQuery, error) {
	q := GetProductQuery{
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}

	if err := q.setProductID(productID); err != nil {
		return GetProductQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the id to look up.
func (q GetProductQuery) ProductID() int64 {
	return q.productID
}

// IncludeDeleted reports whether archived products are visible to this query.
func (q GetProductQuery) IncludeDeleted() bool {
	return q.includeDeleted
}

func (q *GetProductQuery) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	q.productID = productID
	return nil
}

// GetProductQueryResponse is the read model for one catalog product.
// Archived marks a soft-deleted row surfaced by IncludeDeleted.
type GetProductQueryResponse struct {
	ID            int64
	Name          string
	Description   string
	SKU           string
	Price         string
	StockQuantity int
	Category      string
	Archived      bool
}
