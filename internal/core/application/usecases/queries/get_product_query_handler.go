package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

// ProductCache is the read-through cache consulted before the database.
// A miss is (nil, false, nil); cache failures are swallowed by the handler
// since the database remains the source of truth.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*product.Product, bool, error)
	Set(ctx context.Context, aggregate *product.Product) error
}

// GetProductQueryHandler serves product lookups. Default-scope reads go
// through the cache; IncludeDeleted reads always hit the database because
// the cache never holds archived products.
type GetProductQueryHandler struct {
	db    *gorm.DB
	cache ProductCache
}

// NewGetProductQueryHandler creates a handler for product lookups.
func NewGetProductQueryHandler(db *gorm.DB, cache ProductCache) GetProductQueryHandler {
	return GetProductQueryHandler{db: db, cache: cache}
}

// Handle executes the lookup. A missing product, or an archived one without
// IncludeDeleted, fails with ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	if !query.IncludeDeleted() {
		if cached, found, err := h.cache.Get(ctx, query.ProductID()); err == nil && found {
			return fromAggregate(cached), nil
		}
	}

	resp, aggregate, err := h.load(ctx, query)
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	if !query.IncludeDeleted() && aggregate != nil {
		// Best effort: a failed cache write must not fail the read.
		_ = h.cache.Set(ctx, aggregate)
	}

	return resp, nil
}

func (h GetProductQueryHandler) load(
	ctx context.Context, query GetProductQuery,
) (GetProductQueryResponse, *product.Product, error) {
	stmt := `
		SELECT
			id,
			name,
			description,
			sku,
			price,
			stock_quantity,
			category,
			deleted_at
		FROM products
		WHERE id = ?
	`
	if !query.IncludeDeleted() {
		stmt += " AND deleted_at IS NULL"
	}

	var resp GetProductQueryResponse
	var deletedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(stmt, query.ProductID()).Row()
	err := row.Scan(
		&resp.ID,
		&resp.Name,
		&resp.Description,
		&resp.SKU,
		&resp.Price,
		&resp.StockQuantity,
		&resp.Category,
		&deletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetProductQueryResponse{}, nil, errs.NewObjectNotFoundError("productId", query.ProductID())
		}
		return GetProductQueryResponse{}, nil, err
	}

	resp.Archived = deletedAt.Valid

	var aggregate *product.Product
	if !resp.Archived {
		aggregate, err = toAggregate(resp)
		if err != nil {
			return GetProductQueryResponse{}, nil, err
		}
	}

	return resp, aggregate, nil
}

func fromAggregate(p *product.Product) GetProductQueryResponse {
	return GetProductQueryResponse{
		ID:            p.ID(),
		Name:          p.Name(),
		Description:   p.Description(),
		SKU:           p.SKU(),
		Price:         p.Price().String(),
		StockQuantity: p.StockQuantity(),
		Category:      p.Category(),
	}
}

func toAggregate(resp GetProductQueryResponse) (*product.Product, error) {
	price, err := kernel.NewMoneyFromString(resp.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		resp.ID, resp.Name, resp.Description, resp.SKU, price, resp.StockQuantity, resp.Category,
	)
}
