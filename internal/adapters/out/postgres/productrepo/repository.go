package productrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"commerce/internal/adapters/out/postgres/sqlerr"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product and assigns the database-generated id.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	dto := fromDomain(aggregate)
	dto.CreatedAt = now
	dto.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Translate(err, aggregate.SKU())
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing product.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":           dto.Name,
		"description":    dto.Description,
		"sku":            dto.SKU,
		"price":          dto.Price,
		"stock_quantity": dto.StockQuantity,
		"category":       dto.Category,
		"updated_at":     time.Now().UTC(),
	})
	if result.Error != nil {
		return sqlerr.Translate(result.Error, aggregate.SKU())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by id. Soft-deleted rows are not visible here.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetWithDeleted retrieves a product by id, including soft-deleted rows.
func (r *GormProductRepository) GetWithDeleted(ctx context.Context, id int64) (*product.Product, error) {
	return r.get(r.db.WithContext(ctx).Unscoped(), id)
}

func (r *GormProductRepository) get(db *gorm.DB, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySKU retrieves a non-deleted product by exact SKU.
func (r *GormProductRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", sku)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the non-deleted products for the given ids. Every id must
// resolve; the first absent one fails the whole call.
func (r *GormProductRepository) GetMany(ctx context.Context, ids []int64) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	found := make(map[int64]bool, len(dtos))
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		found[dto.ID] = true
		products = append(products, p)
	}

	for _, id := range ids {
		if !found[id] {
			return nil, errs.NewObjectNotFoundError("productId", id)
		}
	}

	return products, nil
}

// Delete soft-deletes a product. The row stays behind a deletion timestamp.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", id)
	}

	return nil
}
