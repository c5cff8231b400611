// Package productrepo provides data transfer objects and mapping functions for
// product persistence. It implements the repository pattern for the product
// aggregate, handling conversion between domain entities and database rows.
package productrepo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product
// aggregates. SKU carries a unique index so duplicates fail at the database
// and surface as a ConflictError.
type ProductDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"type:varchar(100);not null;index:idx_product_name"`
	Description   string          `gorm:"type:varchar(500)"`
	SKU           string          `gorm:"column:sku;type:varchar(50);not null;uniqueIndex:idx_product_sku"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StockQuantity int             `gorm:"not null"`
	Category      string          `gorm:"type:varchar(100);index:idx_product_category"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		SKU:           aggregate.SKU(),
		Price:         aggregate.Price().Amount(),
		StockQuantity: aggregate.StockQuantity(),
		Category:      aggregate.Category(),
	}
}

// toDomain reconstructs a product aggregate from a database row.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Description,
		dto.SKU,
		kernel.NewMoney(dto.Price),
		dto.StockQuantity,
		dto.Category,
	)
}
