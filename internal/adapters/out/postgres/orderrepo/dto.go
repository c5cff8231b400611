// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate owns its line items, so item rows
// live and die with their order: inserts cascade from the order and updates
// replace the item set wholesale.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string form to keep rows readable and stable across
// enum reordering. Version backs optimistic concurrency.
type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64           `gorm:"not null;index:idx_order_customer"`
	OrderDate       time.Time       `gorm:"not null;index:idx_order_date"`
	Status          string          `gorm:"type:varchar(20);not null;index:idx_order_status"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingAddress string          `gorm:"type:varchar(255);not null"`
	Notes           string          `gorm:"type:varchar(500)"`
	PaymentMethod   string          `gorm:"type:varchar(50)"`
	ShippingMethod  string          `gorm:"type:varchar(100)"`
	TrackingNumber  string          `gorm:"type:varchar(100)"`
	Version         int             `gorm:"not null"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line. The unit price keeps four
// decimal places so sub-cent prices survive the round trip and the recomputed
// total matches what was persisted.
type OrderItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index:idx_order_item_order"`
	ProductID   int64           `gorm:"not null;index:idx_order_item_product"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(19,4);not null"`
	Quantity    int             `gorm:"not null"`
	Notes       string          `gorm:"type:varchar(200)"`
}

// TableName overrides GORM's default naming convention.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation. The
// stored version is the caller's concern: Add and Update write the next
// version, not the aggregate's current one.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		CustomerID:      aggregate.CustomerID(),
		OrderDate:       aggregate.OrderDate(),
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount().Amount(),
		TaxAmount:       aggregate.TaxAmount().Amount(),
		DiscountAmount:  aggregate.DiscountAmount().Amount(),
		ShippingAddress: aggregate.ShippingAddress(),
		Notes:           aggregate.Notes(),
		PaymentMethod:   aggregate.PaymentMethod(),
		ShippingMethod:  aggregate.ShippingMethod(),
		TrackingNumber:  aggregate.TrackingNumber(),
		Version:         aggregate.Version(),
		Items:           itemDTOs,
	}
}

func itemFromDomain(orderID int64, item *order.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:          item.ID(),
		OrderID:     orderID,
		ProductID:   item.ProductID(),
		ProductName: item.ProductName(),
		UnitPrice:   item.UnitPrice().Amount(),
		Quantity:    item.Quantity(),
		Notes:       item.Notes(),
	}
}

// toDomain reconstructs an order aggregate from a database row. Restoring
// recomputes the total from the items, so a drifted stored total can never
// leak out.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreOrderItem(
			itemDTO.ID,
			itemDTO.ProductID,
			itemDTO.ProductName,
			kernel.NewMoney(itemDTO.UnitPrice),
			itemDTO.Quantity,
			itemDTO.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.OrderDate,
		status,
		dto.ShippingAddress,
		items,
		dto.Version,
	)
	if err != nil {
		return nil, err
	}

	if err := applyOptional(aggregate, dto); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func applyOptional(aggregate *order.Order, dto OrderDTO) error {
	if err := aggregate.SetNotes(dto.Notes); err != nil {
		return err
	}
	if err := aggregate.SetPaymentMethod(dto.PaymentMethod); err != nil {
		return err
	}
	if err := aggregate.SetShippingMethod(dto.ShippingMethod); err != nil {
		return err
	}
	if err := aggregate.SetTrackingNumber(dto.TrackingNumber); err != nil {
		return err
	}
	if err := aggregate.SetTaxAmount(kernel.NewMoney(dto.TaxAmount)); err != nil {
		return err
	}
	return aggregate.SetDiscountAmount(kernel.NewMoney(dto.DiscountAmount))
}
