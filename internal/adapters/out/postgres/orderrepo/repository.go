package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"commerce/internal/adapters/out/postgres/sqlerr"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Writes recompute the order total first, so the stored total is always the
// rounded sum of the stored items. Update is conditioned on the aggregate's
// version; a lost race surfaces as ConcurrentModificationError and the
// aggregate's version advances only after the row actually changed.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and assigns the generated ids.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	aggregate.RecalculateTotal()

	now := time.Now().UTC()
	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	dto.CreatedAt = now
	dto.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Translate(err, "")
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}
	for i, item := range aggregate.Items() {
		if err := item.AssignID(dto.Items[i].ID); err != nil {
			return err
		}
	}
	aggregate.AdvanceVersion()

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. The write succeeds only if the stored
// version still matches the aggregate's; item rows are reconciled with the
// aggregate's current set since the order owns them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	aggregate.RecalculateTotal()

	dto := fromDomain(aggregate)
	expected := aggregate.Version()

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Updates(map[string]any{
			"customer_id":      dto.CustomerID,
			"order_date":       dto.OrderDate,
			"status":           dto.Status,
			"total_amount":     dto.TotalAmount,
			"tax_amount":       dto.TaxAmount,
			"discount_amount":  dto.DiscountAmount,
			"shipping_address": dto.ShippingAddress,
			"notes":            dto.Notes,
			"payment_method":   dto.PaymentMethod,
			"shipping_method":  dto.ShippingMethod,
			"tracking_number":  dto.TrackingNumber,
			"version":          expected + 1,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return sqlerr.Translate(result.Error, "")
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, dto.ID, expected)
	}

	if err := r.syncItems(ctx, aggregate, dto); err != nil {
		return err
	}
	aggregate.AdvanceVersion()

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMissedUpdate distinguishes a vanished row from a version race.
func (r *GormOrderRepository) classifyMissedUpdate(ctx context.Context, id int64, expected int) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return errs.NewConcurrentModificationError("order", id, expected)
}

// syncItems reconciles the item rows with the aggregate's current set:
// removed items lose their rows, surviving rows are rewritten in place, and
// new items are inserted and receive their generated ids.
func (r *GormOrderRepository) syncItems(ctx context.Context, aggregate *order.Order, dto OrderDTO) error {
	db := r.db.WithContext(ctx)

	kept := make([]int64, 0, len(dto.Items))
	for _, item := range dto.Items {
		if item.ID != 0 {
			kept = append(kept, item.ID)
		}
	}

	prune := db.Where("order_id = ?", dto.ID)
	if len(kept) > 0 {
		prune = prune.Where("id NOT IN ?", kept)
	}
	if err := prune.Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	for i, item := range aggregate.Items() {
		row := dto.Items[i]
		row.OrderID = dto.ID

		if row.ID == 0 {
			if err := db.Create(&row).Error; err != nil {
				return err
			}
			if err := item.AssignID(row.ID); err != nil {
				return err
			}
			continue
		}

		if err := db.Save(&row).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order with its items. Soft-deleted orders are not visible.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetWithDeleted retrieves an order by id, including soft-deleted orders.
func (r *GormOrderRepository) GetWithDeleted(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Unscoped(), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_items.id ASC")
	}).First(&dto, "orders.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingBefore retrieves non-deleted orders still pending whose order
// date is strictly before the cutoff.
func (r *GormOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_items.id ASC")
	}).Find(&dtos, "status = ? AND order_date < ?", order.Pending.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete soft-deletes an order. Item rows stay owned by the hidden order.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return nil
}
