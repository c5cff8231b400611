package customerrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"commerce/internal/adapters/out/postgres/sqlerr"
	"commerce/internal/core/domain/model/customer"
	"commerce/internal/pkg/errs"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer and assigns the database-generated id.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	dto := fromDomain(aggregate)
	dto.CreatedAt = now
	dto.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return sqlerr.Translate(err, aggregate.Email())
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"customer_code":        dto.CustomerCode,
		"first_name":           dto.FirstName,
		"last_name":            dto.LastName,
		"email":                dto.Email,
		"phone":                dto.Phone,
		"password_hash":        dto.PasswordHash,
		"address_street":       dto.Address.Street,
		"address_city":         dto.Address.City,
		"address_postal_code":  dto.Address.PostalCode,
		"address_country_code": dto.Address.CountryCode,
		"account_balance":      dto.AccountBalance,
		"updated_at":           time.Now().UTC(),
	})
	if result.Error != nil {
		return sqlerr.Translate(result.Error, aggregate.Email())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customerId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by id. Soft-deleted rows are not visible here.
func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetWithDeleted retrieves a customer by id, including soft-deleted rows.
func (r *GormCustomerRepository) GetWithDeleted(ctx context.Context, id int64) (*customer.Customer, error) {
	return r.get(r.db.WithContext(ctx).Unscoped(), id)
}

func (r *GormCustomerRepository) get(db *gorm.DB, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a non-deleted customer by exact email.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete soft-deletes a customer. The row stays behind a deletion timestamp.
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customerId", id)
	}

	return nil
}
