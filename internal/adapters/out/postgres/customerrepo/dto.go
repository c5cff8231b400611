// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. The embedded address is flattened into the
// customers table the same way the domain embeds it in the aggregate.
package customerrepo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. Customer code, email, and phone all carry unique indexes, so
// duplicates fail at the database and surface as ConflictError.
type CustomerDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	CustomerCode   string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_code"`
	FirstName      string          `gorm:"type:varchar(50);not null"`
	LastName       string          `gorm:"type:varchar(50);not null"`
	Email          string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_customer_email"`
	Phone          string          `gorm:"type:varchar(30);not null;uniqueIndex:idx_customer_phone"`
	PasswordHash   string          `gorm:"type:varchar(100);not null"`
	Address        AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	AccountBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents the embedded postal address columns within the
// customers table.
type AddressDTO struct {
	Street      string `gorm:"type:varchar(100)"`
	City        string `gorm:"type:varchar(50)"`
	PostalCode  string `gorm:"type:varchar(20)"`
	CountryCode string `gorm:"type:char(2)"`
}

// fromDomain converts a customer aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	address := aggregate.Address()

	return CustomerDTO{
		ID:           aggregate.ID(),
		CustomerCode: aggregate.CustomerCode(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		PasswordHash: aggregate.PasswordHash(),
		Address: AddressDTO{
			Street:      address.Street(),
			City:        address.City(),
			PostalCode:  address.PostalCode(),
			CountryCode: address.CountryCode(),
		},
		AccountBalance: aggregate.AccountBalance().Amount(),
	}
}

// toDomain reconstructs a customer aggregate from a database row.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	address, err := customer.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.PostalCode,
		dto.Address.CountryCode,
	)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		dto.ID,
		dto.CustomerCode,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.Phone,
		dto.PasswordHash,
		address,
		kernel.NewMoney(dto.AccountBalance),
	)
}
