// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence, converting between the customer aggregate and its
// relational representation.
package customerrepo

import (
	"hydrohub/internal/core/domain/model/customer"
	"hydrohub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// The account balance is stored in the smallest currency unit; negative
// values mean the customer owes the business.
type CustomerDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Phone          string
	AccountBalance int64
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Phone:          aggregate.Phone(),
		AccountBalance: aggregate.AccountBalance().Amount(),
	}
}

// toDomain converts a database DTO to a customer aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Phone, kernel.NewMoney(dto.AccountBalance))
}
