package partner

import (
	"time"

	"github.com/stockbook/backend/internal/domain/shared"
)

// Customer represents a buying party.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseAggregateRoot
	Name          string `gorm:"type:varchar(200);not null"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Phone         string `gorm:"type:varchar(50);index"`
	Email         string `gorm:"type:varchar(200);index"`
	Address       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, contactPerson, phone, email, address string) (*Customer, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	if err := validateContactFields(contactPerson, phone, email, address); err != nil {
		return nil, err
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ContactPerson:     contactPerson,
		Phone:             phone,
		Email:             email,
		Address:           address,
	}, nil
}

// Update updates the customer's information
func (c *Customer) Update(name, contactPerson, phone, email, address string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}
	if err := validateContactFields(contactPerson, phone, email, address); err != nil {
		return err
	}

	c.Name = name
	c.ContactPerson = contactPerson
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
