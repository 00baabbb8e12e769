package partner

import (
	"time"

	"github.com/stockbook/backend/internal/domain/shared"
)

// Supplier represents a party goods are purchased from.
// It is the aggregate root for supplier-related operations.
type Supplier struct {
	shared.BaseAggregateRoot
	Name          string `gorm:"type:varchar(200);not null"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Phone         string `gorm:"type:varchar(50);index"`
	Email         string `gorm:"type:varchar(200);index"`
	Address       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(name, contactPerson, phone, email, address string) (*Supplier, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}
	if err := validateContactFields(contactPerson, phone, email, address); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ContactPerson:     contactPerson,
		Phone:             phone,
		Email:             email,
		Address:           address,
	}, nil
}

// Update updates the supplier's information
func (s *Supplier) Update(name, contactPerson, phone, email, address string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}
	if err := validateContactFields(contactPerson, phone, email, address); err != nil {
		return err
	}

	s.Name = name
	s.ContactPerson = contactPerson
	s.Phone = phone
	s.Email = email
	s.Address = address
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
