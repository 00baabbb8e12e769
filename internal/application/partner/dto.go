package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/partner"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Phone         string `json:"phone" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Address       string `json:"address" binding:"max=500"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Phone         string `json:"phone" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Address       string `json:"address" binding:"max=500"`
}

// CustomerResponse represents customer data in API responses
type CustomerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Phone         string `json:"phone" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Address       string `json:"address" binding:"max=500"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Phone         string `json:"phone" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Address       string `json:"address" binding:"max=500"`
}

// SupplierResponse represents supplier data in API responses
type SupplierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PartyListFilter contains filtering options for listing customers or suppliers
type PartyListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCustomerResponse converts a customer aggregate to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToSupplierResponse converts a supplier aggregate to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
