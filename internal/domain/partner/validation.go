package partner

import (
	"regexp"
	"strings"

	"github.com/stockbook/backend/internal/domain/shared"
)

var (
	phoneRegex = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validatePartyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validateContactFields(contactPerson, phone, email, address string) error {
	if contactPerson != "" && len(contactPerson) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact person cannot exceed 100 characters")
	}
	if phone != "" {
		if len(phone) > 50 {
			return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
		}
		if !phoneRegex.MatchString(phone) {
			return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
		}
	}
	if email != "" {
		if len(email) > 200 {
			return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
		}
		if !emailRegex.MatchString(email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	return nil
}
