package utils

import (
	"fmt"
	"strings"

	"github.com/shopmart/backend/internal/core/domain"
)

// ValidateCustomerDetails checks the fields an order record requires
// before creation. Returned errors wrap domain.ErrValidation.
func ValidateCustomerDetails(c domain.CustomerDetails) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if !validEmail(c.Email) {
		return fmt.Errorf("%w: customer email %q is not valid", domain.ErrValidation, c.Email)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", domain.ErrValidation)
	}
	addr := c.Address
	for _, f := range []struct{ name, value string }{
		{"street", addr.Street},
		{"city", addr.City},
		{"state", addr.State},
		{"pincode", addr.Pincode},
		{"country", addr.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: address %s is required", domain.ErrValidation, f.name)
		}
	}
	return nil
}

// ValidateLineItems checks the order line snapshot: at least one item,
// positive quantity, non-negative price.
func ValidateLineItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}
	for i, it := range items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be at least 1", domain.ErrValidation, i)
		}
		if it.Price.IsNeg() {
			return fmt.Errorf("%w: item %d price must not be negative", domain.ErrValidation, i)
		}
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%w: item %d name is required", domain.ErrValidation, i)
		}
	}
	return nil
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
