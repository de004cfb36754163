package utils_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/shopmart/backend/internal/core/domain"
	"github.com/shopmart/backend/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func validCustomer() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: "+91-9000000000",
		Address: domain.Address{
			Street: "12 MG Road", City: "Bengaluru", State: "Karnataka",
			Pincode: "560001", Country: "India",
		},
	}
}

func TestValidateCustomerDetails(t *testing.T) {
	testCases := []struct {
		desc   string
		mutate func(*domain.CustomerDetails)
		ok     bool
	}{
		{"valid", func(c *domain.CustomerDetails) {}, true},
		{"missing name", func(c *domain.CustomerDetails) { c.Name = "  " }, false},
		{"bad email", func(c *domain.CustomerDetails) { c.Email = "not-an-email" }, false},
		{"email without domain dot", func(c *domain.CustomerDetails) { c.Email = "a@b" }, false},
		{"missing phone", func(c *domain.CustomerDetails) { c.Phone = "" }, false},
		{"missing street", func(c *domain.CustomerDetails) { c.Address.Street = "" }, false},
		{"missing pincode", func(c *domain.CustomerDetails) { c.Address.Pincode = "" }, false},
		{"missing country", func(c *domain.CustomerDetails) { c.Address.Country = "" }, false},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			customer := validCustomer()
			tc.mutate(&customer)
			err := utils.ValidateCustomerDetails(customer)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrValidation)
			}
		})
	}
}

func TestValidateLineItems(t *testing.T) {
	good := domain.LineItem{ProductID: "p1", Name: "Sneakers", Price: decimal.MustParse("500"), Quantity: 2}

	assert.NoError(t, utils.ValidateLineItems([]domain.LineItem{good}))
	assert.ErrorIs(t, utils.ValidateLineItems(nil), domain.ErrValidation)

	zeroQty := good
	zeroQty.Quantity = 0
	assert.ErrorIs(t, utils.ValidateLineItems([]domain.LineItem{zeroQty}), domain.ErrValidation)

	negPrice := good
	negPrice.Price = decimal.MustParse("-1")
	assert.ErrorIs(t, utils.ValidateLineItems([]domain.LineItem{negPrice}), domain.ErrValidation)

	noName := good
	noName.Name = ""
	assert.ErrorIs(t, utils.ValidateLineItems([]domain.LineItem{good, noName}), domain.ErrValidation)
}
