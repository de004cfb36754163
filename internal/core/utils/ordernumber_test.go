package utils_test

import (
	"regexp"
	"testing"

	"github.com/shopmart/backend/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{5}$`)

func TestNewOrderNumber_Format(t *testing.T) {
	for i := 0; i < 10; i++ {
		number := utils.NewOrderNumber()
		assert.Regexp(t, orderNumberPattern, number)
	}
}

func TestNewOrderNumber_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		number := utils.NewOrderNumber()
		_, dup := seen[number]
		assert.False(t, dup, "duplicate order number %q after %d iterations", number, i)
		seen[number] = struct{}{}
	}
}
