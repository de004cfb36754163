package domain_test

import (
	"math/rand"
	"testing"

	"github.com/govalues/decimal"
	"github.com/shopmart/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_TransitionMatrix(t *testing.T) {
	forward := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusProcessing,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
	}
	all := append(append([]domain.OrderStatus{}, forward...), domain.OrderStatusCancelled)

	index := func(s domain.OrderStatus) int {
		for i, f := range forward {
			if f == s {
				return i
			}
		}
		return -1
	}

	for _, current := range all {
		for _, next := range all {
			want := false
			if next == domain.OrderStatusCancelled {
				want = !current.Terminal()
			} else if current != domain.OrderStatusCancelled {
				want = index(next) > index(current)
			}

			got := current.CanTransitionTo(next)
			assert.Equal(t, want, got, "transition %s -> %s", current, next)
		}
	}
}

func TestOrderStatus_Unknown(t *testing.T) {
	assert.False(t, domain.OrderStatus("returned").Valid())
	assert.False(t, domain.OrderStatusPending.CanTransitionTo(domain.OrderStatus("returned")))
	assert.False(t, domain.OrderStatus("returned").CanTransitionTo(domain.OrderStatusShipped))
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, domain.OrderStatusDelivered.Terminal())
	assert.True(t, domain.OrderStatusCancelled.Terminal())
	assert.False(t, domain.OrderStatusShipped.Terminal())
	assert.False(t, domain.OrderStatusDelivered.CanTransitionTo(domain.OrderStatusCancelled))
}

func TestOrder_ItemsTotal(t *testing.T) {
	order := domain.Order{
		Items: []domain.LineItem{
			{Name: "Sneakers", Price: decimal.MustParse("500"), Quantity: 2},
			{Name: "Cap", Price: decimal.MustParse("300"), Quantity: 1},
		},
	}

	total, err := order.ItemsTotal()
	assert.NoError(t, err)
	assert.Equal(t, 0, total.Cmp(decimal.MustParse("1300")))
}

func TestOrder_ItemsTotal_RandomItems(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		count := rng.Intn(8) + 1
		items := make([]domain.LineItem, 0, count)
		want := int64(0)
		for i := 0; i < count; i++ {
			price := int64(rng.Intn(10000))
			qty := rng.Intn(5) + 1
			want += price * int64(qty)

			p, err := decimal.New(price, 0)
			assert.NoError(t, err)
			items = append(items, domain.LineItem{Name: "item", Price: p, Quantity: qty})
		}

		order := domain.Order{Items: items}
		total, err := order.ItemsTotal()
		assert.NoError(t, err)

		expected, err := decimal.New(want, 0)
		assert.NoError(t, err)
		assert.Equal(t, 0, total.Cmp(expected))
	}
}
