package repository_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/shopmart/backend/internal/adapter/storage/repository"
	"github.com/shopmart/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func newOrder(id, paymentID, email string, createdAt time.Time) *domain.Order {
	return &domain.Order{
		ID:     id,
		Number: "ORD-MEM-" + id,
		Items: []domain.LineItem{
			{ProductID: "p1", Name: "Sneakers", Price: decimal.MustParse("500"), Quantity: 1},
		},
		Customer: domain.CustomerDetails{
			Name:  "Asha Rao",
			Email: email,
			Phone: "+91-9000000000",
			Address: domain.Address{
				Street: "12 MG Road", City: "Bengaluru", State: "Karnataka",
				Pincode: "560001", Country: "India",
			},
		},
		TotalAmount:   decimal.MustParse("500"),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentID:     paymentID,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestMemoryRepository_CreateAndRead(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	created, err := repo.CreateOrder(ctx, newOrder("o1", "pay1", "a@b.com", time.Now()))
	assert.NoError(t, err)

	got, err := repo.ReadOrder(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Number, got.Number)

	_, err = repo.ReadOrder(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestMemoryRepository_DuplicatePayment(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	_, err := repo.CreateOrder(ctx, newOrder("o1", "pay1", "a@b.com", time.Now()))
	assert.NoError(t, err)

	_, err = repo.CreateOrder(ctx, newOrder("o2", "pay1", "a@b.com", time.Now()))
	assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
}

func TestMemoryRepository_UpdateIsolation(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	_, err := repo.CreateOrder(ctx, newOrder("o1", "pay1", "a@b.com", time.Now()))
	assert.NoError(t, err)

	// a rejected update leaves the stored order untouched
	_, err = repo.UpdateOrder(ctx, "o1", func(o *domain.Order) error {
		o.Status = domain.OrderStatusDelivered
		return domain.ErrInvalidTransition
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := repo.ReadOrder(ctx, "o1")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, got.Status)

	// mutating the returned copy must not leak into the store
	updated, err := repo.UpdateOrder(ctx, "o1", func(o *domain.Order) error {
		o.Status = domain.OrderStatusConfirmed
		return nil
	})
	assert.NoError(t, err)
	updated.Status = domain.OrderStatusCancelled

	got, err = repo.ReadOrder(ctx, "o1")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, got.Status)
}

// Concurrent updates are serialized: every callback observes the previously
// persisted state, so exactly one of N competing identical transitions wins.
func TestMemoryRepository_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	order := newOrder("o1", "pay1", "a@b.com", time.Now())
	order.Status = domain.OrderStatusProcessing
	_, err := repo.CreateOrder(ctx, order)
	assert.NoError(t, err)

	const workers = 16
	var accepted, rejected int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateOrder(ctx, "o1", func(o *domain.Order) error {
				if !o.Status.CanTransitionTo(domain.OrderStatusShipped) {
					return domain.ErrInvalidTransition
				}
				o.Status = domain.OrderStatusShipped
				return nil
			})
			mu.Lock()
			if err != nil {
				rejected++
			} else {
				accepted++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, workers-1, rejected)

	got, err := repo.ReadOrder(ctx, "o1")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)
}

func TestMemoryRepository_ListOrdersByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	base := time.Now()
	for i := 0; i < 3; i++ {
		o := newOrder("o"+strconv.Itoa(i), "pay"+strconv.Itoa(i), "x@y.com", base.Add(time.Duration(i)*time.Minute))
		_, err := repo.CreateOrder(ctx, o)
		assert.NoError(t, err)
	}
	_, err := repo.CreateOrder(ctx, newOrder("other", "payx", "else@where.com", base))
	assert.NoError(t, err)

	list, err := repo.ListOrdersByCustomer(ctx, "X@Y.COM")
	assert.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "o2", list[0].ID)
	assert.Equal(t, "o1", list[1].ID)
	assert.Equal(t, "o0", list[2].ID)
}

func TestMemoryRepository_Users(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	user, err := repo.CreateUser(ctx, &domain.User{Name: "Asha", Email: "asha@example.com", Password: "hash", Role: domain.RoleCustomer})
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)

	_, err = repo.CreateUser(ctx, &domain.User{Name: "Other", Email: "ASHA@example.com", Password: "hash"})
	assert.ErrorIs(t, err, domain.ErrConflictingData)

	got, err := repo.GetUserByEmail(ctx, "Asha@Example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, domain.RoleCustomer, got.Role)

	_, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}
