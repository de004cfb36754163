package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopmart/backend/internal/core/domain"
	"github.com/shopmart/backend/internal/core/port"
)

// MemoryRepository is the reference in-memory order store. It implements
// the same contract as the postgres repository and backs the service when
// no database is configured, and the service tests. The single mutex
// serializes updates, so an UpdateOrder callback always observes the
// previously persisted state.
type MemoryRepository struct {
	mu         sync.RWMutex
	orders     map[string]*domain.Order
	byPayment  map[string]string
	byNumber   map[string]string
	users      map[string]*domain.User
	nextUserID uint64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders:    make(map[string]*domain.Order),
		byPayment: make(map[string]string),
		byNumber:  make(map[string]string),
		users:     make(map[string]*domain.User),
	}
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Items = make([]domain.LineItem, len(o.Items))
	copy(clone.Items, o.Items)
	return &clone
}

func (mr *MemoryRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, ok := mr.orders[order.ID]; ok {
		return nil, domain.ErrConflictingData
	}
	if _, ok := mr.byPayment[order.PaymentID]; ok {
		return nil, domain.ErrDuplicatePayment
	}
	if _, ok := mr.byNumber[order.Number]; ok {
		return nil, domain.ErrConflictingData
	}

	mr.orders[order.ID] = cloneOrder(order)
	mr.byPayment[order.PaymentID] = order.ID
	mr.byNumber[order.Number] = order.ID

	return order, nil
}

func (mr *MemoryRepository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	order, ok := mr.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return cloneOrder(order), nil
}

func (mr *MemoryRepository) UpdateOrder(ctx context.Context, orderID string, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	current, ok := mr.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	// The callback works on a copy: a rejected update leaves the stored
	// state untouched.
	order := cloneOrder(current)
	if err := updateFn(order); err != nil {
		return nil, err
	}

	mr.orders[orderID] = cloneOrder(order)
	return order, nil
}

func (mr *MemoryRepository) ListOrdersByCustomer(ctx context.Context, email string) ([]*domain.Order, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	list := make([]*domain.Order, 0)
	for _, order := range mr.orders {
		if strings.EqualFold(order.Customer.Email, email) {
			list = append(list, cloneOrder(order))
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return list, nil
}

func (mr *MemoryRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := mr.users[key]; ok {
		return nil, domain.ErrConflictingData
	}

	mr.nextUserID++
	stored := *user
	stored.ID = mr.nextUserID
	mr.users[key] = &stored

	result := stored
	return &result, nil
}

func (mr *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	user, ok := mr.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	result := *user
	return &result, nil
}
