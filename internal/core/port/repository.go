package port

import (
	"context"

	"github.com/shopmart/backend/internal/core/domain"
)

// UpdateOrderFn mutates an order inside the store's per-order critical
// section. The order it receives is the previously persisted state.
type UpdateOrderFn func(*domain.Order) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID string, updateFn UpdateOrderFn) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, email string) ([]*domain.Order, error)
}
