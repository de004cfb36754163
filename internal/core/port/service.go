package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/shopmart/backend/internal/core/domain"
)

type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (string, error)

	CreateOrder(ctx context.Context, items []domain.LineItem, customer domain.CustomerDetails,
		totalAmount decimal.Decimal, payment domain.PaymentConfirmation) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, update domain.StatusUpdate) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	GetOrdersByCustomer(ctx context.Context, email string) ([]*domain.Order, error)
}
