package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/shopmart/backend/internal/core/domain"
	"github.com/shopmart/backend/internal/core/port"
	"github.com/shopmart/backend/internal/core/utils"
	"go.uber.org/zap"
)

const defaultDeliveryWindow = 7 * 24 * time.Hour

// Service coordinates the order lifecycle: it verifies payments, owns the
// status state machine and triggers best-effort customer notifications.
type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	verifier     port.PaymentVerifier
	notifier     port.Notifier
	logger       *zap.Logger

	// orderLocks serializes commit-plus-enqueue per order. The store alone
	// serializes the commits; holding this lock until the notification is
	// enqueued keeps enqueue order equal to acceptance order.
	orderLocks sync.Map
}

func NewService(repo port.Repository, tokenService port.TokenService,
	verifier port.PaymentVerifier, notifier port.Notifier, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		verifier:     verifier,
		notifier:     notifier,
		logger:       logger,
	}, nil
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	// Self-registration only ever creates customers; admin accounts are
	// provisioned out of band.
	if user.Role == "" {
		user.Role = domain.RoleCustomer
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.notifier.Welcome(newUser.Name, newUser.Email)

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

// CreateOrder persists a new order for a verified payment. The order is the
// durable source of truth: a failed confirmation email never fails the call.
func (s *Service) CreateOrder(ctx context.Context, items []domain.LineItem, customer domain.CustomerDetails,
	totalAmount decimal.Decimal, payment domain.PaymentConfirmation) (*domain.Order, error) {
	if err := utils.ValidateCustomerDetails(customer); err != nil {
		return nil, err
	}
	if err := utils.ValidateLineItems(items); err != nil {
		return nil, err
	}

	if !s.verifier.Verify(payment.GatewayOrderID, payment.GatewayPaymentID, payment.Signature) {
		return nil, domain.ErrPaymentVerificationFailed
	}

	now := time.Now()
	order := &domain.Order{
		ID:                uuid.NewString(),
		Number:            utils.NewOrderNumber(),
		Items:             items,
		Customer:          customer,
		TotalAmount:       totalAmount,
		Status:            domain.OrderStatusPending,
		PaymentStatus:     domain.PaymentStatusPaid,
		PaymentID:         payment.GatewayPaymentID,
		GatewayOrderID:    payment.GatewayOrderID,
		EstimatedDelivery: now.Add(defaultDeliveryWindow),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	sum, err := order.ItemsTotal()
	if err != nil {
		s.logger.Error("Item sum", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if sum.Cmp(totalAmount) != 0 {
		return nil, domain.ErrAmountMismatch
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePayment) {
			return nil, domain.ErrDuplicatePayment
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	s.notifier.OrderConfirmation(newOrder)

	return newOrder, nil
}

func (s *Service) lockOrder(orderID string) func() {
	v, _ := s.orderLocks.LoadOrStore(orderID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// UpdateOrderStatus applies one state-machine transition. The transition
// check runs inside the store's per-order critical section, so it always
// observes the previously persisted status. Repeating an already applied
// transition is an accepted no-op and triggers no second notification,
// though tracking and ETA corrections still land.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, update domain.StatusUpdate) (*domain.Order, error) {
	if !update.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, update.Status)
	}

	unlock := s.lockOrder(orderID)
	defer unlock()

	changed := false
	updated, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if o.Status != update.Status {
			if !o.Status.CanTransitionTo(update.Status) {
				return domain.ErrInvalidTransition
			}
			o.Status = update.Status
			changed = true
		}

		// Tracking and ETA overwrites are idempotent, so a repeated
		// same-status call may still correct them. Notes append and would
		// duplicate on a retry, so they only land with a transition.
		if changed && update.Notes != "" {
			if o.Notes != "" {
				o.Notes += "\n"
			}
			o.Notes += update.Notes
		}
		if update.TrackingNumber != "" {
			o.TrackingNumber = update.TrackingNumber
		}
		if !update.EstimatedDelivery.IsZero() {
			o.EstimatedDelivery = update.EstimatedDelivery
		}
		if changed || update.TrackingNumber != "" || !update.EstimatedDelivery.IsZero() {
			o.UpdatedAt = time.Now()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		switch updated.Status {
		case domain.OrderStatusShipped:
			s.notifier.OrderShipped(updated)
		case domain.OrderStatusDelivered:
			s.notifier.OrderDelivered(updated)
		}
	}

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, orderID)
}

// GetOrdersByCustomer lists a customer's orders newest first. The email
// match is case-insensitive.
func (s *Service) GetOrdersByCustomer(ctx context.Context, email string) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByCustomer(ctx, strings.ToLower(email))
	if err != nil {
		s.logger.Error("Get orders for customer", zap.Error(err))
		return nil, err
	}
	return list, nil
}
