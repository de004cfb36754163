package port

import (
	"context"

	"github.com/shopmart/backend/internal/core/domain"
)

// Notifier schedules best-effort customer notifications. Implementations
// must never block the caller on the mail transport; failures are observed
// through logs, not through these calls.
//
//go:generate mockgen -source=notification.go -destination=mock/notification.go -package=mock
type Notifier interface {
	OrderConfirmation(order *domain.Order)
	OrderShipped(order *domain.Order)
	OrderDelivered(order *domain.Order)
	Welcome(name string, email string)
}

// MailTransport delivers one rendered message. One call is one send
// attempt; retry policy, if any, lives behind this interface.
type MailTransport interface {
	SendRaw(ctx context.Context, to string, subject string, html string, text string) (messageID string, err error)
}
