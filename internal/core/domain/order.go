package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// lifecycleIndex orders the forward path of the state machine.
// Cancelled sits outside the path and is handled separately.
var lifecycleIndex = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := lifecycleIndex[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from s to
// next. Cancellation is allowed from any non-terminal state; otherwise only
// forward moves along the lifecycle are accepted.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if next == OrderStatusCancelled {
		return !s.Terminal()
	}
	if s == OrderStatusCancelled {
		return false
	}
	return lifecycleIndex[next] > lifecycleIndex[s]
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// LineItem is a snapshot of a catalog product taken at order time.
// It is never re-read from the catalog, so later product edits or
// deletions do not change what the order shows.
type LineItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Image     string
	Category  string
}

type Address struct {
	Street  string
	City    string
	State   string
	Pincode string
	Country string
}

type CustomerDetails struct {
	Name    string
	Email   string
	Phone   string
	Address Address
}

// PaymentConfirmation is the opaque triple the payment gateway hands back
// after a successful charge.
type PaymentConfirmation struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

type Order struct {
	ID                string
	Number            string
	Items             []LineItem
	Customer          CustomerDetails
	TotalAmount       decimal.Decimal
	Status            OrderStatus
	PaymentStatus     PaymentStatus
	PaymentID         string
	GatewayOrderID    string
	TrackingNumber    string
	EstimatedDelivery time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ItemsTotal computes the sum of price*quantity over the line items.
func (o *Order) ItemsTotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range o.Items {
		qty, err := decimal.New(int64(it.Quantity), 0)
		if err != nil {
			return decimal.Decimal{}, err
		}
		line, err := it.Price.Mul(qty)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total, err = total.Add(line)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	return total, nil
}

// StatusUpdate carries the fields an admin status change may set.
// TrackingNumber and EstimatedDelivery are settable only through here.
type StatusUpdate struct {
	Status            OrderStatus
	Notes             string
	TrackingNumber    string
	EstimatedDelivery time.Time
}
