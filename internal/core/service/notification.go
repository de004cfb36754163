package service

import (
	"context"
	"time"

	"github.com/shopmart/backend/internal/core/domain"
	"github.com/shopmart/backend/internal/core/port"
	"github.com/shopmart/backend/internal/core/template"
	"go.uber.org/zap"
)

// SendResult reports the outcome of a single dispatch attempt.
type SendResult struct {
	Success   bool
	MessageID string
	Err       error
}

// ShopInfo carries the storefront values the templates link back to.
type ShopInfo struct {
	ShopURL     string
	TrackingURL string
	ReviewURL   string
	Carrier     string
}

type notifyTask struct {
	to         string
	templateID string
	data       map[string]any
	orderID    string
}

// NotificationDispatcher renders templates and hands them to the mail
// transport. Mutating callers enqueue through the flow methods; a single
// worker drains the queue, which keeps sends for the same order in the
// order their transitions were accepted. A send failure is logged and
// never surfaces to the caller that triggered it.
type NotificationDispatcher struct {
	registry  *template.Registry
	transport port.MailTransport
	shop      ShopInfo
	timeout   time.Duration
	logger    *zap.Logger
	queue     chan notifyTask
}

func NewNotificationDispatcher(registry *template.Registry, transport port.MailTransport,
	shop ShopInfo, timeout time.Duration, queueSize int, logger *zap.Logger) *NotificationDispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &NotificationDispatcher{
		registry:  registry,
		transport: transport,
		shop:      shop,
		timeout:   timeout,
		logger:    logger,
		queue:     make(chan notifyTask, queueSize),
	}
}

// Start launches the dispatch worker. It returns immediately; the worker
// stops when ctx is cancelled.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case task := <-d.queue:
				result := d.Send(ctx, task.to, task.templateID, task.data)
				if result.Success {
					d.logger.Debug("notification sent",
						zap.String("template", task.templateID),
						zap.String("order", task.orderID),
						zap.String("message_id", result.MessageID))
				} else {
					d.logger.Error("notification dispatch failed",
						zap.String("template", task.templateID),
						zap.String("order", task.orderID),
						zap.Error(result.Err))
				}
			case <-ctx.Done():
				d.logger.Debug("notification worker stopped")
				return
			}
		}
	}()
}

// Send renders the template and makes exactly one transport attempt.
// Transport failures come back inside the result, not as a panic or a
// propagated error; retry policy belongs to the transport.
func (d *NotificationDispatcher) Send(ctx context.Context, to string, templateID string, data map[string]any) SendResult {
	rendered, err := d.registry.Render(templateID, data)
	if err != nil {
		return SendResult{Success: false, Err: err}
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	messageID, err := d.transport.SendRaw(ctx, to, rendered.Subject, rendered.HTML, rendered.Text)
	if err != nil {
		return SendResult{Success: false, Err: err}
	}
	return SendResult{Success: true, MessageID: messageID}
}

// enqueue never blocks the mutating caller: a full queue is treated as an
// ordinary dispatch failure.
func (d *NotificationDispatcher) enqueue(task notifyTask) {
	select {
	case d.queue <- task:
	default:
		d.logger.Error("notification queue full, dropping message",
			zap.String("template", task.templateID),
			zap.String("order", task.orderID),
			zap.Error(domain.ErrNotificationDispatch))
	}
}

func (d *NotificationDispatcher) OrderConfirmation(order *domain.Order) {
	items := make([]map[string]any, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, map[string]any{
			"name":     it.Name,
			"price":    it.Price,
			"quantity": it.Quantity,
			"image":    it.Image,
		})
	}
	d.enqueue(notifyTask{
		to:         order.Customer.Email,
		templateID: template.OrderConfirmation,
		orderID:    order.ID,
		data: map[string]any{
			"customerName":  order.Customer.Name,
			"orderNumber":   order.Number,
			"orderDate":     formatDate(order.CreatedAt),
			"orderStatus":   string(order.Status),
			"paymentStatus": string(order.PaymentStatus),
			"items":         items,
			"totalAmount":   order.TotalAmount,
			"address":       formatAddress(order.Customer.Address),
			"trackingUrl":   d.trackingURL(order.Number),
		},
	})
}

func (d *NotificationDispatcher) OrderShipped(order *domain.Order) {
	d.enqueue(notifyTask{
		to:         order.Customer.Email,
		templateID: template.OrderShipped,
		orderID:    order.ID,
		data: map[string]any{
			"customerName":      order.Customer.Name,
			"orderNumber":       order.Number,
			"trackingNumber":    order.TrackingNumber,
			"carrier":           d.shop.Carrier,
			"estimatedDelivery": formatDate(order.EstimatedDelivery),
			"trackingUrl":       d.trackingURL(order.Number),
		},
	})
}

func (d *NotificationDispatcher) OrderDelivered(order *domain.Order) {
	d.enqueue(notifyTask{
		to:         order.Customer.Email,
		templateID: template.OrderDelivered,
		orderID:    order.ID,
		data: map[string]any{
			"customerName":    order.Customer.Name,
			"orderNumber":     order.Number,
			"deliveryDate":    formatDate(order.UpdatedAt),
			"deliveryAddress": formatAddress(order.Customer.Address),
			"reviewUrl":       d.shop.ReviewURL,
			"shopUrl":         d.shop.ShopURL,
		},
	})
}

func (d *NotificationDispatcher) Welcome(name string, email string) {
	d.enqueue(notifyTask{
		to:         email,
		templateID: template.Welcome,
		data: map[string]any{
			"customerName": name,
			"shopUrl":      d.shop.ShopURL,
		},
	})
}

func (d *NotificationDispatcher) trackingURL(orderNumber string) string {
	return d.shop.TrackingURL + "/" + orderNumber
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func formatAddress(a domain.Address) string {
	return a.Street + ", " + a.City + ", " + a.State + " " + a.Pincode + ", " + a.Country
}
