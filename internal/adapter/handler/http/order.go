package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/shopmart/backend/internal/core/domain"
	"github.com/shopmart/backend/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type lineItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

type customerRequest struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Address addressRequest `json:"address"`
}

type paymentRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewayPaymentID string `json:"gatewayPaymentId"`
	Signature        string `json:"signature"`
}

type createOrderRequest struct {
	Items       []lineItemRequest `json:"items"`
	Customer    customerRequest   `json:"customerDetails"`
	TotalAmount float64           `json:"totalAmount"`
	Payment     paymentRequest    `json:"payment"`
}

type lineItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
}

type orderResponse struct {
	ID                string             `json:"id"`
	OrderNumber       string             `json:"orderNumber"`
	Items             []lineItemResponse `json:"items"`
	CustomerName      string             `json:"customerName"`
	CustomerEmail     string             `json:"customerEmail"`
	TotalAmount       decimal.Decimal    `json:"totalAmount"`
	Status            string             `json:"status"`
	PaymentStatus     string             `json:"paymentStatus"`
	TrackingNumber    string             `json:"trackingNumber,omitempty"`
	EstimatedDelivery time.Time          `json:"estimatedDelivery"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	items := make([]lineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, lineItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
			Category:  it.Category,
		})
	}
	return orderResponse{
		ID:                o.ID,
		OrderNumber:       o.Number,
		Items:             items,
		CustomerName:      o.Customer.Name,
		CustomerEmail:     o.Customer.Email,
		TotalAmount:       o.TotalAmount,
		Status:            string(o.Status),
		PaymentStatus:     string(o.PaymentStatus),
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDelivery,
		Notes:             o.Notes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

// CreateOrder handles the checkout submission: an item snapshot, customer
// details and the gateway payment confirmation.
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		price, err := decimal.NewFromFloat64(it.Price)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		items = append(items, domain.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     price,
			Quantity:  it.Quantity,
			Image:     it.Image,
			Category:  it.Category,
		})
	}

	total, err := decimal.NewFromFloat64(req.TotalAmount)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	customer := domain.CustomerDetails{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Phone:   req.Customer.Phone,
		Address: domain.Address(req.Customer.Address),
	}

	payment := domain.PaymentConfirmation{
		GatewayOrderID:   req.Payment.GatewayOrderID,
		GatewayPaymentID: req.Payment.GatewayPaymentID,
		Signature:        req.Payment.Signature,
	}

	order, err := oh.service.CreateOrder(ctx, items, customer, total, payment)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	// Customers only see their own orders. Not-found instead of forbidden,
	// so foreign order ids stay unprobeable.
	payload := getAuthPayload(ctx)
	if payload.Role != domain.RoleAdmin && !strings.EqualFold(order.Customer.Email, payload.Email) {
		oh.handleError(ctx, domain.ErrDataNotFound)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

// ListOrdersByCustomer returns the authenticated customer's orders,
// newest first.
func (oh *OrderHandler) ListOrdersByCustomer(ctx *gin.Context) {
	email := getAuthPayload(ctx).Email

	list, err := oh.service.GetOrdersByCustomer(ctx, email)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}

	oh.handleSuccess(ctx, result)
}

type updateStatusRequest struct {
	Status            string `json:"status"`
	Notes             string `json:"notes"`
	TrackingNumber    string `json:"trackingNumber"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// UpdateStatus applies an admin-driven status transition.
func (oh *OrderHandler) UpdateStatus(ctx *gin.Context) {
	req := updateStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	update := domain.StatusUpdate{
		Status:         domain.OrderStatus(req.Status),
		Notes:          req.Notes,
		TrackingNumber: req.TrackingNumber,
	}
	if req.EstimatedDelivery != "" {
		eta, err := time.Parse(time.RFC3339, req.EstimatedDelivery)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		update.EstimatedDelivery = eta
	}

	order, err := oh.service.UpdateOrderStatus(ctx, ctx.Param("id"), update)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}
