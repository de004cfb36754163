package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/shopmart/backend/internal/adapter/config"
	handler "github.com/shopmart/backend/internal/adapter/handler/http"
	"github.com/shopmart/backend/internal/adapter/storage/repository"
	"github.com/shopmart/backend/internal/core/domain"
	"github.com/shopmart/backend/internal/core/port"
	"github.com/shopmart/backend/internal/core/port/mock"
	"github.com/shopmart/backend/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

func seedTestOrder(t *testing.T, repo *repository.MemoryRepository, id string, email string) {
	t.Helper()
	_, err := repo.CreateOrder(context.Background(), &domain.Order{
		ID:     id,
		Number: "ORD-RT-" + id,
		Items: []domain.LineItem{
			{ProductID: "p1", Name: "Sneakers", Price: decimal.MustParse("500"), Quantity: 1},
		},
		Customer: domain.CustomerDetails{
			Name:  "Owner",
			Email: email,
			Phone: "+91-9000000000",
			Address: domain.Address{
				Street: "12 MG Road", City: "Bengaluru", State: "Karnataka",
				Pincode: "560001", Country: "India",
			},
		},
		TotalAmount:   decimal.MustParse("500"),
		Status:        domain.OrderStatusProcessing,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentID:     "pay_" + id,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	})
	assert.NoError(t, err)
}

func newTestRouter(t *testing.T) *handler.Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockCtrl := gomock.NewController(t)

	ts := mock.NewMockTokenService(mockCtrl)
	ts.EXPECT().VerifyToken(customerToken).
		Return(&port.TokenPayload{UserID: 1, Email: "asha@example.com", Role: domain.RoleCustomer}, nil).
		AnyTimes()
	ts.EXPECT().VerifyToken(adminToken).
		Return(&port.TokenPayload{UserID: 2, Email: "ops@example.com", Role: domain.RoleAdmin}, nil).
		AnyTimes()
	ts.EXPECT().VerifyToken(gomock.Any()).
		Return(nil, domain.ErrInvalidToken).
		AnyTimes()

	notifier := mock.NewMockNotifier(mockCtrl)
	notifier.EXPECT().OrderShipped(gomock.Any()).AnyTimes()
	notifier.EXPECT().OrderDelivered(gomock.Any()).AnyTimes()

	repo := repository.NewMemoryRepository()
	seedTestOrder(t, repo, "own", "asha@example.com")
	seedTestOrder(t, repo, "foreign", "bob@example.com")

	svc, err := service.NewService(repo, ts, mock.NewMockPaymentVerifier(mockCtrl), notifier, zap.NewNop())
	assert.NoError(t, err)

	userHandler, err := handler.NewUserHandler(svc, zap.NewNop())
	assert.NoError(t, err)
	orderHandler, err := handler.NewOrderHandler(svc, zap.NewNop())
	assert.NoError(t, err)

	router, err := handler.NewRouter(&config.HTTP{}, ts, orderHandler, userHandler)
	assert.NoError(t, err)
	return router
}

func doRequest(router *handler.Router, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AdminGate(t *testing.T) {
	router := newTestRouter(t)

	body := `{"status":"shipped","trackingNumber":"TRK123"}`

	// no token
	rec := doRequest(router, http.MethodPatch, "/api/admin/orders/own/status", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// a customer token never reaches the admin surface
	rec = doRequest(router, http.MethodPatch, "/api/admin/orders/own/status", customerToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// an admin token does
	rec = doRequest(router, http.MethodPatch, "/api/admin/orders/own/status", adminToken, body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"shipped"`)
}

func TestRouter_GetOrderOwnership(t *testing.T) {
	router := newTestRouter(t)

	// customers read their own orders
	rec := doRequest(router, http.MethodGet, "/api/orders/own", customerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// a foreign order is indistinguishable from a missing one
	rec = doRequest(router, http.MethodGet, "/api/orders/foreign", customerToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// admins see everything
	rec = doRequest(router, http.MethodGet, "/api/orders/foreign", adminToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
