package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "crm-services/internal/domain/payment"
	"crm-services/internal/usecase/payment"
	pkgerrors "crm-services/pkg/errors"
)

type mockPaymentUsecase struct {
	mock.Mock
}

func (m *mockPaymentUsecase) CreatePayment(ctx context.Context, in payment.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) UpdateStatus(ctx context.Context, in payment.UpdateStatusRequest) (*domain.Payment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) DeletePayment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPaymentUsecase) ListPayments(ctx context.Context, in payment.ListPaymentsRequest) ([]domain.Payment, error) {
	args := m.Called(ctx, in)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func setupPaymentRouter(t *testing.T) (*gin.Engine, *mockPaymentUsecase) {
	gin.SetMode(gin.TestMode)
	uc := new(mockPaymentUsecase)
	h := NewPaymentHandler(uc, zaptest.NewLogger(t))

	r := gin.New()
	r.POST("/payments", h.CreatePayment)
	r.GET("/payments", h.ListPayments)
	r.GET("/payments/:id", h.GetPayment)
	r.PUT("/payments/:id/status", h.UpdateStatus)
	r.DELETE("/payments/:id", h.DeletePayment)
	return r, uc
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	r, uc := setupPaymentRouter(t)

	uc.On("CreatePayment", mock.Anything, payment.CreatePaymentRequest{UserID: 1, Amount: 25.5}).
		Return(&domain.Payment{ID: 1, UserID: 1, Amount: 25.5, Currency: "USD", Status: "pending"}, nil)

	body := bytes.NewBufferString(`{"user_id":1,"amount":25.5}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "USD", resp.Currency)
}

func TestPaymentHandler_UpdateStatus_Invalid(t *testing.T) {
	r, uc := setupPaymentRouter(t)

	uc.On("UpdateStatus", mock.Anything, payment.UpdateStatusRequest{ID: 1, Status: "refunded"}).
		Return(nil, pkgerrors.NewValidationError("status", "must be one of: pending completed failed cancelled"))

	body := bytes.NewBufferString(`{"status":"refunded"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/payments/1/status", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_GetPayment_NotFound(t *testing.T) {
	r, uc := setupPaymentRouter(t)

	uc.On("GetPayment", mock.Anything, int64(9)).
		Return(nil, pkgerrors.NewNotFoundError("payment", "payment not found"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_ListPayments_UserFilter(t *testing.T) {
	r, uc := setupPaymentRouter(t)

	uid := int64(3)
	uc.On("ListPayments", mock.Anything, payment.ListPaymentsRequest{UserID: &uid, Limit: 100, Offset: 0}).
		Return([]domain.Payment{{ID: 1, UserID: 3}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments?user_id=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ListPaymentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestPaymentHandler_ListPayments_BadUserID(t *testing.T) {
	r, uc := setupPaymentRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments?user_id=banana", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "ListPayments")
}
