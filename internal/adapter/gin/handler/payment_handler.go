package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "crm-services/internal/domain/payment"
	"crm-services/internal/usecase/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	uc  payment.Usecase
	log *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(uc payment.Usecase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:  uc,
		log: log,
	}
}

// CreatePaymentRequest represents the HTTP request body for creating a payment
type CreatePaymentRequest struct {
	UserID      int64   `json:"user_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

// UpdateStatusRequest represents the HTTP request body for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PaymentResponse represents the HTTP response for payment data
type PaymentResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListPaymentsResponse represents the HTTP response for listing payments
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Count    int               `json:"count"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      p.Status,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create payment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	p, err := h.uc.CreatePayment(c.Request.Context(), payment.CreatePaymentRequest{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPaymentResponse(p))
}

// GetPayment handles GET /payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.uc.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(p))
}

// UpdateStatus handles PUT /payments/:id/status
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	p, err := h.uc.UpdateStatus(c.Request.Context(), payment.UpdateStatusRequest{
		ID:     id,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(p))
}

// DeletePayment handles DELETE /payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.uc.DeletePayment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	limit, offset := parsePage(c)

	var userID *int64
	if s := c.Query("user_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: "user_id must be a positive number",
			})
			return
		}
		userID = &id
	}

	payments, err := h.uc.ListPayments(c.Request.Context(), payment.ListPaymentsRequest{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = toPaymentResponse(&payments[i])
	}

	c.JSON(http.StatusOK, ListPaymentsResponse{Payments: out, Count: len(out)})
}
