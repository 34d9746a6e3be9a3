package payment

// CreatePaymentRequest represents the request payload for creating a payment.
type CreatePaymentRequest struct {
	UserID      int64   `validate:"required,gt=0"`
	Amount      float64 `validate:"required,gt=0"`
	Currency    string  `validate:"omitempty,max=10"`
	Description string  `validate:"omitempty,max=1000"`
}

// UpdateStatusRequest represents the request payload for a status transition.
type UpdateStatusRequest struct {
	ID     int64  `validate:"required,gt=0"`
	Status string `validate:"required,oneof=pending completed failed cancelled"`
}

// ListPaymentsRequest represents the request payload for listing payments.
// UserID optionally restricts the listing to one user's payments.
type ListPaymentsRequest struct {
	UserID *int64
	Limit  int
	Offset int
}
