package payment

import "time"

// Payment represents a payment entity in the system.
type Payment struct {
	ID          int64     // ID is the server-assigned unique identifier
	UserID      int64     // UserID references the paying user (not enforced as FK)
	Amount      float64   // Amount is the payment amount with two decimal places
	Currency    string    // Currency defaults to "USD"
	Description string    // Description is optional free text
	Status      string    // Status is one of the enumerated payment statuses
	CreatedAt   time.Time // CreatedAt is set by the server on insert
	UpdatedAt   time.Time // UpdatedAt is bumped on every update
}

// Payment status values. Status transitions are restricted to this set.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// DefaultCurrency is assigned when a create request omits the currency.
const DefaultCurrency = "USD"

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}
