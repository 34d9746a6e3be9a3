package errors

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// GRPCStatus returns the gRPC status for this error
func (e *ValidationError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// GRPCStatus returns the gRPC status for this error
func (e *NotFoundError) GRPCStatus() *status.Status {
	return status.New(codes.NotFound, e.Error())
}

// AlreadyExistsError represents a uniqueness conflict
type AlreadyExistsError struct {
	Resource string
	Message  string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// GRPCStatus returns the gRPC status for this error
func (e *AlreadyExistsError) GRPCStatus() *status.Status {
	return status.New(codes.AlreadyExists, e.Error())
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// GRPCStatus returns the gRPC status for this error
func (e *InternalError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Error())
}

// GRPCStatuser interface for errors that can provide gRPC status
type GRPCStatuser interface {
	GRPCStatus() *status.Status
}

// GRPCStatus maps any error to a gRPC status. Typed errors carry their own
// code; everything else surfaces as Internal with the raw message passed
// through (internal trust boundary).
func GRPCStatus(err error) *status.Status {
	var st GRPCStatuser
	if errors.As(err, &st) {
		return st.GRPCStatus()
	}
	return status.New(codes.Internal, err.Error())
}

// httpByCode is the single mapping from error condition to HTTP status.
// Handlers go through HTTPStatus instead of switching per operation.
var httpByCode = map[codes.Code]int{
	codes.InvalidArgument: http.StatusBadRequest,
	codes.NotFound:        http.StatusNotFound,
	codes.AlreadyExists:   http.StatusConflict,
	codes.Internal:        http.StatusInternalServerError,
}

// HTTPStatus maps any error to an HTTP status code via the shared table.
func HTTPStatus(err error) int {
	if code, ok := httpByCode[GRPCStatus(err).Code()]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAlreadyExists reports whether err is an AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}
