package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "crm-services/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

var errorLabels = map[int]string{
	http.StatusBadRequest:          "validation_error",
	http.StatusNotFound:            "not_found",
	http.StatusConflict:            "already_exists",
	http.StatusInternalServerError: "internal_error",
}

// respondError converts usecase errors to HTTP responses using the
// shared status mapping, so REST and gRPC report the same taxonomy.
func respondError(c *gin.Context, err error) {
	code := pkgerrors.HTTPStatus(err)
	label, ok := errorLabels[code]
	if !ok {
		label = "internal_error"
	}
	c.JSON(code, ErrorResponse{
		Error:   label,
		Message: err.Error(),
	})
}
