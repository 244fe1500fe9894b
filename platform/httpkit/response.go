// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"errors"
	"net/http"

	"storefront_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string      `json:"error"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// HandleError attaches err to the gin context, so RequestLogger reports the
// request as failed, and aborts with a JSON body. Typed *apperr.Error values
// choose the status code; anything else is a 400 with the error text.
// Returns false when err is nil.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	_ = c.Error(err)

	resp := ErrorResponse{
		Error:     err.Error(),
		RequestID: c.GetString(ContextRequestIDKey),
	}
	status := http.StatusBadRequest

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		status = domainErr.HTTPStatus()
		resp.Error = domainErr.Message
		resp.Details = domainErr.Details
	}

	c.AbortWithStatusJSON(status, resp)
	return true
}
