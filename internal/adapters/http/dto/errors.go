// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// Fixed client-facing messages. Error details stay in the logs.
const (
	// MessageCheckQueryParameters is returned for any failed quote listing.
	MessageCheckQueryParameters = "Please check query parameters"

	// MessageInvalidID is returned for any failed quote lookup.
	MessageInvalidID = "Invalid ID"

	// MessageRouteNotFound is returned for unknown paths.
	MessageRouteNotFound = "Route not found"

	// MessageMethodNotAllowed is returned when the path exists under another method.
	MessageMethodNotAllowed = "Method not allowed"

	// MessageInternal is returned when a handler panics.
	MessageInternal = "Something went wrong"

	// MessageTimeout is returned when a request exceeds its deadline.
	MessageTimeout = "Request timed out"

	// MessageBodyTooLarge is returned when the declared body exceeds the configured limit.
	MessageBodyTooLarge = "Request body too large"
)

// StatusResponse is the error envelope for every non-2xx response.
type StatusResponse struct {
	// Status is the numeric code followed by its reason phrase, e.g. "400 - Bad Request".
	Status string `json:"status"`

	// Message is a fixed human-readable message.
	Message string `json:"message"`
}

// NewStatusResponse creates the envelope for the given HTTP status code.
func NewStatusResponse(code int, message string) *StatusResponse {
	return &StatusResponse{
		Status:  fmt.Sprintf("%d - %s", code, http.StatusText(code)),
		Message: message,
	}
}

// Abort writes the envelope with the given code and stops the handler chain.
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, NewStatusResponse(code, message))
}

// RespondBadRequest collapses err into a 400 with a fixed message.
// The error, its domain kind and any failed fields are logged through the
// request logger: store failures at ERROR, everything else at WARN.
func RespondBadRequest(c *gin.Context, err error, message string) {
	ctx := c.Request.Context()
	kind := domain.Kind(err)

	level := slog.LevelWarn
	if kind == "query_error" || kind == "unknown" {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("error_kind", kind),
		slog.Any("error", err),
		slog.String("path", c.Request.URL.Path),
	}

	if IsValidationError(err) {
		attrs = append(attrs, slog.Any("fields", ValidationErrors(err)))
	}

	logging.FromContext(ctx).LogAttrs(ctx, level, "request rejected", attrs...)

	Abort(c, http.StatusBadRequest, message)
}
