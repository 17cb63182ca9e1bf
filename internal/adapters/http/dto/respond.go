package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsValidation(err):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			domain.FieldErrors(err),
		)

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, NewErrorResponse(ErrorCodeUnauthorized, err.Error())

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// TraceID returns the trace ID of the request span, or "" when untraced.
func TraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// HandleError writes the response for err.
func HandleError(c *gin.Context, err error) {
	status, errResp := errorResponse(c, err)
	c.JSON(status, errResp)
}

// HandleFormError writes the response for err. Validation failures carry
// form back to the client; any other error is handled like HandleError.
func HandleFormError(c *gin.Context, err error, form any) {
	status, errResp := errorResponse(c, err)
	if status != http.StatusBadRequest {
		c.JSON(status, errResp)
		return
	}

	c.JSON(status, &FormErrorResponse{ErrorResponse: *errResp, Form: form})
}

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors that don't originate from domain errors.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(TraceID(c)))
}

// AbortWithError aborts the request chain and writes the response for err.
func AbortWithError(c *gin.Context, err error) {
	status, errResp := errorResponse(c, err)
	c.AbortWithStatusJSON(status, errResp)
}

// AbortWithErrorCode aborts the request chain with a specific error code.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(TraceID(c)))
}

func errorResponse(c *gin.Context, err error) (int, *ErrorResponse) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = TraceID(c)

	// Internal errors are logged with full details; the client only sees the trace id.
	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			slog.String("error", err.Error()),
			slog.String("trace_id", errResp.TraceID),
		)
	}

	return status, errResp
}
