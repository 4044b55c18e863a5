package core

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ServiceErrorBadInput        = "CRYPTOPAY_BAD_INPUT"
	ServiceErrorUnauthorized    = "CRYPTOPAY_UNAUTHORIZED"
	ServiceErrorForbidden       = "CRYPTOPAY_FORBIDDEN"
	ServiceErrorMethodNotFound  = "CRYPTOPAY_METHOD_NOT_FOUND"
	ServiceErrorRateLimited     = "CRYPTOPAY_RATE_LIMITED"
	ServiceErrorRequestFailed   = "CRYPTOPAY_REQUEST_FAILED"
	ServiceErrorRequestTimedOut = "CRYPTOPAY_REQUEST_TIMED_OUT"
	ServiceErrorExternalFailure = "CRYPTOPAY_EXTERNAL_FAILURE"
	ServiceErrorInternal        = "CRYPTOPAY_INTERNAL_ERROR"
)

var (
	ErrTokenRequired   = errors.New("core: token is required")
	ErrInvalidToken    = errors.New("core: token must start with a numeric application id followed by ':'")
	ErrRequestTimedOut = errors.New("core: request timed out")
	ErrRequestFailed   = errors.New("core: exception during request")
)

const (
	TransportErrorTimeout   = "timeout"
	TransportErrorException = "exception"
)

// TransportError reports a failure that happened before any HTTP response was
// obtained. Caller cancellation is never reported through this type.
type TransportError struct {
	Kind      string
	Operation string
	Cause     error
}

// NewTransportError classifies cause as a timeout when it is a deadline or a
// net.Error reporting Timeout, and as an exception otherwise.
func NewTransportError(operation string, cause error) *TransportError {
	kind := TransportErrorException
	if isTimeout(cause) {
		kind = TransportErrorTimeout
	}
	return &TransportError{Kind: kind, Operation: operation, Cause: cause}
}

func (e *TransportError) Error() string {
	base := ErrRequestFailed.Error()
	if e.Kind == TransportErrorTimeout {
		base = ErrRequestTimedOut.Error()
	}
	if e.Cause == nil {
		return base
	}
	return base + ": " + e.Cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrRequestTimedOut:
		return e.Kind == TransportErrorTimeout
	case ErrRequestFailed:
		return e.Kind != TransportErrorTimeout
	}
	return false
}

func (e *TransportError) ToServiceError() *goerrors.Error {
	code := http.StatusBadGateway
	textCode := ServiceErrorRequestFailed
	if e.Kind == TransportErrorTimeout {
		code = http.StatusGatewayTimeout
		textCode = ServiceErrorRequestTimedOut
	}
	return goerrors.New(e.Error(), goerrors.CategoryExternal).
		WithCode(code).
		WithTextCode(textCode).
		WithMetadata(map[string]any{
			"operation": e.Operation,
			"kind":      e.Kind,
		})
}

// RequestError is returned whenever a response was received but could not be
// turned into the expected typed result.
type RequestError struct {
	Operation  string
	StatusCode int
	APIError   *APIError
	Message    string
	Cause      error
}

func (e *RequestError) Error() string {
	if e.APIError == nil {
		if strings.TrimSpace(e.Message) == "" && e.Cause != nil {
			return e.Cause.Error()
		}
		return e.Message
	}
	detail := fmt.Sprintf("Code: %d Name: %s", e.APIError.Code, e.APIError.Name)
	if strings.TrimSpace(e.Message) == "" {
		return detail
	}
	return e.Message + "\n" + detail
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// Name returns the symbolic API error name, or "" when the server did not
// supply one.
func (e *RequestError) Name() string {
	if e == nil || e.APIError == nil {
		return ""
	}
	return e.APIError.Name
}

func (e *RequestError) ToServiceError() *goerrors.Error {
	category, textCode := requestErrorCategory(e.StatusCode)
	code := e.StatusCode
	if code == 0 {
		code = http.StatusBadGateway
	}
	metadata := map[string]any{
		"operation":   e.Operation,
		"status_code": e.StatusCode,
	}
	if e.APIError != nil {
		metadata["api_error_code"] = e.APIError.Code
		metadata["api_error_name"] = e.APIError.Name
	}
	return goerrors.New(e.Error(), category).
		WithCode(code).
		WithTextCode(textCode).
		WithMetadata(metadata)
}

func requestErrorCategory(status int) (goerrors.Category, string) {
	switch status {
	case http.StatusBadRequest:
		return goerrors.CategoryBadInput, ServiceErrorBadInput
	case http.StatusUnauthorized:
		return goerrors.CategoryAuth, ServiceErrorUnauthorized
	case http.StatusForbidden:
		return goerrors.CategoryAuthz, ServiceErrorForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return goerrors.CategoryNotFound, ServiceErrorMethodNotFound
	case http.StatusTooManyRequests:
		return goerrors.CategoryRateLimit, ServiceErrorRateLimited
	default:
		return goerrors.CategoryExternal, ServiceErrorExternalFailure
	}
}

func configError(source error, message string) error {
	return goerrors.Wrap(source, goerrors.CategoryValidation, message).
		WithCode(http.StatusBadRequest).
		WithTextCode(ServiceErrorBadInput)
}

type serviceErrorConverter interface {
	ToServiceError() *goerrors.Error
}

// MapError converts any client error into a go-errors envelope. Context
// cancellation is reported as an internal error since no request outcome exists.
func MapError(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var converter serviceErrorConverter
	if errors.As(err, &converter) {
		return converter.ToServiceError()
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureServiceErrorEnvelope(richErr)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ensureServiceErrorEnvelope(
			goerrors.Wrap(err, goerrors.CategoryInternal, "request cancelled").
				WithTextCode(ServiceErrorInternal),
		)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureServiceErrorEnvelope(mapped)
}

func ensureServiceErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = serviceHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultServiceTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultServiceTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ServiceErrorBadInput
	case goerrors.CategoryAuth:
		return ServiceErrorUnauthorized
	case goerrors.CategoryAuthz:
		return ServiceErrorForbidden
	case goerrors.CategoryNotFound:
		return ServiceErrorMethodNotFound
	case goerrors.CategoryRateLimit:
		return ServiceErrorRateLimited
	case goerrors.CategoryExternal:
		return ServiceErrorExternalFailure
	default:
		return ServiceErrorInternal
	}
}

func serviceHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryRateLimit:
		return http.StatusTooManyRequests
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// isTimeout reports whether a transport failure was caused by a deadline or a
// network timeout. Callers check their own context first.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func dependencyError(source error) error {
	return goerrors.Wrap(source, goerrors.CategoryInternal, source.Error()).
		WithCode(http.StatusInternalServerError).
		WithTextCode(ServiceErrorInternal)
}

func badInputError(message string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(ServiceErrorBadInput)
}
