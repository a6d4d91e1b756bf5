package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel causes, matched with errors.Is through AppError.Unwrap.
var (
	ErrSignatureGeneration = errors.New("signature generation failed")
	ErrConfiguration       = errors.New("configuration error")
)

// AppError is a structured error that maps to HTTP responses.
// Code is the gateway-style 7-digit responseCode: HTTP status (3) + service code (2) + case code (2).
type AppError struct {
	Code       string `json:"responseCode"`
	Message    string `json:"responseMessage"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Response codes shared with the payment gateway.
const (
	CodeCallbackSuccess     = "2002500"
	CodeBadRequest          = "4000000"
	CodeUnauthorizedSig     = "4010000"
	CodeUnauthorizedPartner = "4010001"
	CodeInvalidMandatory    = "4002702"
	CodeVANotFound          = "4042701"
	CodeTooManyRequests     = "4290000"
	CodeInternal            = "5000000"
)

// ---- Client (4xx) ----

func ErrMissingHeaders() *AppError {
	return New(CodeBadRequest, "Invalid mandatory header", http.StatusBadRequest)
}

func ErrInvalidBody(err error) *AppError {
	return Wrap(CodeBadRequest, "Invalid request body", http.StatusBadRequest, err)
}

func ErrInvalidSignature() *AppError {
	return New(CodeUnauthorizedSig, "Unauthorized. Invalid signature", http.StatusUnauthorized)
}

func ErrPartnerMismatch() *AppError {
	return New(CodeUnauthorizedPartner, "Unauthorized. Unknown partner", http.StatusUnauthorized)
}

func ErrInvalidMandatoryField(field string) *AppError {
	return New(CodeInvalidMandatory, fmt.Sprintf("Invalid Mandatory Field %s", field), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeVANotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrRateLimitExceeded() *AppError {
	return New(CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)
}

// Validation returns a generic bad-request error.
func Validation(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

// ---- Server (5xx) ----

// InternalError wraps an internal error. The message never carries err's detail.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// ErrSigning reports a signing failure. It is never replaced by a fallback signature.
func ErrSigning(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, fmt.Errorf("%w: %v", ErrSignatureGeneration, err))
}

// ErrMissingConfig reports a missing key or token; fatal for the request only.
func ErrMissingConfig(what string) *AppError {
	return Wrap(CodeInternal, fmt.Sprintf("Server configuration error: %s is not configured", what),
		http.StatusInternalServerError, fmt.Errorf("%w: %s", ErrConfiguration, what))
}

// ErrUpstreamUnavailable reports a transport failure talking to an upstream API.
func ErrUpstreamUnavailable(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
