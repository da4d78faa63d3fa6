package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error so transport layers can map it to a status code
// without string matching.
type Kind string

const (
	KindUnexpected       Kind = "unexpected"
	KindUnauthenticated  Kind = "unauthenticated"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindInvalidInput     Kind = "invalid_input"
	KindSelfRequest      Kind = "self_request"
	KindConflict         Kind = "conflict"
	KindAlreadyProcessed Kind = "already_processed"
	KindPremiumRequired  Kind = "premium_required"
	KindInvalidSignature Kind = "invalid_signature"
)

type AppError struct {
	Kind    Kind
	Message string
	// Meta carries structured payload for the client, e.g. the current
	// status of a conflicting connection request.
	Meta map[string]interface{}
	Err  error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Unauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func InvalidInput(message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message}
}

func SelfRequest(message string) *AppError {
	return &AppError{Kind: KindSelfRequest, Message: message}
}

// Conflict reports a duplicate connection request. currentStatus is the
// status of the request that already exists.
func Conflict(message, currentStatus string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: message,
		Meta:    map[string]interface{}{"current_status": currentStatus},
	}
}

// AlreadyProcessed reports a respond attempt on a request that left the
// pending state. currentStatus is the terminal status it carries now.
func AlreadyProcessed(message, currentStatus string) *AppError {
	return &AppError{
		Kind:    KindAlreadyProcessed,
		Message: message,
		Meta:    map[string]interface{}{"current_status": currentStatus},
	}
}

func PremiumRequired() *AppError {
	return &AppError{Kind: KindPremiumRequired, Message: "an active premium subscription is required"}
}

func InvalidSignature() *AppError {
	return &AppError{Kind: KindInvalidSignature, Message: "payment signature verification failed"}
}

func Wrap(err error, message string) *AppError {
	return &AppError{Kind: KindUnexpected, Message: message, Err: err}
}

// FromError extracts an *AppError from an error chain.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindForbidden, KindPremiumRequired:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindInvalidInput, KindSelfRequest, KindAlreadyProcessed, KindInvalidSignature:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
