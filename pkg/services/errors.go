package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrPaymentRequired is returned when a priced resource is accessed
	// without a settled payment
	ErrPaymentRequired = errors.New("payment required")

	// ErrForbidden is returned when the caller lacks the required scope
	ErrForbidden = errors.New("forbidden")
)

// Stable machine-readable error codes carried in the error envelope.
const (
	CodeContentTypeSlugConflict  = "CONTENT_TYPE_SLUG_CONFLICT"
	CodeContentTypeNotFound      = "CONTENT_TYPE_NOT_FOUND"
	CodeContentItemNotFound      = "CONTENT_ITEM_NOT_FOUND"
	CodeInvalidSchemaJSON        = "INVALID_CONTENT_SCHEMA_JSON"
	CodeSchemaValidationFailed   = "CONTENT_SCHEMA_VALIDATION_FAILED"
	CodeEmptyUpdateBody          = "EMPTY_UPDATE_BODY"
	CodeInvalidCreatedAfter      = "INVALID_CREATED_AFTER"
	CodeInvalidCreatedBefore     = "INVALID_CREATED_BEFORE"
	CodeVersionConflict          = "VERSION_CONFLICT"
	CodeTargetVersionNotFound    = "TARGET_VERSION_NOT_FOUND"
	CodeAuthMissingCredentials   = "AUTH_MISSING_CREDENTIALS"
	CodeAuthInvalidKey           = "AUTH_INVALID_KEY"
	CodeAuthKeyRevoked           = "AUTH_KEY_REVOKED"
	CodeAuthKeyExpired           = "AUTH_KEY_EXPIRED"
	CodeAuthInsufficientScope    = "AUTH_INSUFFICIENT_SCOPE"
	CodePaymentRequired          = "PAYMENT_REQUIRED"
	CodePaymentNotFound          = "PAYMENT_NOT_FOUND"
	CodePaymentInvalidPreimage   = "PAYMENT_INVALID_PREIMAGE"
	CodePaymentAlreadyConsumed   = "PAYMENT_ALREADY_CONSUMED"
	CodePaymentExpired           = "PAYMENT_EXPIRED"
	CodeInvalidTransition        = "PAYMENT_INVALID_TRANSITION"
	CodeEntitlementNotFound      = "ENTITLEMENT_NOT_FOUND"
	CodeEntitlementExhausted     = "ENTITLEMENT_EXHAUSTED"
	CodeEntitlementNotActive     = "ENTITLEMENT_NOT_ACTIVE"
	CodeEntitlementWrongOffer    = "ENTITLEMENT_WRONG_OFFER"
	CodeWebhookReplay            = "WEBHOOK_REPLAY"
	CodeWebhookInvalidSignature  = "WEBHOOK_INVALID_SIGNATURE"
	CodeRateLimitExceeded        = "RATE_LIMIT_EXCEEDED"
	CodeValidationFailed         = "VALIDATION_FAILED"
	CodeInternal                 = "INTERNAL_ERROR"
	CodeTenantNotFound           = "TENANT_NOT_FOUND"
	CodeWebhookEndpointNotFound  = "WEBHOOK_NOT_FOUND"
	CodeAPIKeyNotFound           = "API_KEY_NOT_FOUND"
	CodeBatchPartialFailure      = "BATCH_PARTIAL_FAILURE"
	CodeDelegationSourceInactive = "DELEGATION_SOURCE_INACTIVE"
)

// Error is a service failure with a stable code and an actionable
// remediation hint for the caller. It wraps one of the package sentinels so
// callers can branch with errors.Is.
type Error struct {
	Code        string
	Message     string
	Remediation string
	err         error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.err
}

// NewError builds an Error wrapping the given sentinel.
func NewError(sentinel error, code, message, remediation string) *Error {
	return &Error{Code: code, Message: message, Remediation: remediation, err: sentinel}
}

// AsError extracts an *Error from err, if present.
func AsError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
