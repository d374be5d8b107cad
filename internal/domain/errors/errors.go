package errors

import (
	"net/http"

	"rxradar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input validation errors. Rejected before any storage access.
	ErrInvalidZip = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ZIP",
		"Zip code must be exactly 5 digits",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Search radius must be between 1 and 100 miles",
		"",
	)

	ErrMissingDrugName = NewBaseError(
		http.StatusBadRequest,
		"MISSING_DRUG_NAME",
		"A medication name is required",
		"",
	)

	ErrInvalidGeoInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GEO_INPUT",
		"Coordinates are outside the valid latitude/longitude range",
		"",
	)

	ErrMissingAnchor = NewBaseError(
		http.StatusBadRequest,
		"MISSING_ANCHOR",
		"A zip code or coordinate pair is required",
		"",
	)

	// Entitlement denials. Distinct, user-actionable reason codes; never
	// converted to empty results.
	ErrUpgradeRequired = NewBaseError(
		http.StatusPaymentRequired,
		"UPGRADE_REQUIRED",
		"A subscription is required to search prescribers",
		"",
	)

	ErrPlanExpired = NewBaseError(
		http.StatusPaymentRequired,
		"PLAN_EXPIRED",
		"Your subscription has expired",
		"",
	)

	ErrSearchLimitReached = NewBaseError(
		http.StatusPaymentRequired,
		"SEARCH_LIMIT_REACHED",
		"You have used all searches included in your plan this month",
		"",
	)

	ErrPremiumOnly = NewBaseError(
		http.StatusPaymentRequired,
		"PREMIUM_ONLY",
		"Compound searches require a premium subscription",
		"",
	)

	// Billing integration errors
	ErrUnknownPlanCode = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PLAN_CODE",
		"The billing event carries an unrecognized plan identifier",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)
)

// EntitlementDenialError couples an AppError with the gate's machine-readable
// reason code, so the delivery layer can shape the 402-style gated response
// without string-matching error codes.
type EntitlementDenialError struct {
	*BaseError
	reason string
}

// NewEntitlementDenial wraps a predefined denial error with its reason code.
func NewEntitlementDenial(reason string, base *BaseError) *EntitlementDenialError {
	return &EntitlementDenialError{
		BaseError: base,
		reason:    reason,
	}
}

// Reason returns the gate's denial reason code, e.g. "limit_reached".
func (e *EntitlementDenialError) Reason() string {
	return e.reason
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
