package errors

import (
	"net/http"

	"confusion/internal/errors"
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

// Authentication failures (401). The error middleware adds a
// WWW-Authenticate: Basic challenge for the credential-shaped ones.
var (
	ErrCredentialsMissing = NewBaseError(
		http.StatusUnauthorized,
		"CREDENTIALS_MISSING",
		"Missing or malformed credentials",
		"",
	)

	ErrUnknownUser = NewBaseError(
		http.StatusUnauthorized,
		"UNKNOWN_USER",
		"User does not exist",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Username or password is incorrect",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"You are not logged in",
		"",
	)

	ErrOAuthUnreachable = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_UNREACHABLE",
		"Identity provider could not verify the token",
		"",
	)
)

// Token failures (401).
var (
	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Token structure or signature is invalid",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrTokenUserGone = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_USER_GONE",
		"Token refers to an identity that no longer exists",
		"",
	)
)

// Authorization failures (403).
var (
	ErrNotAuthenticated = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHENTICATED",
		"You are not authenticated",
		"",
	)

	ErrNotAuthorized = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHORIZED",
		"You are not authorized to perform this operation",
		"",
	)

	ErrOperationNotSupported = NewBaseError(
		http.StatusForbidden,
		"OPERATION_NOT_SUPPORTED",
		"Operation not supported on this endpoint",
		"",
	)
)

// Resource failures.
var (
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This username is already taken",
		"",
	)

	ErrDishNotFound = NewBaseError(
		http.StatusNotFound,
		"DISH_NOT_FOUND",
		"Dish not found",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	ErrPromotionNotFound = NewBaseError(
		http.StatusNotFound,
		"PROMOTION_NOT_FOUND",
		"Promotion not found",
		"",
	)

	ErrLeaderNotFound = NewBaseError(
		http.StatusNotFound,
		"LEADER_NOT_FOUND",
		"Leader not found",
		"",
	)

	ErrFavoritesNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITES_NOT_FOUND",
		"You have no favorites to remove",
		"",
	)

	ErrFavoriteEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_ENTRY_NOT_FOUND",
		"This dish is not in your favorites",
		"",
	)

	ErrAlreadyFavorited = NewBaseError(
		http.StatusConflict,
		"ALREADY_FAVORITED",
		"This dish is already in your favorites",
		"",
	)
)

// Validation and general failures.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface. Store-native details never reach the client.
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
	return "Unexpected store error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
