package apperrors

import "net/http"

// Factories for common business-logic failures. Repository sentinel errors
// (e.g. gorm.ErrRecordNotFound) are wrapped here before crossing the
// service boundary.

// ErrNotFound wraps a repository miss into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness conflict into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation reports an operation the domain does not allow (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidCredentials is returned on failed login attempts. The message
// does not reveal whether the account exists.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)
