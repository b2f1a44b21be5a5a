package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when required input is missing or malformed.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCredentials is returned when login name or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid name or password")
	// ErrUserExists is returned when registering an already taken name.
	ErrUserExists = errors.New("user already exists")
	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("access denied: no token provided")
	// ErrInvalidToken is returned when a bearer token fails validation.
	ErrInvalidToken = errors.New("invalid token")
	// ErrLibrarianRequired is returned when a non-librarian calls a catalog mutation.
	ErrLibrarianRequired = errors.New("access denied: librarian role required")
	// ErrNotOwner is returned when a user cancels a reservation they do not own.
	ErrNotOwner = errors.New("you can only cancel your own reservations")
	// ErrBookNotFound is returned when a book id matches no record.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookUnavailable is returned when the book is already reserved.
	ErrBookUnavailable = errors.New("book is not available")
	// ErrDuplicateISBN is returned on a unique ISBN violation.
	ErrDuplicateISBN = errors.New("a book with this isbn already exists")
	// ErrReservationNotFound is returned when a reservation id matches no record.
	ErrReservationNotFound = errors.New("reservation not found")
)

// ErrorResponse is the uniform JSON envelope for every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to the response envelope.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Success: false, Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Bad credentials map to 400
// rather than 401 to match the public API contract; 401 is reserved for
// requests that carry no token at all.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUserExists),
		errors.Is(err, ErrBookUnavailable),
		errors.Is(err, ErrDuplicateISBN):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMissingToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrLibrarianRequired),
		errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrReservationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
