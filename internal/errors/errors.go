package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRestaurantNotFound is returned when a listing does not exist.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateListing is returned when a listing with the same name and address already exists.
	ErrDuplicateListing = errors.New("a restaurant with this name and address already exists")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken is returned when the username is already taken.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidTimeFormat is returned when a schedule field is not HH:MM.
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	// ErrInvalidSchedule is returned when opening time is not before closing time.
	ErrInvalidSchedule = errors.New("opening time must be before closing time")
	// ErrOwnerOnly is returned when a non-owner tries to manage listings.
	ErrOwnerOnly = errors.New("only restaurant owners can manage listings")
	// ErrNotListingOwner is returned when an owner touches a listing that is not theirs.
	ErrNotListingOwner = errors.New("you don't have permission to modify this restaurant")
	// ErrReviewNotAllowed is returned when an owner or admin tries to author a review.
	ErrReviewNotAllowed = errors.New("owners and admins cannot create reviews")
	// ErrAdminOnly is returned when a non-admin invokes an admin operation.
	ErrAdminOnly = errors.New("admin access required")
	// ErrMenuParse is returned when a stored menu document cannot be parsed.
	ErrMenuParse = errors.New("failed to parse menu JSON")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrRestaurantNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "RESTAURANT_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrDuplicateListing:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_LISTING")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case ErrUsernameTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_TAKEN")
	case ErrInvalidTimeFormat:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TIME_FORMAT")
	case ErrInvalidSchedule:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SCHEDULE")
	case ErrOwnerOnly:
		return NewHTTPError(http.StatusForbidden, err.Error(), "OWNER_ONLY")
	case ErrNotListingOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_LISTING_OWNER")
	case ErrReviewNotAllowed:
		return NewHTTPError(http.StatusForbidden, err.Error(), "REVIEW_NOT_ALLOWED")
	case ErrAdminOnly:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case ErrMenuParse:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "MENU_PARSE_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
