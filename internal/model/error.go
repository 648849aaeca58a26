package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeInvalidCourse     = "INVALID_COURSE"
	ErrCodeEmptyCredentials  = "EMPTY_CREDENTIALS"
	ErrCodeDishNotFound      = "DISH_NOT_FOUND"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeDuplicateMenuItem = "DUPLICATE_MENU_ITEM"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeLoginRequired     = "LOGIN_REQUIRED"
	ErrCodeIDExhausted       = "ID_EXHAUSTED"
	ErrCodeInvalidCatalog    = "INVALID_CATALOG"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business rule violation with a stable code and a user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Validation errors are surfaced to the user as-is.
var (
	ErrInvalidPrice     = NewDomainError(ErrCodeInvalidPrice, "Please enter a valid price")
	ErrEmptyCredentials = NewDomainError(ErrCodeEmptyCredentials, "Please enter both email and password.")
	ErrInvalidCourse    = NewDomainError(ErrCodeInvalidCourse, "Course must be one of Starter, Main Course or Dessert")
)

// State errors
var (
	ErrDishNotFound      = NewDomainError(ErrCodeDishNotFound, "Dish not found in this course")
	ErrDuplicateMenuItem = NewDomainError(ErrCodeDuplicateMenuItem, "An item with this id is already on the menu")
	ErrInvalidTransition = NewDomainError(ErrCodeInvalidTransition, "This action is not available from the current screen")
	ErrLoginRequired     = NewDomainError(ErrCodeLoginRequired, "Log in before editing the menu")
	ErrIDExhausted       = NewDomainError(ErrCodeIDExhausted, "Could not generate a unique menu item id")
)

// IsValidation reports whether err is one of the user-correctable input rejections.
func IsValidation(err *DomainError) bool {
	switch err.Code {
	case ErrCodeInvalidPrice, ErrCodeEmptyCredentials, ErrCodeInvalidCourse, ErrCodeInvalidJSON:
		return true
	}
	return false
}
