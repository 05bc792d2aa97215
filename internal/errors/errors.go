package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrIngredientNotFound is returned when an ingredient is not found.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrRecipeNotFound is returned when a recipe is not found.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrRecipeIngredientNotFound is returned when a recipe-ingredient link is not found.
	ErrRecipeIngredientNotFound = errors.New("recipe ingredient not found")
	// ErrSavedRecipeNotFound is returned when a saved recipe is not found.
	ErrSavedRecipeNotFound = errors.New("saved recipe not found")

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already in use")
	// ErrCategoryExists is returned when a category name already exists.
	ErrCategoryExists = errors.New("category already exists")
	// ErrIngredientExists is returned when an ingredient name already exists.
	ErrIngredientExists = errors.New("ingredient already exists")
	// ErrDuplicateLink is returned when an ingredient is already added to the recipe.
	ErrDuplicateLink = errors.New("this ingredient is already added to the recipe")
	// ErrAlreadySaved is returned when a user saves the same recipe twice.
	ErrAlreadySaved = errors.New("recipe already saved")

	// ErrForeignKeyViolation is returned when a write references a missing row.
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
	// ErrRecordInUse is returned when deleting a row still referenced by others.
	ErrRecordInUse = errors.New("record is referenced by other records")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrMissingCredentials is returned when no bearer token is supplied.
	ErrMissingCredentials = errors.New("missing authorization header")
	// ErrInvalidToken is returned when a token is malformed or its signature fails.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrUnknownSubject is returned when a valid token names a user that no longer exists.
	ErrUnknownSubject = errors.New("unknown token subject")
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
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrIngredientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "INGREDIENT_NOT_FOUND")
	case errors.Is(err, ErrRecipeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECIPE_NOT_FOUND")
	case errors.Is(err, ErrRecipeIngredientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECIPE_INGREDIENT_NOT_FOUND")
	case errors.Is(err, ErrSavedRecipeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SAVED_RECIPE_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrCategoryExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_EXISTS")
	case errors.Is(err, ErrIngredientExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INGREDIENT_EXISTS")
	case errors.Is(err, ErrDuplicateLink):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_LINK")
	case errors.Is(err, ErrAlreadySaved):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_SAVED")
	case errors.Is(err, ErrForeignKeyViolation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FOREIGN_KEY_VIOLATION")
	case errors.Is(err, ErrRecordInUse):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "RECORD_IN_USE")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "MISSING_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrExpiredToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "EXPIRED_TOKEN")
	case errors.Is(err, ErrUnknownSubject):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNKNOWN_SUBJECT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
