package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the amount must be greater than zero"`
}

// ContextKey is the type for values set on the gin context.
type ContextKey string

// ContextURL is the key for the base URL of the API.
const ContextURL ContextKey = "budget-buddy-url"
