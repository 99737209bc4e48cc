package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data.
//
// If binding fails, the error response is written and the error returned.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, HTTPError{Error: ErrRequestBodyEmpty.Error()})
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, ValidationErrorToText(e))
		}

		e := fmt.Errorf("%w: %s", ErrInvalidBody, strings.Join(messages, ", "))
		c.JSON(http.StatusBadRequest, HTTPError{Error: e.Error()})
		return e
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	c.JSON(http.StatusBadRequest, HTTPError{Error: ErrInvalidBody.Error()})
	return ErrInvalidBody
}

// ValidationErrorToText returns a readable message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "category", "goal_category":
		return fmt.Sprintf("'%v' is not a valid %s", e.Value(), e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
