package v1

import (
	"errors"
	"net/http"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the amount must be greater than zero"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, ledger.ErrExpenseNotFound),
		errors.Is(err, ledger.ErrAdjustmentNotFound),
		errors.Is(err, savings.ErrGoalNotFound),
		errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, ledger.ErrBudgetNotConfigured),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, savings.ErrInsufficientSavings),
		errors.Is(err, savings.ErrGoalAchieved),
		errors.Is(err, models.ErrIDNotUnique):
		return http.StatusConflict

	case errors.Is(err, ledger.ErrInvalidInput),
		errors.Is(err, errCleanupConfirmation),
		errors.Is(err, errNoFilePost),
		errors.Is(err, errWrongFileSuffix),
		errors.Is(err, errImportFile),
		errors.Is(err, errInvalidID),
		errors.Is(err, errInvalidQuery):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// abort writes the error response for err.
//
// Server errors are logged, the response only carries models.ErrGeneral.
func abort(c *gin.Context, err error) {
	code := status(err)
	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = models.ErrGeneral
	}

	c.JSON(code, httpError{
		Error: err.Error(),
	})
}

var (
	errInvalidID    = errors.New("the specified resource ID is not valid")
	errInvalidQuery = errors.New("the query parameters are not valid")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
	errImportFile      = errors.New("the file could not be imported")
)
