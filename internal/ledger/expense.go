package ledger

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength is the maximum number of characters in a description.
const MaxDescriptionLength = 200

type ExpenseCreate struct {
	Description string          `json:"description" example:"Lunch"`
	Amount      decimal.Decimal `json:"amount" example:"500"`
	Category    Category        `json:"category" example:"food"`
	Date        types.Date      `json:"date" example:"2024-03-14" swaggertype:"string"`
}

// Expense is a recorded expense. It is never modified after creation.
type Expense struct {
	ID string `json:"id" example:"0b3a8bc5-0a1e-4b0b-a3f7-8d9b4d3c5e1a"`
	ExpenseCreate
	Timestamp time.Time `json:"timestamp" example:"2024-03-14T12:31:05Z"`
}

// validate checks the expense and returns it with a trimmed description.
func (e ExpenseCreate) validate() (ExpenseCreate, error) {
	e.Description = strings.TrimSpace(e.Description)

	if e.Description == "" {
		return e, fmt.Errorf("%w: the description must not be empty", ErrInvalidInput)
	}

	if utf8.RuneCountInString(e.Description) > MaxDescriptionLength {
		return e, fmt.Errorf("%w: the description must not be longer than %d characters", ErrInvalidInput, MaxDescriptionLength)
	}

	if !e.Amount.IsPositive() {
		return e, fmt.Errorf("%w: the amount must be greater than zero", ErrInvalidInput)
	}

	if !e.Category.Valid() {
		return e, fmt.Errorf("%w: '%s' is not a valid category", ErrInvalidInput, e.Category)
	}

	if e.Date.IsZero() {
		return e, fmt.Errorf("%w: the date must be set", ErrInvalidInput)
	}

	return e, nil
}
