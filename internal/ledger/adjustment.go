package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
)

// AdjustmentKind describes why money left or returned to the spendable pool.
type AdjustmentKind string

const (
	// SavingsDeposit moves money from the spendable pool into savings. Its amount is positive.
	SavingsDeposit AdjustmentKind = "savings_deposit"

	// SavingsWithdrawal returns money from savings. Its amount is negative.
	SavingsWithdrawal AdjustmentKind = "savings_withdrawal"
)

type AdjustmentCreate struct {
	Amount      decimal.Decimal `json:"amount" example:"1500"`
	Kind        AdjustmentKind  `json:"kind" example:"savings_deposit"`
	Description string          `json:"description" example:"Savings: Quick Save"`
	Date        types.Date      `json:"date" example:"2024-03-14" swaggertype:"string"`
}

// Adjustment is a signed amount counted towards the total spent without
// belonging to any category.
//
// A positive amount reduces the available balance, a negative one restores it.
type Adjustment struct {
	ID string `json:"id" example:"9d4e55fd-4b15-4d64-9a31-18f5f3d7a1f0"`
	AdjustmentCreate
	Timestamp time.Time `json:"timestamp" example:"2024-03-14T12:31:05Z"`
}

func (a AdjustmentCreate) validate() (AdjustmentCreate, error) {
	a.Description = strings.TrimSpace(a.Description)

	switch a.Kind {
	case SavingsDeposit:
		if !a.Amount.IsPositive() {
			return a, fmt.Errorf("%w: a savings deposit must have a positive amount", ErrInvalidInput)
		}
	case SavingsWithdrawal:
		if !a.Amount.IsNegative() {
			return a, fmt.Errorf("%w: a savings withdrawal must have a negative amount", ErrInvalidInput)
		}
	default:
		return a, fmt.Errorf("%w: '%s' is not a valid adjustment kind", ErrInvalidInput, a.Kind)
	}

	if a.Date.IsZero() {
		return a, fmt.Errorf("%w: the date must be set", ErrInvalidInput)
	}

	return a, nil
}
