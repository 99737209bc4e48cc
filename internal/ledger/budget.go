package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// DefaultSavingsPercentage is used when no savings percentage is given.
	DefaultSavingsPercentage = decimal.NewFromInt(20)

	hundred = decimal.NewFromInt(100)
)

// Budget is the monthly budget all category ceilings are derived from.
type Budget struct {
	Income            decimal.Decimal `json:"income" example:"50000"`
	SavingsPercentage decimal.Decimal `json:"savingsPercentage" example:"20"`
	SavingsAmount     decimal.Decimal `json:"savingsAmount" example:"10000"`
	TotalBudget       decimal.Decimal `json:"totalBudget" example:"40000"` // The spendable amount, income minus savings
	SetupDate         time.Time       `json:"setupDate" example:"2024-03-01T09:12:44Z"`
}

// NewBudget allocates income between savings and spending.
//
// A nil savingsPercentage means DefaultSavingsPercentage, values outside of
// [0, 100] are clamped.
func NewBudget(income decimal.Decimal, savingsPercentage *decimal.Decimal, setup time.Time) (Budget, error) {
	if !income.IsPositive() {
		return Budget{}, fmt.Errorf("%w: the income must be greater than zero", ErrInvalidInput)
	}

	pct := DefaultSavingsPercentage
	if savingsPercentage != nil {
		pct = decimal.Min(decimal.Max(*savingsPercentage, decimal.Zero), hundred)
	}

	savings := income.Mul(pct).Div(hundred)

	return Budget{
		Income:            income,
		SavingsPercentage: pct,
		SavingsAmount:     savings,
		TotalBudget:       income.Sub(savings),
		SetupDate:         setup,
	}, nil
}

// Ceiling returns the spending limit of a category.
//
// Each ceiling is rounded half away from zero to whole units on its own, so
// the ceilings do not necessarily add up to TotalBudget.
func (b Budget) Ceiling(c Category) decimal.Decimal {
	return b.TotalBudget.Mul(c.Weight()).Round(0)
}
