// Package report derives summaries, monthly histories and insights from the
// ledger and the piggy bank. It only reads their getters, so reported figures
// always match the ones the ledger works with.
package report

import (
	"time"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Ledger is the read side of ledger.Store.
type Ledger interface {
	Budget() (ledger.Budget, error)
	TotalSpent() decimal.Decimal
	ExpenseTotal() decimal.Decimal
	AdjustmentTotal() decimal.Decimal
	Remaining() decimal.Decimal
	AvailableBalance() decimal.Decimal
	Categories() []ledger.CategoryBreakdown
	Expenses() []ledger.Expense
}

// Savings is the read side of savings.Bank.
type Savings interface {
	TotalSavings() decimal.Decimal
	Entries() []savings.Entry
	MonthSavings(types.Month) decimal.Decimal
	MonthlyTarget(time.Time) decimal.Decimal
	Goals() []savings.Goal
	GoalsAchieved() int
}

type Summary struct {
	Configured        bool                       `json:"configured" example:"true"`
	Income            decimal.Decimal            `json:"income" example:"50000"`
	SavingsPercentage decimal.Decimal            `json:"savingsPercentage" example:"20"`
	SavingsAmount     decimal.Decimal            `json:"savingsAmount" example:"10000"`
	TotalBudget       decimal.Decimal            `json:"totalBudget" example:"40000"`
	TotalSpent        decimal.Decimal            `json:"totalSpent" example:"12500"` // Expenses and adjustments
	ExpenseTotal      decimal.Decimal            `json:"expenseTotal" example:"11000"`
	AdjustmentTotal   decimal.Decimal            `json:"adjustmentTotal" example:"1500"`
	Remaining         decimal.Decimal            `json:"remaining" example:"27500"`
	AvailableBalance  decimal.Decimal            `json:"availableBalance" example:"27500"`
	ExpenseCount      int                        `json:"expenseCount" example:"23"`
	Categories        []ledger.CategoryBreakdown `json:"categories"`
}

// NewSummary collects the current figures of the ledger.
func NewSummary(l Ledger) Summary {
	s := Summary{
		TotalSpent:       l.TotalSpent(),
		ExpenseTotal:     l.ExpenseTotal(),
		AdjustmentTotal:  l.AdjustmentTotal(),
		Remaining:        l.Remaining(),
		AvailableBalance: l.AvailableBalance(),
		ExpenseCount:     len(l.Expenses()),
		Categories:       l.Categories(),
	}

	if budget, err := l.Budget(); err == nil {
		s.Configured = true
		s.Income = budget.Income
		s.SavingsPercentage = budget.SavingsPercentage
		s.SavingsAmount = budget.SavingsAmount
		s.TotalBudget = budget.TotalBudget
	}

	return s
}
