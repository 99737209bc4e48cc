package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventKind string

const (
	// LedgerChanged is emitted for every category whose figures changed.
	LedgerChanged EventKind = "ledger_changed"

	// BudgetWarning is emitted when an expense brings a category to 80% of its ceiling.
	BudgetWarning EventKind = "budget_warning"

	// BudgetExceeded is emitted when an expense brings a category to 100% of its ceiling or above.
	BudgetExceeded EventKind = "budget_exceeded"

	// TotalBudgetWarning is emitted when the total spent exceeds 90% of the spendable budget.
	TotalBudgetWarning EventKind = "total_budget_warning"

	BudgetConfigured   EventKind = "budget_configured"
	ExpensesCleared    EventKind = "expenses_cleared"
	AdjustmentApplied  EventKind = "adjustment_applied"
	AdjustmentReverted EventKind = "adjustment_reverted"
)

// Event is a change notification.
//
// Category is empty for events that are not about a single category.
type Event struct {
	Kind       EventKind
	Time       time.Time
	Category   Category
	Spent      decimal.Decimal
	Ceiling    decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal

	// Count is the number of removed expenses for ExpensesCleared
	Count int

	Budget     *Budget
	Adjustment *Adjustment
}

// Observer receives change notifications after a mutation has been committed.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) {
	f(e)
}

var (
	warningThreshold      = decimal.NewFromInt(80)
	totalWarningThreshold = decimal.RequireFromString("0.9")
)

// percentage returns part as percentage of whole, rounded to two places.
// It is zero if whole is zero.
func percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(2)
}
