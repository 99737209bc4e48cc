// Package observer contains ledger observers for logs and metrics.
package observer

import (
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/rs/zerolog"
)

// Logger writes ledger events to a zerolog logger.
//
// Budget warnings are logged at warn level, everything else at debug level.
type Logger struct {
	log zerolog.Logger
}

func NewLogger(l zerolog.Logger) *Logger {
	return &Logger{log: l.With().Str("component", "ledger").Logger()}
}

func (l *Logger) Notify(e ledger.Event) {
	var event *zerolog.Event
	switch e.Kind {
	case ledger.BudgetWarning, ledger.BudgetExceeded, ledger.TotalBudgetWarning:
		event = l.log.Warn()
	default:
		event = l.log.Debug()
	}

	event = event.Str("event", string(e.Kind)).Time("time", e.Time)

	switch e.Kind {
	case ledger.BudgetConfigured:
		if e.Budget != nil {
			event = event.Str("income", e.Budget.Income.String()).Str("spendable", e.Budget.TotalBudget.String())
		}
	case ledger.ExpensesCleared:
		event = event.Int("count", e.Count)
	case ledger.AdjustmentApplied, ledger.AdjustmentReverted:
		if e.Adjustment != nil {
			event = event.Str("adjustment", e.Adjustment.ID).Str("amount", e.Adjustment.Amount.String())
		}
		event = event.Str("spent", e.Spent.String()).Str("remaining", e.Remaining.String())
	default:
		if e.Category != "" {
			event = event.Str("category", string(e.Category))
		}
		event = event.
			Str("spent", e.Spent.String()).
			Str("ceiling", e.Ceiling.String()).
			Str("remaining", e.Remaining.String()).
			Str("percentage", e.Percentage.String())
	}

	event.Msg(message(e.Kind))
}

func message(kind ledger.EventKind) string {
	switch kind {
	case ledger.BudgetWarning:
		return "category is close to its budget"
	case ledger.BudgetExceeded:
		return "category budget exceeded"
	case ledger.TotalBudgetWarning:
		return "more than 90% of the budget is spent"
	case ledger.BudgetConfigured:
		return "budget configured"
	case ledger.ExpensesCleared:
		return "expenses cleared"
	case ledger.AdjustmentApplied:
		return "adjustment applied"
	case ledger.AdjustmentReverted:
		return "adjustment reverted"
	default:
		return "ledger changed"
	}
}
