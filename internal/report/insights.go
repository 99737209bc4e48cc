package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
)

type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Warning Level = "warning"
	Danger  Level = "danger"
)

// Insight is a short piece of advice about the budget or the savings.
type Insight struct {
	Topic   string `json:"topic" example:"budget"`
	Level   Level  `json:"level" example:"success"`
	Message string `json:"message" example:"Great job! You have ₹27,500 remaining in your budget."`
}

const topCategoryMinExpenses = 5

var (
	lowRemainingShare    = decimal.RequireFromString("0.2")
	extraSavingsShare    = decimal.RequireFromString("0.5")
	emergencyFundStarter = decimal.NewFromInt(10000)
	hundred              = decimal.NewFromInt(100)
)

// Insights derives advice from the ledger and, if s is not nil, from the piggy bank.
func Insights(l Ledger, s Savings, f Formatter, now time.Time) []Insight {
	insights := budgetInsights(l, f)
	if s != nil {
		insights = append(insights, savingsInsights(s, f, now)...)
	}
	return insights
}

func budgetInsights(l Ledger, f Formatter) []Insight {
	budget, err := l.Budget()
	if err != nil || budget.TotalBudget.IsZero() {
		return []Insight{{Topic: "budget", Level: Info, Message: "Set up your budget to see personalized insights!"}}
	}

	var insights []Insight
	remaining := l.Remaining()

	switch {
	case remaining.IsNegative():
		insights = append(insights, Insight{
			Topic:   "budget",
			Level:   Danger,
			Message: fmt.Sprintf("You're over budget by %s. Consider reducing expenses in overspent categories.", f.Money(remaining.Abs())),
		})
	case remaining.LessThan(budget.TotalBudget.Mul(lowRemainingShare)):
		insights = append(insights, Insight{
			Topic:   "budget",
			Level:   Warning,
			Message: fmt.Sprintf("You have %s remaining (%s%%). Be careful with your spending!", f.Money(remaining), remaining.Mul(hundred).Div(budget.TotalBudget).StringFixed(1)),
		})
	default:
		insights = append(insights, Insight{
			Topic:   "budget",
			Level:   Success,
			Message: fmt.Sprintf("Great job! You have %s remaining in your budget.", f.Money(remaining)),
		})
	}

	categories := l.Categories()

	var over []string
	for _, c := range categories {
		if c.Ceiling.IsPositive() && c.Spent.GreaterThan(c.Ceiling) {
			over = append(over, c.Label)
		}
	}
	if len(over) > 0 {
		insights = append(insights, Insight{
			Topic:   "categories",
			Level:   Warning,
			Message: fmt.Sprintf("Over budget in: %s. Consider adjusting your spending in these areas.", strings.Join(over, ", ")),
		})
	}

	expenseTotal := l.ExpenseTotal()
	if len(l.Expenses()) >= topCategoryMinExpenses && expenseTotal.IsPositive() {
		top := categories[0]
		for _, c := range categories[1:] {
			if c.Spent.GreaterThanOrEqual(top.Spent) {
				top = c
			}
		}

		insights = append(insights, Insight{
			Topic:   "categories",
			Level:   Info,
			Message: fmt.Sprintf("Your highest spending is in %s (%s, %s%% of total expenses).", top.Label, f.Money(top.Spent), top.Spent.Mul(hundred).Div(expenseTotal).StringFixed(1)),
		})
	}

	if remaining.IsPositive() && budget.SavingsAmount.IsPositive() {
		extra := decimal.Min(remaining, budget.SavingsAmount.Mul(extraSavingsShare))
		insights = append(insights, Insight{
			Topic:   "savings",
			Level:   Info,
			Message: fmt.Sprintf("You could save an additional %s this month by maintaining your current spending pattern!", f.Money(extra)),
		})
	}

	return insights
}

func savingsInsights(s Savings, f Formatter, now time.Time) []Insight {
	if len(s.Entries()) == 0 {
		return []Insight{{Topic: "savings", Level: Info, Message: "Start saving to see personalized insights!"}}
	}

	var insights []Insight

	monthSavings := s.MonthSavings(types.MonthOf(now))
	if monthSavings.IsPositive() {
		insights = append(insights, Insight{
			Topic:   "savings",
			Level:   Success,
			Message: fmt.Sprintf("You've saved %s this month! Keep it up!", f.Money(monthSavings)),
		})
	}

	var active []savings.Goal
	hasEmergencyGoal := false
	for _, g := range s.Goals() {
		if g.Achieved {
			continue
		}
		active = append(active, g)
		if g.Category == savings.Emergency {
			hasEmergencyGoal = true
		}
	}

	if len(active) > 0 {
		sum := decimal.Zero
		for _, g := range active {
			sum = sum.Add(g.Progress())
		}
		average := sum.Div(decimal.NewFromInt(int64(len(active)))).Mul(hundred)

		insights = append(insights, Insight{
			Topic:   "goals",
			Level:   Info,
			Message: fmt.Sprintf("Your average goal progress is %s%%. You're doing great!", average.Round(0)),
		})
	}

	if target := s.MonthlyTarget(now); target.IsPositive() {
		progress := monthSavings.Mul(hundred).Div(target)
		if progress.GreaterThanOrEqual(hundred) {
			insights = append(insights, Insight{
				Topic:   "goals",
				Level:   Success,
				Message: fmt.Sprintf("You've exceeded your monthly target by %s%%!", progress.Sub(hundred).Round(0)),
			})
		} else {
			insights = append(insights, Insight{
				Topic:   "goals",
				Level:   Info,
				Message: fmt.Sprintf("Save %s more to reach your monthly target.", f.Money(target.Sub(monthSavings))),
			})
		}
	}

	if !hasEmergencyGoal && s.TotalSavings().LessThan(emergencyFundStarter) {
		insights = append(insights, Insight{
			Topic:   "goals",
			Level:   Info,
			Message: fmt.Sprintf("Consider creating an emergency fund goal. Aim for %s as a starter.", f.Money(emergencyFundStarter)),
		})
	}

	return insights
}

// ensure the ledger and the bank satisfy the reader interfaces
var (
	_ Ledger  = (*ledger.Store)(nil)
	_ Savings = (*savings.Bank)(nil)
)
