package savings

import (
	"fmt"
	"strings"
	"time"

	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
)

type GoalCategory string

const (
	Emergency GoalCategory = "emergency"
	Travel    GoalCategory = "travel"
	Gadgets   GoalCategory = "gadgets"
	Education GoalCategory = "education"
	Health    GoalCategory = "health"
	Home      GoalCategory = "home"
	OtherGoal GoalCategory = "other"
)

var goalCategoryNames = map[GoalCategory]string{
	Emergency: "Emergency Fund",
	Travel:    "Travel",
	Gadgets:   "Gadgets",
	Education: "Education",
	Health:    "Health",
	Home:      "Home",
	OtherGoal: "Other",
}

// Valid reports whether c is a known goal category.
func (c GoalCategory) Valid() bool {
	_, ok := goalCategoryNames[c]
	return ok
}

// Name returns the display name of the category.
func (c GoalCategory) Name() string {
	return goalCategoryNames[c]
}

// defaultGoalMonths is added to the creation date of goals without deadline.
const defaultGoalMonths = 3

type GoalCreate struct {
	Name        string          `json:"name" example:"New laptop"`
	Amount      decimal.Decimal `json:"amount" example:"60000"`
	Deadline    types.Date      `json:"deadline" example:"2024-06-30" swaggertype:"string"`
	Category    GoalCategory    `json:"category" example:"gadgets"`
	Description string          `json:"description" example:"For university"`
}

type Goal struct {
	ID int64 `json:"id" example:"1710419465001"`
	GoalCreate
	SavedAmount  decimal.Decimal `json:"savedAmount" example:"12000"`
	CreatedDate  time.Time       `json:"createdDate" example:"2024-03-14T12:31:05Z"`
	Achieved     bool            `json:"achieved" example:"false"`
	AchievedDate *time.Time      `json:"achievedDate" example:"2024-05-02T08:00:00Z"`
}

// Remaining returns the amount still missing to reach the goal.
func (g Goal) Remaining() decimal.Decimal {
	return decimal.Max(g.Amount.Sub(g.SavedAmount), decimal.Zero)
}

// Progress returns the saved amount as fraction of the target, between 0 and 1.
func (g Goal) Progress() decimal.Decimal {
	if !g.Amount.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(g.SavedAmount.Div(g.Amount), decimal.NewFromInt(1))
}

// MonthsLeft is the number of started 30 day periods until the deadline, at least 1.
func (g Goal) MonthsLeft(now time.Time) int64 {
	days := g.Deadline.Time().Sub(now).Hours() / 24
	months := decimal.NewFromFloat(days).Div(decimal.NewFromInt(30)).Ceil().IntPart()
	if months < 1 {
		return 1
	}
	return months
}

func (g GoalCreate) validate(now time.Time) (GoalCreate, error) {
	g.Name = strings.TrimSpace(g.Name)
	g.Description = strings.TrimSpace(g.Description)

	if g.Name == "" {
		return g, fmt.Errorf("%w: the goal name must not be empty", ErrInvalidInput)
	}

	if !g.Amount.IsPositive() {
		return g, fmt.Errorf("%w: the goal amount must be greater than zero", ErrInvalidInput)
	}

	if g.Category == "" {
		g.Category = OtherGoal
	}

	if !g.Category.Valid() {
		return g, fmt.Errorf("%w: '%s' is not a valid goal category", ErrInvalidInput, g.Category)
	}

	if g.Deadline.IsZero() {
		g.Deadline = types.DateOf(now.AddDate(0, defaultGoalMonths, 0))
	}

	return g, nil
}
