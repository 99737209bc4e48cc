// Package legacy parses backups of the browser version of Budget Buddy and
// exports of this API.
package legacy

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/budget-buddy/backend/internal/importer"
	"github.com/budget-buddy/backend/internal/importer/helpers"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/budget-buddy/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// The browser version booked savings transfers as expenses in these categories.
const (
	savingsCategory       = "savings"
	savingsReturnCategory = "savings return"
)

// Parse parses an export. Expenses without a valid category are classified
// with the rules, importer.DefaultRules are used if rules is nil.
func Parse(f io.Reader, rules []importer.MatchRule, now time.Time) (importer.ParsedResources, error) {
	content, err := io.ReadAll(f)
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("could not read data from file: %w", err)
	}

	var file exportFile
	err = json.Unmarshal(content, &file)
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("not a valid Budget Buddy export: %w", err)
	}

	export := file.Data
	if export == nil {
		export = &Export{}
		err = json.Unmarshal(content, export)
		if err != nil {
			return importer.ParsedResources{}, fmt.Errorf("not a valid Budget Buddy export: %w", err)
		}
	}

	if rules == nil {
		rules = importer.DefaultRules
	}

	var resources importer.ParsedResources

	resources.Ledger.Budget, err = parseBudget(export.Budget, now)
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("error parsing budget: %w", err)
	}

	taken := make(map[string]bool)
	err = parseExpenses(&resources, export.Expenses, rules, taken, now)
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("error parsing expenses: %w", err)
	}

	err = parseAdjustments(&resources, export.Adjustments, taken, now)
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("error parsing adjustments: %w", err)
	}

	parseSavings(&resources, export.Savings, now)

	err = parseGoals(&resources, export.Goals, now)
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("error parsing goals: %w", err)
	}

	return resources, nil
}

// parseBudget re-derives the budget from income and savings percentage.
// Without positive income, there is no budget.
func parseBudget(b *Budget, now time.Time) (*ledger.Budget, error) {
	if b == nil || !b.Income.IsPositive() {
		return nil, nil
	}

	setup := b.SetupDate
	if setup.IsZero() {
		setup = now
	}

	budget, err := ledger.NewBudget(b.Income, b.SavingsPercentage, setup)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func parseExpenses(resources *importer.ParsedResources, expenses []Expense, rules []importer.MatchRule, taken map[string]bool, now time.Time) error {
	isTaken := func(id string) bool { return taken[id] }
	hashes := make(map[string]bool)

	for _, e := range expenses {
		date, timestamp, err := parseDates(e.Date, e.Timestamp, now)
		if err != nil {
			return fmt.Errorf("expense '%s': %w", e.ID, err)
		}

		// Rows exported twice carry different IDs, only the content counts
		hash := helpers.Sha256String(e.Description, e.Amount.String(), e.Category, date.String())
		if hashes[hash] {
			resources.Stats.Duplicates++
			continue
		}
		hashes[hash] = true

		assignID := func() string {
			original := uuid.Canonical(string(e.ID))
			id := uuid.Unique(original, isTaken)
			if id != original {
				resources.Stats.Regenerated++
			}
			taken[id] = true
			return id
		}

		category := strings.ToLower(strings.TrimSpace(e.Category))
		if category == savingsCategory || category == savingsReturnCategory {
			kind, amount := ledger.SavingsDeposit, e.Amount.Abs()
			if category == savingsReturnCategory {
				kind, amount = ledger.SavingsWithdrawal, e.Amount.Abs().Neg()
			}

			if amount.IsZero() {
				resources.Stats.Skipped++
				continue
			}

			resources.Ledger.Adjustments = append(resources.Ledger.Adjustments, ledger.Adjustment{
				ID: assignID(),
				AdjustmentCreate: ledger.AdjustmentCreate{
					Amount:      amount,
					Kind:        kind,
					Description: strings.TrimSpace(e.Description),
					Date:        date,
				},
				Timestamp: timestamp,
			})
			resources.Stats.Converted++
			resources.Stats.Adjustments++
			continue
		}

		if !e.Amount.IsPositive() {
			resources.Stats.Skipped++
			continue
		}

		c, ok := parseCategory(category)
		if !ok {
			var matched bool
			c, matched = importer.Classify(e.Description, rules)
			if matched {
				resources.Stats.Classified++
			}
		}

		description := strings.TrimSpace(e.Description)
		if description == "" {
			description = c.Label()
		}

		if utf8.RuneCountInString(description) > ledger.MaxDescriptionLength {
			description = string([]rune(description)[:ledger.MaxDescriptionLength])
			resources.Stats.Truncated++
		}

		resources.Ledger.Expenses = append(resources.Ledger.Expenses, ledger.Expense{
			ID: assignID(),
			ExpenseCreate: ledger.ExpenseCreate{
				Description: description,
				Amount:      e.Amount,
				Category:    c,
				Date:        date,
			},
			Timestamp: timestamp,
		})
		resources.Stats.Expenses++
	}

	return nil
}

func parseAdjustments(resources *importer.ParsedResources, adjustments []Adjustment, taken map[string]bool, now time.Time) error {
	isTaken := func(id string) bool { return taken[id] }

	for _, a := range adjustments {
		date, timestamp, err := parseDates(a.Date, a.Timestamp, now)
		if err != nil {
			return fmt.Errorf("adjustment '%s': %w", a.ID, err)
		}

		original := uuid.Canonical(string(a.ID))
		id := uuid.Unique(original, isTaken)
		if id != original {
			resources.Stats.Regenerated++
		}
		taken[id] = true

		resources.Ledger.Adjustments = append(resources.Ledger.Adjustments, ledger.Adjustment{
			ID: id,
			AdjustmentCreate: ledger.AdjustmentCreate{
				Amount:      a.Amount,
				Kind:        ledger.AdjustmentKind(a.Kind),
				Description: a.Description,
				Date:        date,
			},
			Timestamp: timestamp,
		})
		resources.Stats.Adjustments++
	}

	return nil
}

func parseSavings(resources *importer.ParsedResources, entries []SavingsEntry, now time.Time) {
	var last int64
	for _, e := range entries {
		last = max(last, int64(e.ID))
	}

	seen := make(map[int64]bool)
	for _, e := range entries {
		entryID := int64(e.ID)
		if entryID <= 0 || seen[entryID] {
			last++
			entryID = last
			resources.Stats.Regenerated++
		}
		seen[entryID] = true

		date := e.Date
		if date.IsZero() {
			date = now
		}

		entry := savings.Entry{
			ID:           entryID,
			Amount:       e.Amount,
			Type:         savings.EntryType(e.Type),
			Date:         date,
			Description:  e.Description,
			AdjustmentID: uuid.Canonical(e.AdjustmentID),
		}

		if e.GoalID != nil {
			goalID := int64(*e.GoalID)
			entry.GoalID = &goalID
		}

		resources.Savings.Entries = append(resources.Savings.Entries, entry)
		resources.Stats.Entries++
	}
}

func parseGoals(resources *importer.ParsedResources, goals []Goal, now time.Time) error {
	var last int64
	for _, g := range goals {
		last = max(last, int64(g.ID))
	}

	seen := make(map[int64]bool)
	for _, g := range goals {
		goalID := int64(g.ID)
		if goalID <= 0 || seen[goalID] {
			last++
			goalID = last
			resources.Stats.Regenerated++
		}
		seen[goalID] = true

		name := strings.TrimSpace(g.Name)
		if name == "" || !g.Amount.IsPositive() {
			return fmt.Errorf("goal %d needs a name and a positive amount", g.ID)
		}

		created := g.CreatedDate
		if created.IsZero() {
			created = now
		}

		deadline := types.DateOf(created.AddDate(0, 3, 0))
		if strings.TrimSpace(g.Deadline) != "" {
			parsed, err := types.ParseDate(g.Deadline)
			if err != nil {
				return fmt.Errorf("goal %d has an invalid deadline: %w", g.ID, err)
			}
			deadline = parsed
		}

		category := savings.GoalCategory(strings.ToLower(strings.TrimSpace(g.Category)))
		if !category.Valid() {
			category = savings.OtherGoal
		}

		saved := g.SavedAmount
		if saved.IsNegative() {
			saved = decimal.Zero
		}

		resources.Savings.Goals = append(resources.Savings.Goals, savings.Goal{
			ID: goalID,
			GoalCreate: savings.GoalCreate{
				Name:        name,
				Amount:      g.Amount,
				Deadline:    deadline,
				Category:    category,
				Description: strings.TrimSpace(g.Description),
			},
			SavedAmount:  saved,
			CreatedDate:  created,
			Achieved:     g.Achieved,
			AchievedDate: g.AchievedDate,
		})
		resources.Stats.Goals++
	}

	return nil
}

// parseCategory accepts category IDs and labels.
func parseCategory(name string) (ledger.Category, bool) {
	for _, c := range ledger.AllCategories() {
		if name == string(c) || name == strings.ToLower(c.Label()) {
			return c, true
		}
	}
	return "", false
}

// parseDates returns the date of a record and its timestamp. A missing date
// is taken from the timestamp and vice versa. If both are missing, now is used.
func parseDates(date string, timestamp time.Time, now time.Time) (types.Date, time.Time, error) {
	if strings.TrimSpace(date) == "" {
		if timestamp.IsZero() {
			timestamp = now
		}
		return types.DateOf(timestamp), timestamp, nil
	}

	parsed, err := types.ParseDate(date)
	if err != nil {
		return types.Date{}, time.Time{}, fmt.Errorf("invalid date '%s': %w", date, err)
	}

	if timestamp.IsZero() {
		timestamp = parsed.Time()
	}
	return parsed, timestamp, nil
}
