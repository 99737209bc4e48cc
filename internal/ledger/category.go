package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed spending buckets.
type Category string

const (
	Food          Category = "food"
	Transport     Category = "transport"
	Entertainment Category = "entertainment"
	Shopping      Category = "shopping"
	Bills         Category = "bills"
	Healthcare    Category = "healthcare"
	Education     Category = "education"
	Other         Category = "other"
)

type categoryInfo struct {
	label  string
	weight decimal.Decimal
}

// The weights sum to exactly 1.
var categoryTable = map[Category]categoryInfo{
	Food:          {"Food & Dining", decimal.RequireFromString("0.35")},
	Transport:     {"Transportation", decimal.RequireFromString("0.15")},
	Entertainment: {"Entertainment", decimal.RequireFromString("0.10")},
	Shopping:      {"Shopping", decimal.RequireFromString("0.15")},
	Bills:         {"Bills & Utilities", decimal.RequireFromString("0.15")},
	Healthcare:    {"Healthcare", decimal.RequireFromString("0.05")},
	Education:     {"Education", decimal.RequireFromString("0.03")},
	Other:         {"Other", decimal.RequireFromString("0.02")},
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{Food, Transport, Entertainment, Shopping, Bills, Healthcare, Education, Other}
}

// ParseCategory parses a category id. Surrounding whitespace and case are ignored.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: '%s' is not a valid category", ErrInvalidInput, s)
	}
	return c, nil
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// Label returns the human readable name of the category.
func (c Category) Label() string {
	return categoryTable[c].label
}

// Weight returns the share of the spendable budget the category receives.
func (c Category) Weight() decimal.Decimal {
	return categoryTable[c].weight
}

func (c Category) String() string {
	return string(c)
}
