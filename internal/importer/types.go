package importer

import (
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
)

// ParsedResources is the struct containing all resources that are to be imported.
// They are restored into the ledger and the piggy bank as a whole.
type ParsedResources struct {
	Ledger  ledger.Snapshot
	Savings savings.Snapshot
	Stats   Stats
}

// Stats describes what happened to the records of an import.
type Stats struct {
	Expenses    int `json:"expenses" example:"112"`     // Number of imported expenses
	Adjustments int `json:"adjustments" example:"6"`    // Number of imported adjustments, including converted savings expenses
	Converted   int `json:"converted" example:"4"`      // Number of savings expenses converted to adjustments
	Classified  int `json:"classified" example:"3"`     // Number of expenses whose category was set by a match rule
	Regenerated int `json:"regenerated" example:"1"`    // Number of records that received a new ID
	Duplicates  int `json:"duplicates" example:"2"`     // Number of exact duplicates that were skipped
	Truncated   int `json:"truncated" example:"0"`      // Number of descriptions shortened to the maximum length
	Skipped     int `json:"skipped" example:"0"`        // Number of expenses skipped because their amount was not positive
	Entries     int `json:"savingsEntries" example:"9"` // Number of imported savings entries
	Goals       int `json:"goals" example:"2"`          // Number of imported goals
}

// MatchRule assigns a category to expenses whose lower-cased description
// matches the glob pattern.
type MatchRule struct {
	Match    string          `json:"match" example:"*grocer*"`
	Category ledger.Category `json:"category" example:"food"`
}
