package savings

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType tags a savings entry with its origin.
type EntryType string

const (
	QuickSave      EntryType = "Quick Save"
	CustomSave     EntryType = "Custom Save"
	Withdrawal     EntryType = "Withdrawal"
	GoalAllocation EntryType = "Goal Allocation"
	GoalDeleted    EntryType = "Goal Deleted"
)

// Entry is a signed movement of the piggy bank. The sum of all entries is the
// amount of savings not allocated to any goal.
type Entry struct {
	ID          int64           `json:"id" example:"1710419465000"`
	Amount      decimal.Decimal `json:"amount" example:"500"`
	Type        EntryType       `json:"type" example:"Quick Save"`
	Date        time.Time       `json:"date" example:"2024-03-14T12:31:05Z"`
	Description string          `json:"description" example:"Saved 500 via Quick Save"`
	GoalID      *int64          `json:"goalId,omitempty" example:"1710419465001"`

	// AdjustmentID is the ledger adjustment created together with a deposit or withdrawal
	AdjustmentID string `json:"adjustmentId,omitempty" example:"9d4e55fd-4b15-4d64-9a31-18f5f3d7a1f0"`
}
