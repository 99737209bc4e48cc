package legacy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Export is a backup as written by the browser app or by the export endpoint.
type Export struct {
	Budget      *Budget        `json:"budget"`
	Expenses    []Expense      `json:"expenses"`
	Adjustments []Adjustment   `json:"adjustments"`
	Savings     []SavingsEntry `json:"savings"`
	Goals       []Goal         `json:"goals"`
}

// exportFile is the response of the export endpoint, which wraps the Export
// in its data field.
type exportFile struct {
	Data *Export `json:"data"`
}

type Budget struct {
	Income            decimal.Decimal  `json:"income"`
	SavingsPercentage *decimal.Decimal `json:"savingsPercentage"`
	SetupDate         time.Time        `json:"setupDate"`
}

type Expense struct {
	ID          id              `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Timestamp   time.Time       `json:"timestamp"`
}

type Adjustment struct {
	ID          id              `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Timestamp   time.Time       `json:"timestamp"`
}

type SavingsEntry struct {
	ID           number          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	GoalID       *number         `json:"goalId"`
	AdjustmentID string          `json:"adjustmentId"`
}

type Goal struct {
	ID           number          `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	Deadline     string          `json:"deadline"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	CreatedDate  time.Time       `json:"createdDate"`
	Achieved     bool            `json:"achieved"`
	AchievedDate *time.Time      `json:"achievedDate"`
}

// id is a record ID that was written either as JSON string or as number.
type id string

func (i *id) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*i = ""
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = id(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ID %s is neither a string nor a number", raw)
	}
	*i = id(n.String())
	return nil
}

// number is an integer ID that was written either as JSON number or as numeric string.
type number int64

func (n *number) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "null" || raw == "" {
		*n = 0
		return nil
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("ID %s is not an integer", raw)
	}

	*n = number(parsed)
	return nil
}
