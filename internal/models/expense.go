package models

import (
	"strings"
	"time"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a stored expense.
type Expense struct {
	ID          string `gorm:"primaryKey"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string          `gorm:"index"`
	Date        types.Date      `gorm:"index"`
	Timestamp   time.Time
	Timestamps
}

func newExpense(e ledger.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Date:        e.Date,
		Timestamp:   e.Timestamp,
	}
}

func (e Expense) ledger() ledger.Expense {
	return ledger.Expense{
		ID: e.ID,
		ExpenseCreate: ledger.ExpenseCreate{
			Description: e.Description,
			Amount:      e.Amount,
			Category:    ledger.Category(e.Category),
			Date:        e.Date,
		},
		Timestamp: e.Timestamp,
	}
}

// BeforeSave trims whitespace from string fields.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Description = strings.TrimSpace(e.Description)
	e.Timestamp = e.Timestamp.In(time.UTC)
	return nil
}

func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.Timestamps.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Timestamp = e.Timestamp.In(time.UTC)
	return nil
}

// Adjustment is a stored ledger adjustment.
type Adjustment struct {
	ID          string          `gorm:"primaryKey"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Kind        string
	Description string
	Date        types.Date
	Timestamp   time.Time
	Timestamps
}

func newAdjustment(a ledger.Adjustment) Adjustment {
	return Adjustment{
		ID:          a.ID,
		Amount:      a.Amount,
		Kind:        string(a.Kind),
		Description: a.Description,
		Date:        a.Date,
		Timestamp:   a.Timestamp,
	}
}

func (a Adjustment) ledger() ledger.Adjustment {
	return ledger.Adjustment{
		ID: a.ID,
		AdjustmentCreate: ledger.AdjustmentCreate{
			Amount:      a.Amount,
			Kind:        ledger.AdjustmentKind(a.Kind),
			Description: a.Description,
			Date:        a.Date,
		},
		Timestamp: a.Timestamp,
	}
}

func (a *Adjustment) AfterFind(tx *gorm.DB) (err error) {
	err = a.Timestamps.AfterFind(tx)
	if err != nil {
		return err
	}

	a.Timestamp = a.Timestamp.In(time.UTC)
	return nil
}
