package models

import (
	"time"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// budgetID is the primary key of the only budget row.
const budgetID = 1

// Budget is the stored income configuration.
type Budget struct {
	ID                uint            `gorm:"primaryKey;autoIncrement:false"`
	Income            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SavingsPercentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SavingsAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalBudget       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SetupDate         time.Time
	Timestamps
}

func newBudget(b ledger.Budget) Budget {
	return Budget{
		ID:                budgetID,
		Income:            b.Income,
		SavingsPercentage: b.SavingsPercentage,
		SavingsAmount:     b.SavingsAmount,
		TotalBudget:       b.TotalBudget,
		SetupDate:         b.SetupDate,
	}
}

func (b Budget) ledger() ledger.Budget {
	return ledger.Budget{
		Income:            b.Income,
		SavingsPercentage: b.SavingsPercentage,
		SavingsAmount:     b.SavingsAmount,
		TotalBudget:       b.TotalBudget,
		SetupDate:         b.SetupDate,
	}
}

func (b *Budget) AfterFind(tx *gorm.DB) (err error) {
	err = b.Timestamps.AfterFind(tx)
	if err != nil {
		return err
	}

	b.SetupDate = b.SetupDate.In(time.UTC)
	return nil
}
