package models

import (
	"strings"
	"time"

	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsEntry is a stored movement of the piggy bank.
type SavingsEntry struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false"`
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type         string
	Date         time.Time
	Description  string
	GoalID       *int64 `gorm:"index"`
	AdjustmentID string
	Timestamps
}

func newSavingsEntry(e savings.Entry) SavingsEntry {
	return SavingsEntry{
		ID:           e.ID,
		Amount:       e.Amount,
		Type:         string(e.Type),
		Date:         e.Date,
		Description:  e.Description,
		GoalID:       e.GoalID,
		AdjustmentID: e.AdjustmentID,
	}
}

func (e SavingsEntry) savings() savings.Entry {
	return savings.Entry{
		ID:           e.ID,
		Amount:       e.Amount,
		Type:         savings.EntryType(e.Type),
		Date:         e.Date,
		Description:  e.Description,
		GoalID:       e.GoalID,
		AdjustmentID: e.AdjustmentID,
	}
}

func (e *SavingsEntry) AfterFind(tx *gorm.DB) (err error) {
	err = e.Timestamps.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// Goal is a stored savings goal.
type Goal struct {
	ID           int64 `gorm:"primaryKey;autoIncrement:false"`
	Name         string
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SavedAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deadline     types.Date
	Category     string
	Description  string
	CreatedDate  time.Time
	Achieved     bool
	AchievedDate *time.Time
	Timestamps
}

func newGoal(g savings.Goal) Goal {
	return Goal{
		ID:           g.ID,
		Name:         g.Name,
		Amount:       g.Amount,
		SavedAmount:  g.SavedAmount,
		Deadline:     g.Deadline,
		Category:     string(g.Category),
		Description:  g.Description,
		CreatedDate:  g.CreatedDate,
		Achieved:     g.Achieved,
		AchievedDate: g.AchievedDate,
	}
}

func (g Goal) savings() savings.Goal {
	return savings.Goal{
		ID: g.ID,
		GoalCreate: savings.GoalCreate{
			Name:        g.Name,
			Amount:      g.Amount,
			Deadline:    g.Deadline,
			Category:    savings.GoalCategory(g.Category),
			Description: g.Description,
		},
		SavedAmount:  g.SavedAmount,
		CreatedDate:  g.CreatedDate,
		Achieved:     g.Achieved,
		AchievedDate: g.AchievedDate,
	}
}

// BeforeSave trims whitespace from string fields.
func (g *Goal) BeforeSave(_ *gorm.DB) (err error) {
	g.Name = strings.TrimSpace(g.Name)
	g.Description = strings.TrimSpace(g.Description)
	return nil
}

func (g *Goal) AfterFind(tx *gorm.DB) (err error) {
	err = g.Timestamps.AfterFind(tx)
	if err != nil {
		return err
	}

	g.CreatedDate = g.CreatedDate.In(time.UTC)
	if g.AchievedDate != nil {
		achieved := g.AchievedDate.In(time.UTC)
		g.AchievedDate = &achieved
	}
	return nil
}
