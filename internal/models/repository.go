package models

import (
	"fmt"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
	"gorm.io/gorm"
)

// Repository stores the ledger and the piggy bank in the database.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

var (
	_ ledger.Persister  = (*Repository)(nil)
	_ savings.Persister = (*Repository)(nil)
)

// Ping checks that the database is reachable.
func (r *Repository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (r *Repository) SaveBudget(b ledger.Budget) error {
	model := newBudget(b)
	return r.db.Save(&model).Error
}

func (r *Repository) InsertExpense(e ledger.Expense) error {
	model := newExpense(e)
	return r.db.Create(&model).Error
}

func (r *Repository) DeleteExpense(id string) error {
	return r.db.Delete(&Expense{}, "id = ?", id).Error
}

func (r *Repository) DeleteAllExpenses() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Expense{}).Error
}

func (r *Repository) InsertAdjustment(a ledger.Adjustment) error {
	model := newAdjustment(a)
	return r.db.Create(&model).Error
}

func (r *Repository) DeleteAdjustment(id string) error {
	return r.db.Delete(&Adjustment{}, "id = ?", id).Error
}

// ReplaceLedger replaces the budget, all expenses and adjustments in one transaction.
func (r *Repository) ReplaceLedger(s ledger.Snapshot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&Budget{}, &Expense{}, &Adjustment{}} {
			if err := global.Delete(model).Error; err != nil {
				return err
			}
		}

		if s.Budget != nil {
			budget := newBudget(*s.Budget)
			if err := tx.Create(&budget).Error; err != nil {
				return err
			}
		}

		// Snapshots are newest first, insert the oldest first
		for i := len(s.Expenses) - 1; i >= 0; i-- {
			model := newExpense(s.Expenses[i])
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
		}

		for i := len(s.Adjustments) - 1; i >= 0; i-- {
			model := newAdjustment(s.Adjustments[i])
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *Repository) InsertEntry(e savings.Entry) error {
	model := newSavingsEntry(e)
	return r.db.Create(&model).Error
}

func (r *Repository) DeleteEntry(id int64) error {
	return r.db.Delete(&SavingsEntry{}, "id = ?", id).Error
}

func (r *Repository) SaveGoal(g savings.Goal) error {
	model := newGoal(g)
	return r.db.Save(&model).Error
}

func (r *Repository) DeleteGoal(id int64) error {
	return r.db.Delete(&Goal{}, "id = ?", id).Error
}

// ReplaceSavings replaces all savings entries and goals in one transaction.
func (r *Repository) ReplaceSavings(s savings.Snapshot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&SavingsEntry{}, &Goal{}} {
			if err := global.Delete(model).Error; err != nil {
				return err
			}
		}

		for _, e := range s.Entries {
			model := newSavingsEntry(e)
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
		}

		for _, g := range s.Goals {
			model := newGoal(g)
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Load reads everything that is stored. The ledger snapshot lists expenses
// and adjustments newest first, the savings snapshot is chronological.
func (r *Repository) Load() (ledger.Snapshot, savings.Snapshot, error) {
	var l ledger.Snapshot
	var s savings.Snapshot

	var budgets []Budget
	err := r.db.Where(&Budget{ID: budgetID}).Limit(1).Find(&budgets).Error
	if err != nil {
		return l, s, fmt.Errorf("could not load budget: %w", err)
	}
	if len(budgets) == 1 {
		budget := budgets[0].ledger()
		l.Budget = &budget
	}

	var expenses []Expense
	err = r.db.Order("timestamp DESC, created_at DESC").Find(&expenses).Error
	if err != nil {
		return l, s, fmt.Errorf("could not load expenses: %w", err)
	}
	for _, e := range expenses {
		l.Expenses = append(l.Expenses, e.ledger())
	}

	var adjustments []Adjustment
	err = r.db.Order("timestamp DESC, created_at DESC").Find(&adjustments).Error
	if err != nil {
		return l, s, fmt.Errorf("could not load adjustments: %w", err)
	}
	for _, a := range adjustments {
		l.Adjustments = append(l.Adjustments, a.ledger())
	}

	var entries []SavingsEntry
	err = r.db.Order("id ASC").Find(&entries).Error
	if err != nil {
		return l, s, fmt.Errorf("could not load savings entries: %w", err)
	}
	for _, e := range entries {
		s.Entries = append(s.Entries, e.savings())
	}

	var goals []Goal
	err = r.db.Order("id ASC").Find(&goals).Error
	if err != nil {
		return l, s, fmt.Errorf("could not load goals: %w", err)
	}
	for _, g := range goals {
		s.Goals = append(s.Goals, g.savings())
	}

	return l, s, nil
}
