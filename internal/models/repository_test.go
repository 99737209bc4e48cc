package models_test

import (
	"time"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var now = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

func clock() time.Time {
	return now
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertExpenses compares expenses field by field since decimals read from
// the database do not necessarily have the same exponent.
func (suite *TestSuiteStandard) assertExpenses(expected, actual []ledger.Expense) {
	suite.Require().Len(actual, len(expected))
	for i, e := range expected {
		a := actual[i]
		suite.Assert().Equal(e.ID, a.ID)
		suite.Assert().Equal(e.Description, a.Description)
		suite.Assert().True(e.Amount.Equal(a.Amount), "amount of %s: %s != %s", e.ID, e.Amount, a.Amount)
		suite.Assert().Equal(e.Category, a.Category)
		suite.Assert().Equal(e.Date, a.Date)
		suite.Assert().True(e.Timestamp.Equal(a.Timestamp), "timestamp of %s", e.ID)
	}
}

func (suite *TestSuiteStandard) assertEntries(expected, actual []savings.Entry) {
	suite.Require().Len(actual, len(expected))
	for i, e := range expected {
		a := actual[i]
		suite.Assert().Equal(e.ID, a.ID)
		suite.Assert().True(e.Amount.Equal(a.Amount), "amount of %d: %s != %s", e.ID, e.Amount, a.Amount)
		suite.Assert().Equal(e.Type, a.Type)
		suite.Assert().True(e.Date.Equal(a.Date), "date of %d", e.ID)
		suite.Assert().Equal(e.Description, a.Description)
		suite.Assert().Equal(e.GoalID, a.GoalID)
		suite.Assert().Equal(e.AdjustmentID, a.AdjustmentID)
	}
}

// TestLedgerRoundTrip stores a ledger through the store and loads it into a new one.
func (suite *TestSuiteStandard) TestLedgerRoundTrip() {
	current := now
	store := ledger.New(ledger.WithClock(func() time.Time { return current }), ledger.WithPersister(suite.repo))

	_, err := store.Configure(d("50000"), nil)
	suite.Require().Nil(err)

	first, err := store.AddExpense(ledger.ExpenseCreate{Description: "Groceries", Amount: d("1234.56"), Category: ledger.Food, Date: types.NewDate(2024, 3, 1)})
	suite.Require().Nil(err)

	current = current.Add(time.Minute)
	_, err = store.AddExpense(ledger.ExpenseCreate{Description: "Train", Amount: d("80"), Category: ledger.Transport, Date: types.NewDate(2024, 3, 2)})
	suite.Require().Nil(err)

	_, err = store.ApplyAdjustment(ledger.AdjustmentCreate{Amount: d("500"), Kind: ledger.SavingsDeposit, Description: "Transferred to Savings", Date: types.DateOf(current)})
	suite.Require().Nil(err)

	_, err = store.DeleteExpense(first)
	suite.Require().Nil(err)

	l, _, err := suite.repo.Load()
	suite.Require().Nil(err)

	snapshot := store.Snapshot()
	suite.Require().NotNil(l.Budget)
	suite.Assert().True(snapshot.Budget.TotalBudget.Equal(l.Budget.TotalBudget))
	suite.Assert().True(snapshot.Budget.SavingsAmount.Equal(l.Budget.SavingsAmount))
	suite.assertExpenses(snapshot.Expenses, l.Expenses)
	suite.Require().Len(l.Adjustments, 1)
	suite.Assert().Equal(snapshot.Adjustments[0].ID, l.Adjustments[0].ID)
	suite.Assert().Equal(ledger.SavingsDeposit, l.Adjustments[0].Kind)
	suite.Assert().True(l.Adjustments[0].Amount.Equal(d("500")))

	loaded := ledger.New()
	suite.Require().Nil(loaded.Restore(l))
	suite.Assert().True(loaded.TotalSpent().Equal(d("580")))
	suite.Assert().True(loaded.Remaining().Equal(d("39420")))
}

func (suite *TestSuiteStandard) TestSaveBudgetOverwrites() {
	first, _ := ledger.NewBudget(d("1000"), nil, now)
	second, _ := ledger.NewBudget(d("2000"), nil, now)

	suite.Require().Nil(suite.repo.SaveBudget(first))
	suite.Require().Nil(suite.repo.SaveBudget(second))

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Budget{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	l, _, err := suite.repo.Load()
	suite.Require().Nil(err)
	suite.Require().NotNil(l.Budget)
	suite.Assert().True(l.Budget.Income.Equal(d("2000")))
}

func (suite *TestSuiteStandard) TestDeleteAllExpenses() {
	for _, id := range []string{"a", "b", "c"} {
		suite.Require().Nil(suite.repo.InsertExpense(ledger.Expense{
			ID:            id,
			ExpenseCreate: ledger.ExpenseCreate{Description: "Coffee", Amount: d("3"), Category: ledger.Food, Date: types.DateOf(now)},
			Timestamp:     now,
		}))
	}

	suite.Require().Nil(suite.repo.DeleteAllExpenses())

	l, _, err := suite.repo.Load()
	suite.Require().Nil(err)
	suite.Assert().Len(l.Expenses, 0)
}

func (suite *TestSuiteStandard) TestInsertDuplicateExpense() {
	e := ledger.Expense{
		ID:            "1710412200000",
		ExpenseCreate: ledger.ExpenseCreate{Description: "Coffee", Amount: d("3"), Category: ledger.Food, Date: types.DateOf(now)},
		Timestamp:     now,
	}

	suite.Require().Nil(suite.repo.InsertExpense(e))
	err := suite.repo.InsertExpense(e)
	suite.Assert().ErrorIs(err, models.ErrIDNotUnique)
}

func (suite *TestSuiteStandard) TestPersistenceFailureKeepsState() {
	store := ledger.New(ledger.WithClock(clock), ledger.WithPersister(suite.repo))
	_, err := store.Configure(d("15000"), nil)
	suite.Require().Nil(err)

	suite.CloseDB()

	_, err = store.AddExpense(ledger.ExpenseCreate{Description: "Lunch", Amount: d("500"), Category: ledger.Food, Date: types.DateOf(now)})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().Len(store.Expenses(), 0)
	suite.Assert().True(store.TotalSpent().IsZero())
}

func (suite *TestSuiteStandard) TestSavingsRoundTrip() {
	store := ledger.New(ledger.WithClock(clock), ledger.WithPersister(suite.repo))
	_, err := store.Configure(d("15000"), nil)
	suite.Require().Nil(err)

	bank := savings.New(store, savings.WithClock(clock), savings.WithPersister(suite.repo))

	_, err = bank.Deposit(d("2000"), "")
	suite.Require().Nil(err)

	goal, err := bank.CreateGoal(savings.GoalCreate{Name: "Bike", Amount: d("1500"), Category: savings.Travel})
	suite.Require().Nil(err)

	_, err = bank.AllocateToGoal(goal.ID, d("1500"))
	suite.Require().Nil(err)

	l, s, err := suite.repo.Load()
	suite.Require().Nil(err)
	suite.assertEntries(bank.Snapshot().Entries, s.Entries)
	suite.Assert().Len(l.Adjustments, 1)

	goals := s.Goals
	suite.Require().Len(goals, 1)
	suite.Assert().True(goals[0].Achieved)
	suite.Require().NotNil(goals[0].AchievedDate)
	suite.Assert().True(now.Equal(*goals[0].AchievedDate))
	suite.Assert().True(goals[0].SavedAmount.Equal(d("1500")))

	_, err = bank.DeleteGoal(goal.ID)
	suite.Require().Nil(err)

	_, s, err = suite.repo.Load()
	suite.Require().Nil(err)
	suite.Assert().Len(s.Goals, 0)
	suite.Assert().Len(s.Entries, 3)
}

func (suite *TestSuiteStandard) TestReplace() {
	budget, _ := ledger.NewBudget(d("30000"), nil, now)
	suite.Require().Nil(suite.repo.InsertExpense(ledger.Expense{
		ID:            "old",
		ExpenseCreate: ledger.ExpenseCreate{Description: "Old", Amount: d("1"), Category: ledger.Other, Date: types.DateOf(now)},
		Timestamp:     now,
	}))

	snapshot := ledger.Snapshot{
		Budget: &budget,
		Expenses: []ledger.Expense{
			{ID: "2", ExpenseCreate: ledger.ExpenseCreate{Description: "Newer", Amount: d("2"), Category: ledger.Food, Date: types.DateOf(now)}, Timestamp: now.Add(time.Hour)},
			{ID: "1", ExpenseCreate: ledger.ExpenseCreate{Description: "Older", Amount: d("1"), Category: ledger.Food, Date: types.DateOf(now)}, Timestamp: now},
		},
	}
	suite.Require().Nil(suite.repo.ReplaceLedger(snapshot))

	entries := savings.Snapshot{
		Entries: []savings.Entry{{ID: 1, Amount: d("10"), Type: savings.QuickSave, Date: now, Description: "Saved 10 via Quick Save"}},
	}
	suite.Require().Nil(suite.repo.ReplaceSavings(entries))

	l, s, err := suite.repo.Load()
	suite.Require().Nil(err)
	suite.Require().Len(l.Expenses, 2)
	suite.Assert().Equal("2", l.Expenses[0].ID)
	suite.Assert().Equal("1", l.Expenses[1].ID)
	suite.Assert().True(l.Budget.TotalBudget.Equal(d("24000")))
	suite.assertEntries(entries.Entries, s.Entries)
}

func (suite *TestSuiteStandard) TestReplaceRollsBack() {
	suite.Require().Nil(suite.repo.InsertExpense(ledger.Expense{
		ID:            "kept",
		ExpenseCreate: ledger.ExpenseCreate{Description: "Kept", Amount: d("1"), Category: ledger.Other, Date: types.DateOf(now)},
		Timestamp:     now,
	}))

	duplicate := ledger.Expense{ID: "x", ExpenseCreate: ledger.ExpenseCreate{Description: "X", Amount: d("1"), Category: ledger.Other, Date: types.DateOf(now)}, Timestamp: now}
	err := suite.repo.ReplaceLedger(ledger.Snapshot{Expenses: []ledger.Expense{duplicate, duplicate}})
	suite.Assert().ErrorIs(err, models.ErrIDNotUnique)

	l, _, err := suite.repo.Load()
	suite.Require().Nil(err)
	suite.Require().Len(l.Expenses, 1)
	suite.Assert().Equal("kept", l.Expenses[0].ID)
}

func (suite *TestSuiteStandard) TestPing() {
	suite.Assert().Nil(suite.repo.Ping())

	suite.CloseDB()
	suite.Assert().NotNil(suite.repo.Ping())
}

func (suite *TestSuiteStandard) TestUnmappedErrorsBecomeGeneral() {
	err := suite.db.Delete(&models.Expense{}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().NotErrorIs(err, gorm.ErrMissingWhereClause)
}
