package ledger

import (
	"fmt"
	"slices"
)

// Snapshot is the persisted shape of the ledger.
//
// Expenses and adjustments are ordered newest first.
type Snapshot struct {
	Budget      *Budget      `json:"budget"`
	Expenses    []Expense    `json:"expenses"`
	Adjustments []Adjustment `json:"adjustments"`
}

// validate checks all records of the snapshot and returns them in
// chronological order.
func (s Snapshot) validate() (expenses []Expense, adjustments []Adjustment, err error) {
	if s.Budget != nil && !s.Budget.Income.IsPositive() {
		return nil, nil, fmt.Errorf("%w: the income of the budget must be greater than zero", ErrInvalidInput)
	}

	ids := make(map[string]bool, len(s.Expenses)+len(s.Adjustments))

	expenses = make([]Expense, 0, len(s.Expenses))
	for _, e := range s.Expenses {
		if e.ID == "" || ids[e.ID] {
			return nil, nil, fmt.Errorf("%w: expense ID '%s' is empty or not unique", ErrInvalidInput, e.ID)
		}
		ids[e.ID] = true

		create, err := e.ExpenseCreate.validate()
		if err != nil {
			return nil, nil, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		e.ExpenseCreate = create
		expenses = append(expenses, e)
	}

	adjustments = make([]Adjustment, 0, len(s.Adjustments))
	for _, a := range s.Adjustments {
		if a.ID == "" || ids[a.ID] {
			return nil, nil, fmt.Errorf("%w: adjustment ID '%s' is empty or not unique", ErrInvalidInput, a.ID)
		}
		ids[a.ID] = true

		create, err := a.AdjustmentCreate.validate()
		if err != nil {
			return nil, nil, fmt.Errorf("adjustment %s: %w", a.ID, err)
		}
		a.AdjustmentCreate = create
		adjustments = append(adjustments, a)
	}

	slices.Reverse(expenses)
	slices.Reverse(adjustments)
	return expenses, adjustments, nil
}
