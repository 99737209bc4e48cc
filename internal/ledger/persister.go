package ledger

// Persister stores the ledger records. Every method is called while the store
// is locked and before the in-memory state changes. If a method returns an
// error, the operation fails and the state stays as it was.
type Persister interface {
	SaveBudget(Budget) error
	InsertExpense(Expense) error
	DeleteExpense(id string) error
	DeleteAllExpenses() error
	InsertAdjustment(Adjustment) error
	DeleteAdjustment(id string) error

	// ReplaceLedger replaces all stored ledger records with the snapshot
	ReplaceLedger(Snapshot) error
}

// NopPersister does not store anything.
type NopPersister struct{}

func (NopPersister) SaveBudget(Budget) error           { return nil }
func (NopPersister) InsertExpense(Expense) error       { return nil }
func (NopPersister) DeleteExpense(string) error        { return nil }
func (NopPersister) DeleteAllExpenses() error          { return nil }
func (NopPersister) InsertAdjustment(Adjustment) error { return nil }
func (NopPersister) DeleteAdjustment(string) error     { return nil }
func (NopPersister) ReplaceLedger(Snapshot) error      { return nil }
