package savings

// Persister stores the piggy bank. Every method is called while the bank is
// locked and before the in-memory state changes.
type Persister interface {
	InsertEntry(Entry) error
	DeleteEntry(id int64) error
	SaveGoal(Goal) error
	DeleteGoal(id int64) error

	// ReplaceSavings replaces all stored entries and goals with the snapshot
	ReplaceSavings(Snapshot) error
}

// NopPersister does not store anything.
type NopPersister struct{}

func (NopPersister) InsertEntry(Entry) error       { return nil }
func (NopPersister) DeleteEntry(int64) error       { return nil }
func (NopPersister) SaveGoal(Goal) error           { return nil }
func (NopPersister) DeleteGoal(int64) error        { return nil }
func (NopPersister) ReplaceSavings(Snapshot) error { return nil }
