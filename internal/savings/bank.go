// Package savings implements the piggy bank: savings transfers from and to the
// ledger's available balance, and savings goals.
package savings

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Ledger is the part of the ledger the bank moves money with.
type Ledger interface {
	AvailableBalance() decimal.Decimal
	ApplyAdjustment(ledger.AdjustmentCreate) (ledger.Adjustment, error)
	RevertAdjustment(id string) error
}

// Snapshot is the persisted shape of the piggy bank. Entries and goals are
// in chronological order.
type Snapshot struct {
	Entries []Entry `json:"savings"`
	Goals   []Goal  `json:"goals"`
}

// Bank is the piggy bank. Create it with New.
type Bank struct {
	mu          sync.RWMutex
	ledger      Ledger
	entries     []Entry // chronological
	goals       []Goal  // in creation order
	lastEntryID int64
	lastGoalID  int64

	persister Persister
	log       zerolog.Logger
	clock     func() time.Time
}

// Option configures the Bank.
type Option func(*Bank)

// WithPersister sets where entries and goals are stored.
func WithPersister(p Persister) Option {
	return func(b *Bank) {
		b.persister = p
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Bank) {
		b.log = l
	}
}

// WithClock sets the clock function.
func WithClock(clock func() time.Time) Option {
	return func(b *Bank) {
		b.clock = clock
	}
}

// New creates an empty piggy bank moving money with the ledger l.
func New(l Ledger, opts ...Option) *Bank {
	b := &Bank{
		ledger:    l,
		persister: NopPersister{},
		log:       log.Logger,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Deposit moves money from the available balance into savings and returns the
// ID of the savings entry.
//
// Without description, the deposit is recorded as a Quick Save.
func (b *Bank) Deposit(amount decimal.Decimal, description string) (int64, error) {
	entryType := CustomSave
	if description == "" {
		entryType = QuickSave
	}

	return b.transfer(amount, entryType, description)
}

// Withdraw moves money from savings back to the available balance and returns
// the ID of the savings entry.
func (b *Bank) Withdraw(amount decimal.Decimal, reason string) (int64, error) {
	return b.transfer(amount, Withdrawal, reason)
}

func (b *Bank) transfer(amount decimal.Decimal, entryType EntryType, text string) (int64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: the amount must be greater than zero", ErrInvalidInput)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock()
	entry := Entry{
		ID:     b.nextEntryID(),
		Amount: amount,
		Type:   entryType,
		Date:   now,
	}

	adjustment := ledger.AdjustmentCreate{
		Amount: amount,
		Kind:   ledger.SavingsDeposit,
		Date:   types.DateOf(now),
	}

	if entryType == Withdrawal {
		if amount.GreaterThan(b.totalSavings()) {
			return 0, ErrInsufficientSavings
		}

		entry.Amount = amount.Neg()
		entry.Description = fmt.Sprintf("Withdrew %s", amount)
		adjustment.Description = "Withdrawn from Savings"
		if text != "" {
			entry.Description = fmt.Sprintf("Withdrew %s - %s", amount, text)
			adjustment.Description = fmt.Sprintf("Withdrawn from Savings - %s", text)
		}

		adjustment.Amount = amount.Neg()
		adjustment.Kind = ledger.SavingsWithdrawal
	} else {
		entry.Description = text
		if text == "" {
			entry.Description = fmt.Sprintf("Saved %s via %s", amount, entryType)
		}

		adjustment.Description = fmt.Sprintf("Transferred to Savings - %s", entryType)
	}

	applied, err := b.ledger.ApplyAdjustment(adjustment)
	if err != nil {
		return 0, err
	}
	entry.AdjustmentID = applied.ID

	if err := b.persister.InsertEntry(entry); err != nil {
		if revertErr := b.ledger.RevertAdjustment(applied.ID); revertErr != nil {
			b.log.Error().Err(revertErr).Str("adjustment", applied.ID).Msg("could not revert ledger adjustment")
		}
		return 0, fmt.Errorf("saving savings entry: %w", err)
	}

	b.entries = append(b.entries, entry)
	b.lastEntryID = entry.ID

	b.log.Debug().Int64("id", entry.ID).Str("type", string(entry.Type)).Str("amount", entry.Amount.String()).Msg("savings transfer")
	return entry.ID, nil
}

// TotalSavings is the sum of all entries, i.e. the savings not allocated to a goal.
func (b *Bank) TotalSavings() decimal.Decimal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.totalSavings()
}

// Entries returns all entries, newest first.
func (b *Bank) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries := slices.Clone(b.entries)
	slices.Reverse(entries)
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

// MonthSavings is the sum of the positive entries in a month.
func (b *Bank) MonthSavings(month types.Month) decimal.Decimal {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := decimal.Zero
	for _, e := range b.entries {
		if e.Amount.IsPositive() && month.Contains(e.Date) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CreateGoal creates a savings goal.
//
// The category defaults to "other", the deadline to three months from now.
func (b *Bank) CreateGoal(create GoalCreate) (Goal, error) {
	now := b.clock()

	create, err := create.validate(now)
	if err != nil {
		return Goal{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	goal := Goal{
		ID:          b.nextGoalID(),
		GoalCreate:  create,
		SavedAmount: decimal.Zero,
		CreatedDate: now,
	}

	if err := b.persister.SaveGoal(goal); err != nil {
		return Goal{}, fmt.Errorf("saving goal: %w", err)
	}

	b.goals = append(b.goals, goal)
	b.lastGoalID = goal.ID

	b.log.Debug().Int64("id", goal.ID).Str("name", goal.Name).Msg("goal created")
	return goal, nil
}

// AllocateToGoal moves savings to a goal and returns the allocated amount.
//
// At most the missing amount of the goal and at most the total savings are
// allocated.
func (b *Bank) AllocateToGoal(id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: the amount must be greater than zero", ErrInvalidInput)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.goalIndex(id)
	if idx == -1 {
		return decimal.Zero, ErrGoalNotFound
	}

	goal := b.goals[idx]
	if goal.Achieved {
		return decimal.Zero, ErrGoalAchieved
	}

	allocated := decimal.Min(amount, b.totalSavings(), goal.Remaining())
	if !allocated.IsPositive() {
		return decimal.Zero, ErrInsufficientSavings
	}

	now := b.clock()
	goal.SavedAmount = goal.SavedAmount.Add(allocated)
	if goal.SavedAmount.GreaterThanOrEqual(goal.Amount) {
		goal.Achieved = true
		goal.AchievedDate = &now
	}

	entry := Entry{
		ID:          b.nextEntryID(),
		Amount:      allocated.Neg(),
		Type:        GoalAllocation,
		Date:        now,
		Description: fmt.Sprintf("Allocated %s to goal: %s", allocated, goal.Name),
		GoalID:      &goal.ID,
	}

	if err := b.persister.InsertEntry(entry); err != nil {
		return decimal.Zero, fmt.Errorf("saving savings entry: %w", err)
	}

	if err := b.persister.SaveGoal(goal); err != nil {
		b.compensate(entry.ID)
		return decimal.Zero, fmt.Errorf("saving goal: %w", err)
	}

	b.entries = append(b.entries, entry)
	b.lastEntryID = entry.ID
	b.goals[idx] = goal

	b.log.Debug().Int64("goal", goal.ID).Str("amount", allocated.String()).Bool("achieved", goal.Achieved).Msg("allocated to goal")
	return allocated, nil
}

// DeleteGoal deletes a goal. Its saved amount is returned to the savings.
func (b *Bank) DeleteGoal(id int64) (decimal.Decimal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.goalIndex(id)
	if idx == -1 {
		return decimal.Zero, ErrGoalNotFound
	}
	goal := b.goals[idx]

	var entry *Entry
	if goal.SavedAmount.IsPositive() {
		entry = &Entry{
			ID:          b.nextEntryID(),
			Amount:      goal.SavedAmount,
			Type:        GoalDeleted,
			Date:        b.clock(),
			Description: fmt.Sprintf("Returned %s from deleted goal: %s", goal.SavedAmount, goal.Name),
		}

		if err := b.persister.InsertEntry(*entry); err != nil {
			return decimal.Zero, fmt.Errorf("saving savings entry: %w", err)
		}
	}

	if err := b.persister.DeleteGoal(id); err != nil {
		if entry != nil {
			b.compensate(entry.ID)
		}
		return decimal.Zero, fmt.Errorf("deleting goal: %w", err)
	}

	if entry != nil {
		b.entries = append(b.entries, *entry)
		b.lastEntryID = entry.ID
	}
	b.goals = slices.Delete(slices.Clone(b.goals), idx, idx+1)

	b.log.Debug().Int64("id", id).Str("returned", goal.SavedAmount.String()).Msg("goal deleted")
	return goal.SavedAmount, nil
}

// Goals returns all goals in creation order.
func (b *Bank) Goals() []Goal {
	b.mu.RLock()
	defer b.mu.RUnlock()

	goals := slices.Clone(b.goals)
	if goals == nil {
		goals = []Goal{}
	}
	return goals
}

// Goal returns a single goal.
func (b *Bank) Goal(id int64) (Goal, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	idx := b.goalIndex(id)
	if idx == -1 {
		return Goal{}, ErrGoalNotFound
	}
	return b.goals[idx], nil
}

// GoalsAchieved returns the number of achieved goals.
func (b *Bank) GoalsAchieved() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, g := range b.goals {
		if g.Achieved {
			count++
		}
	}
	return count
}

// MonthlyTarget is the amount to save per month to reach all open goals by
// their deadlines, rounded to whole units.
func (b *Bank) MonthlyTarget(now time.Time) decimal.Decimal {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := decimal.Zero
	for _, g := range b.goals {
		if g.Achieved {
			continue
		}
		total = total.Add(g.Remaining().Div(decimal.NewFromInt(g.MonthsLeft(now))))
	}
	return total.Round(0)
}

// Snapshot returns all entries and goals.
func (b *Bank) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snapshot := Snapshot{
		Entries: slices.Clone(b.entries),
		Goals:   slices.Clone(b.goals),
	}
	if snapshot.Entries == nil {
		snapshot.Entries = []Entry{}
	}
	if snapshot.Goals == nil {
		snapshot.Goals = []Goal{}
	}
	return snapshot
}

// Restore replaces the state with the snapshot without persisting it.
func (b *Bank) Restore(snapshot Snapshot) error {
	return b.replace(snapshot, false)
}

// Import persists the snapshot and then replaces the state with it.
func (b *Bank) Import(snapshot Snapshot) error {
	return b.replace(snapshot, true)
}

func (b *Bank) replace(snapshot Snapshot, persist bool) error {
	if err := snapshot.validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if persist {
		if err := b.persister.ReplaceSavings(snapshot); err != nil {
			return fmt.Errorf("replacing savings: %w", err)
		}
	}

	b.entries = slices.Clone(snapshot.Entries)
	b.goals = slices.Clone(snapshot.Goals)

	b.lastEntryID, b.lastGoalID = 0, 0
	for _, e := range b.entries {
		b.lastEntryID = max(b.lastEntryID, e.ID)
	}
	for _, g := range b.goals {
		b.lastGoalID = max(b.lastGoalID, g.ID)
	}

	b.log.Debug().Int("entries", len(b.entries)).Int("goals", len(b.goals)).Msg("savings replaced")
	return nil
}

func (s Snapshot) validate() error {
	entryIDs := make(map[int64]bool, len(s.Entries))
	for _, e := range s.Entries {
		if entryIDs[e.ID] {
			return fmt.Errorf("%w: savings entry ID %d is not unique", ErrInvalidInput, e.ID)
		}
		entryIDs[e.ID] = true
	}

	goalIDs := make(map[int64]bool, len(s.Goals))
	for _, g := range s.Goals {
		if goalIDs[g.ID] {
			return fmt.Errorf("%w: goal ID %d is not unique", ErrInvalidInput, g.ID)
		}
		goalIDs[g.ID] = true

		if g.Name == "" || !g.Amount.IsPositive() || !g.Category.Valid() {
			return fmt.Errorf("%w: goal %d needs a name, a positive amount and a valid category", ErrInvalidInput, g.ID)
		}
	}

	return nil
}

// compensate deletes an entry that was persisted for an operation that failed afterwards.
func (b *Bank) compensate(entryID int64) {
	if err := b.persister.DeleteEntry(entryID); err != nil {
		b.log.Error().Err(err).Int64("entry", entryID).Msg("could not delete savings entry of failed operation")
	}
}

func (b *Bank) totalSavings() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.entries {
		total = total.Add(e.Amount)
	}
	return total
}

func (b *Bank) goalIndex(id int64) int {
	return slices.IndexFunc(b.goals, func(g Goal) bool { return g.ID == id })
}

// nextEntryID returns an ID larger than all existing ones. IDs are
// millisecond timestamps where possible, matching records of older exports.
func (b *Bank) nextEntryID() int64 {
	return max(b.lastEntryID+1, b.clock().UnixMilli())
}

func (b *Bank) nextGoalID() int64 {
	return max(b.lastGoalID+1, b.clock().UnixMilli())
}
