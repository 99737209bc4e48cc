// Package ledger keeps the budget, the expenses recorded against it and the
// per-category totals derived from them.
//
// The amount spent in a category is never maintained incrementally. Every
// mutation re-derives it from the full list of expenses.
package ledger

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/budget-buddy/backend/internal/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type State string

const (
	Uninitialized State = "uninitialized"
	Configured    State = "configured"
)

// CategoryBreakdown contains the figures of one category.
type CategoryBreakdown struct {
	ID         Category        `json:"id" example:"food"`
	Label      string          `json:"label" example:"Food & Dining"`
	Weight     decimal.Decimal `json:"weight" example:"0.35"`
	Ceiling    decimal.Decimal `json:"ceiling" example:"14000"`
	Spent      decimal.Decimal `json:"spent" example:"3250"`
	Remaining  decimal.Decimal `json:"remaining" example:"10750"`
	Percentage decimal.Decimal `json:"percentage" example:"23.21"` // Spent as percentage of the ceiling
	OverBudget bool            `json:"overBudget" example:"false"`
	Count      int             `json:"count" example:"7"` // Number of expenses in the category
}

// Store is the ledger. Create it with New.
type Store struct {
	mu          sync.RWMutex
	budget      *Budget
	expenses    []Expense    // chronological
	adjustments []Adjustment // chronological
	spent       map[Category]decimal.Decimal

	persister Persister
	observers []Observer
	log       zerolog.Logger
	clock     func() time.Time
}

// Option configures the Store.
type Option func(*Store)

// WithPersister sets where the ledger records are stored.
func WithPersister(p Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

// WithObserver adds an observer for change notifications.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observers = append(s.observers, o)
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock sets the clock function.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// New creates an unconfigured ledger without expenses.
func New(opts ...Option) *Store {
	s := &Store{
		spent:     make(map[Category]decimal.Decimal),
		persister: NopPersister{},
		log:       log.Logger,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configure replaces the budget and recomputes all category figures.
//
// See NewBudget for the handling of income and savingsPercentage.
func (s *Store) Configure(income decimal.Decimal, savingsPercentage *decimal.Decimal) (Budget, error) {
	budget, err := NewBudget(income, savingsPercentage, s.clock())
	if err != nil {
		return Budget{}, err
	}

	s.mu.Lock()
	if err := s.persister.SaveBudget(budget); err != nil {
		s.mu.Unlock()
		return Budget{}, fmt.Errorf("saving budget: %w", err)
	}

	s.budget = &budget
	s.spent = spentByCategory(s.expenses)

	events := []Event{{Kind: BudgetConfigured, Time: s.clock(), Budget: &budget}}
	events = append(events, s.changed(AllCategories()...)...)
	s.mu.Unlock()

	s.log.Debug().Str("income", budget.Income.String()).Str("spendable", budget.TotalBudget.String()).Msg("budget configured")
	s.notify(events)
	return budget, nil
}

// AddExpense records an expense and returns its ID.
func (s *Store) AddExpense(create ExpenseCreate) (string, error) {
	s.mu.Lock()
	if s.budget == nil {
		s.mu.Unlock()
		return "", ErrBudgetNotConfigured
	}

	create, err := create.validate()
	if err != nil {
		s.mu.Unlock()
		return "", err
	}

	expense := Expense{
		ID:            uuid.Unique(uuid.NewString(), s.hasID),
		ExpenseCreate: create,
		Timestamp:     s.clock(),
	}

	if err := s.persister.InsertExpense(expense); err != nil {
		s.mu.Unlock()
		return "", fmt.Errorf("saving expense: %w", err)
	}

	s.expenses = append(s.expenses, expense)
	s.spent = spentByCategory(s.expenses)

	events := s.changed(expense.Category)
	events = append(events, s.thresholds(expense.Category)...)
	s.mu.Unlock()

	s.log.Debug().Str("id", expense.ID).Str("category", string(expense.Category)).Str("amount", expense.Amount.String()).Msg("expense added")
	s.notify(events)
	return expense.ID, nil
}

// DeleteExpense removes an expense.
//
// For an unknown id, it returns false and ErrExpenseNotFound.
func (s *Store) DeleteExpense(id string) (bool, error) {
	s.mu.Lock()
	if s.budget == nil {
		s.mu.Unlock()
		return false, ErrBudgetNotConfigured
	}

	idx := slices.IndexFunc(s.expenses, func(e Expense) bool { return e.ID == id })
	if idx == -1 {
		s.mu.Unlock()
		return false, ErrExpenseNotFound
	}

	if err := s.persister.DeleteExpense(id); err != nil {
		s.mu.Unlock()
		return false, fmt.Errorf("deleting expense: %w", err)
	}

	category := s.expenses[idx].Category
	s.expenses = slices.Delete(slices.Clone(s.expenses), idx, idx+1)
	s.spent = spentByCategory(s.expenses)

	events := s.changed(category)
	s.mu.Unlock()

	s.log.Debug().Str("id", id).Msg("expense deleted")
	s.notify(events)
	return true, nil
}

// ClearAllExpenses removes all expenses and returns how many were removed.
//
// Adjustments are kept.
func (s *Store) ClearAllExpenses() (int, error) {
	s.mu.Lock()
	if s.budget == nil {
		s.mu.Unlock()
		return 0, ErrBudgetNotConfigured
	}

	if err := s.persister.DeleteAllExpenses(); err != nil {
		s.mu.Unlock()
		return 0, fmt.Errorf("deleting expenses: %w", err)
	}

	count := len(s.expenses)
	s.expenses = nil
	s.spent = spentByCategory(s.expenses)

	events := []Event{{Kind: ExpensesCleared, Time: s.clock(), Count: count}}
	events = append(events, s.changed(AllCategories()...)...)
	s.mu.Unlock()

	s.log.Debug().Int("count", count).Msg("all expenses cleared")
	s.notify(events)
	return count, nil
}

// Recalculate re-derives the amount spent in every category from the expenses.
//
// LedgerChanged is only emitted for categories whose amount differed.
func (s *Store) Recalculate() {
	s.mu.Lock()
	fresh := spentByCategory(s.expenses)

	var drifted []Category
	for _, c := range AllCategories() {
		if !fresh[c].Equal(s.spent[c]) {
			drifted = append(drifted, c)
		}
	}

	s.spent = fresh
	events := s.changed(drifted...)
	s.mu.Unlock()

	if len(drifted) > 0 {
		s.log.Warn().Interface("categories", drifted).Msg("recalculation corrected category totals")
	}
	s.notify(events)
}

// ApplyAdjustment records an adjustment.
//
// For savings deposits, the amount must not exceed the available balance,
// otherwise ErrInsufficientBalance is returned.
func (s *Store) ApplyAdjustment(create AdjustmentCreate) (Adjustment, error) {
	create, err := create.validate()
	if err != nil {
		return Adjustment{}, err
	}

	s.mu.Lock()
	if create.Amount.IsPositive() && create.Amount.GreaterThan(s.availableBalance()) {
		s.mu.Unlock()
		return Adjustment{}, ErrInsufficientBalance
	}

	adjustment := Adjustment{
		ID:               uuid.Unique(uuid.NewString(), s.hasID),
		AdjustmentCreate: create,
		Timestamp:        s.clock(),
	}

	if err := s.persister.InsertAdjustment(adjustment); err != nil {
		s.mu.Unlock()
		return Adjustment{}, fmt.Errorf("saving adjustment: %w", err)
	}

	s.adjustments = append(s.adjustments, adjustment)
	events := []Event{s.adjustmentEvent(AdjustmentApplied, adjustment)}
	s.mu.Unlock()

	s.log.Debug().Str("id", adjustment.ID).Str("kind", string(adjustment.Kind)).Str("amount", adjustment.Amount.String()).Msg("adjustment applied")
	s.notify(events)
	return adjustment, nil
}

// RevertAdjustment removes an adjustment.
func (s *Store) RevertAdjustment(id string) error {
	s.mu.Lock()
	idx := slices.IndexFunc(s.adjustments, func(a Adjustment) bool { return a.ID == id })
	if idx == -1 {
		s.mu.Unlock()
		return ErrAdjustmentNotFound
	}

	if err := s.persister.DeleteAdjustment(id); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("deleting adjustment: %w", err)
	}

	adjustment := s.adjustments[idx]
	s.adjustments = slices.Delete(slices.Clone(s.adjustments), idx, idx+1)
	events := []Event{s.adjustmentEvent(AdjustmentReverted, adjustment)}
	s.mu.Unlock()

	s.log.Debug().Str("id", id).Msg("adjustment reverted")
	s.notify(events)
	return nil
}

// Snapshot returns all ledger records.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Snapshot{
		Expenses:    newestFirst(s.expenses),
		Adjustments: newestFirst(s.adjustments),
	}

	if s.budget != nil {
		budget := *s.budget
		snapshot.Budget = &budget
	}

	return snapshot
}

// Restore replaces the state with the snapshot without persisting it.
// It is used to load the state from storage.
func (s *Store) Restore(snapshot Snapshot) error {
	return s.replace(snapshot, false)
}

// Import persists the snapshot and then replaces the state with it.
func (s *Store) Import(snapshot Snapshot) error {
	return s.replace(snapshot, true)
}

func (s *Store) replace(snapshot Snapshot, persist bool) error {
	expenses, adjustments, err := snapshot.validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	if persist {
		if err := s.persister.ReplaceLedger(snapshot); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("replacing ledger: %w", err)
		}
	}

	s.budget = nil
	if snapshot.Budget != nil {
		budget := *snapshot.Budget
		s.budget = &budget
	}
	s.expenses = expenses
	s.adjustments = adjustments
	s.spent = spentByCategory(s.expenses)

	events := s.changed(AllCategories()...)
	s.mu.Unlock()

	s.log.Debug().Int("expenses", len(expenses)).Int("adjustments", len(adjustments)).Msg("ledger replaced")
	s.notify(events)
	return nil
}

// State reports whether a budget has been configured.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.budget == nil {
		return Uninitialized
	}
	return Configured
}

// Budget returns the active budget.
func (s *Store) Budget() (Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.budget == nil {
		return Budget{}, ErrBudgetNotConfigured
	}
	return *s.budget, nil
}

// TotalSpent is the sum of all expenses and adjustments.
func (s *Store) TotalSpent() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalSpent()
}

// ExpenseTotal is the sum of all expenses.
func (s *Store) ExpenseTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenseTotal()
}

// AdjustmentTotal is the sum of all adjustments.
func (s *Store) AdjustmentTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adjustmentTotal()
}

// Remaining is the spendable budget minus the total spent. It is negative
// when the budget has been overspent.
func (s *Store) Remaining() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remaining()
}

// AvailableBalance is Remaining, but never negative.
func (s *Store) AvailableBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availableBalance()
}

// Categories returns the figures of all categories in display order.
func (s *Store) Categories() []CategoryBreakdown {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[Category]int)
	for _, e := range s.expenses {
		counts[e.Category]++
	}

	breakdown := make([]CategoryBreakdown, 0, len(categoryTable))
	for _, c := range AllCategories() {
		b := s.breakdown(c)
		b.Count = counts[c]
		breakdown = append(breakdown, b)
	}
	return breakdown
}

// Category returns the figures of a single category.
func (s *Store) Category(c Category) (CategoryBreakdown, error) {
	if !c.Valid() {
		return CategoryBreakdown{}, fmt.Errorf("%w: '%s' is not a valid category", ErrInvalidInput, c)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b := s.breakdown(c)
	for _, e := range s.expenses {
		if e.Category == c {
			b.Count++
		}
	}
	return b, nil
}

// Expenses returns all expenses, newest first.
func (s *Store) Expenses() []Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.expenses)
}

// Expense returns a single expense.
func (s *Store) Expense(id string) (Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return Expense{}, ErrExpenseNotFound
}

// Adjustments returns all adjustments, newest first.
func (s *Store) Adjustments() []Adjustment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.adjustments)
}

func (s *Store) expenseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, spent := range s.spent {
		total = total.Add(spent)
	}
	return total
}

func (s *Store) adjustmentTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.adjustments {
		total = total.Add(a.Amount)
	}
	return total
}

func (s *Store) totalSpent() decimal.Decimal {
	return s.expenseTotal().Add(s.adjustmentTotal())
}

func (s *Store) spendable() decimal.Decimal {
	if s.budget == nil {
		return decimal.Zero
	}
	return s.budget.TotalBudget
}

func (s *Store) remaining() decimal.Decimal {
	return s.spendable().Sub(s.totalSpent())
}

func (s *Store) availableBalance() decimal.Decimal {
	return decimal.Max(s.remaining(), decimal.Zero)
}

func (s *Store) ceiling(c Category) decimal.Decimal {
	if s.budget == nil {
		return decimal.Zero
	}
	return s.budget.Ceiling(c)
}

func (s *Store) breakdown(c Category) CategoryBreakdown {
	ceiling := s.ceiling(c)
	spent := s.spent[c]

	return CategoryBreakdown{
		ID:         c,
		Label:      c.Label(),
		Weight:     c.Weight(),
		Ceiling:    ceiling,
		Spent:      spent,
		Remaining:  ceiling.Sub(spent),
		Percentage: percentage(spent, ceiling),
		OverBudget: spent.GreaterThan(ceiling),
	}
}

func (s *Store) hasID(id string) bool {
	return slices.ContainsFunc(s.expenses, func(e Expense) bool { return e.ID == id }) ||
		slices.ContainsFunc(s.adjustments, func(a Adjustment) bool { return a.ID == id })
}

// changed builds LedgerChanged events. The store must be locked.
func (s *Store) changed(categories ...Category) []Event {
	now := s.clock()

	events := make([]Event, 0, len(categories))
	for _, c := range categories {
		b := s.breakdown(c)
		events = append(events, Event{
			Kind:       LedgerChanged,
			Time:       now,
			Category:   c,
			Spent:      b.Spent,
			Ceiling:    b.Ceiling,
			Remaining:  b.Remaining,
			Percentage: b.Percentage,
		})
	}
	return events
}

// thresholds builds the warning events for a category and for the total
// budget. The store must be locked.
func (s *Store) thresholds(c Category) []Event {
	var events []Event
	now := s.clock()

	b := s.breakdown(c)
	if b.Ceiling.IsPositive() {
		kind := EventKind("")
		switch {
		case b.Spent.GreaterThanOrEqual(b.Ceiling):
			kind = BudgetExceeded
		case b.Spent.Mul(hundred).GreaterThanOrEqual(b.Ceiling.Mul(warningThreshold)):
			kind = BudgetWarning
		}

		if kind != "" {
			events = append(events, Event{
				Kind:       kind,
				Time:       now,
				Category:   c,
				Spent:      b.Spent,
				Ceiling:    b.Ceiling,
				Remaining:  b.Remaining,
				Percentage: b.Percentage,
			})
		}
	}

	spendable := s.spendable()
	total := s.totalSpent()
	if spendable.IsPositive() && total.GreaterThan(spendable.Mul(totalWarningThreshold)) {
		events = append(events, Event{
			Kind:       TotalBudgetWarning,
			Time:       now,
			Spent:      total,
			Ceiling:    spendable,
			Remaining:  spendable.Sub(total),
			Percentage: percentage(total, spendable),
		})
	}

	return events
}

func (s *Store) adjustmentEvent(kind EventKind, a Adjustment) Event {
	return Event{
		Kind:       kind,
		Time:       s.clock(),
		Spent:      s.totalSpent(),
		Ceiling:    s.spendable(),
		Remaining:  s.remaining(),
		Adjustment: &a,
	}
}

func (s *Store) notify(events []Event) {
	for _, e := range events {
		for _, o := range s.observers {
			o.Notify(e)
		}
	}
}

// spentByCategory sums the expenses per category.
func spentByCategory(expenses []Expense) map[Category]decimal.Decimal {
	spent := make(map[Category]decimal.Decimal, len(categoryTable))
	for _, c := range AllCategories() {
		spent[c] = decimal.Zero
	}

	for _, e := range expenses {
		spent[e.Category] = spent[e.Category].Add(e.Amount)
	}
	return spent
}

func newestFirst[T any](records []T) []T {
	out := slices.Clone(records)
	slices.Reverse(out)
	if out == nil {
		out = []T{}
	}
	return out
}
