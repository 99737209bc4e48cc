package observer

import (
	"fmt"

	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Totals provides the total spent of a ledger.
type Totals interface {
	TotalSpent() decimal.Decimal
}

// Metrics exports the ledger figures as Prometheus metrics.
type Metrics struct {
	categorySpent   *prometheus.GaugeVec
	categoryCeiling *prometheus.GaugeVec
	totalSpent      prometheus.Gauge
	spendable       prometheus.Gauge
	events          *prometheus.CounterVec
	totals          Totals
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		categorySpent: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "budget_category_spent",
				Help: "Amount spent per category.",
			},
			[]string{"category"},
		),
		categoryCeiling: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "budget_category_ceiling",
				Help: "Spending ceiling per category.",
			},
			[]string{"category"},
		),
		totalSpent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "budget_total_spent",
			Help: "Sum of all expenses and adjustments.",
		}),
		spendable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "budget_spendable",
			Help: "Spendable budget after savings.",
		}),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_events_total",
				Help: "How many ledger events were emitted, partitioned by kind.",
			},
			[]string{"kind"},
		),
	}

	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.categorySpent, m.categoryCeiling, m.totalSpent, m.spendable, m.events}
}

// Unregister removes the metrics from reg.
func (m *Metrics) Unregister(reg prometheus.Registerer) {
	for _, c := range m.collectors() {
		reg.Unregister(c)
	}
}

// Attach makes category changes update the total spent from t. It must be
// called before the ledger is used.
func (m *Metrics) Attach(t Totals) {
	m.totals = t
}

func (m *Metrics) Notify(e ledger.Event) {
	m.events.WithLabelValues(string(e.Kind)).Inc()

	switch e.Kind {
	case ledger.LedgerChanged:
		m.categorySpent.WithLabelValues(string(e.Category)).Set(e.Spent.InexactFloat64())
		m.categoryCeiling.WithLabelValues(string(e.Category)).Set(e.Ceiling.InexactFloat64())
		if m.totals != nil {
			m.totalSpent.Set(m.totals.TotalSpent().InexactFloat64())
		}
	case ledger.BudgetConfigured:
		if e.Budget != nil {
			m.spendable.Set(e.Budget.TotalBudget.InexactFloat64())
		}
	case ledger.AdjustmentApplied, ledger.AdjustmentReverted, ledger.TotalBudgetWarning:
		m.totalSpent.Set(e.Spent.InexactFloat64())
		m.spendable.Set(e.Ceiling.InexactFloat64())
	}
}

// Refresh sets all gauges from the current state of the store.
func (m *Metrics) Refresh(s *ledger.Store) {
	m.Attach(s)

	for _, c := range s.Categories() {
		m.categorySpent.WithLabelValues(string(c.ID)).Set(c.Spent.InexactFloat64())
		m.categoryCeiling.WithLabelValues(string(c.ID)).Set(c.Ceiling.InexactFloat64())
	}

	m.totalSpent.Set(s.TotalSpent().InexactFloat64())
	if budget, err := s.Budget(); err == nil {
		m.spendable.Set(budget.TotalBudget.InexactFloat64())
	}
}
