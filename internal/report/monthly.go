package report

import (
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Month contains the expenses of one calendar month.
type Month struct {
	Month      types.Month                         `json:"month" example:"2024-03" swaggertype:"string"`
	Total      decimal.Decimal                     `json:"total" example:"3250.50"`
	Count      int                                 `json:"count" example:"17"`
	Categories map[ledger.Category]decimal.Decimal `json:"categories"`
}

// Monthly groups the expenses by the month of their date, newest month first.
// Only categories with expenses in a month are listed for it.
func Monthly(l Ledger) []Month {
	byMonth := make(map[types.Month]*Month)

	for _, e := range l.Expenses() {
		key := e.Date.Month()

		m, ok := byMonth[key]
		if !ok {
			m = &Month{
				Month:      key,
				Total:      decimal.Zero,
				Categories: make(map[ledger.Category]decimal.Decimal),
			}
			byMonth[key] = m
		}

		m.Total = m.Total.Add(e.Amount)
		m.Count++
		m.Categories[e.Category] = m.Categories[e.Category].Add(e.Amount)
	}

	months := make([]Month, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, *m)
	}

	slices.SortFunc(months, func(a, b Month) int {
		switch {
		case b.Month.Before(a.Month):
			return -1
		case a.Month.Before(b.Month):
			return 1
		}
		return 0
	})

	return months
}
