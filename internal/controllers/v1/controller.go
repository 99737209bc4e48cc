// Package v1 implements version 1 of the HTTP API on top of the ledger and
// the piggy bank.
package v1

import (
	"time"

	"github.com/budget-buddy/backend/internal/importer"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/report"
	"github.com/budget-buddy/backend/internal/savings"
)

// Controller holds the state all v1 handlers work with.
type Controller struct {
	Store     *ledger.Store
	Bank      *savings.Bank
	Formatter report.Formatter
	Rules     []importer.MatchRule // Used to classify imported expenses. importer.DefaultRules if nil
	Version   string               // Written to exports
	Clock     func() time.Time     // time.Now if nil
}

func (co Controller) now() time.Time {
	if co.Clock == nil {
		return time.Now()
	}
	return co.Clock()
}
