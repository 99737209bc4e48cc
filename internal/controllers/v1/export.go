package v1

import (
	"net/http"
	"time"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/gin-gonic/gin"
)

// Export contains all records. It can be imported again.
type Export struct {
	Budget      *ledger.Budget      `json:"budget"`
	Expenses    []ledger.Expense    `json:"expenses"`    // Newest first
	Adjustments []ledger.Adjustment `json:"adjustments"` // Newest first
	Savings     []savings.Entry     `json:"savings"`     // Chronological
	Goals       []savings.Goal      `json:"goals"`       // In creation order
}

func newExport(l ledger.Snapshot, s savings.Snapshot) Export {
	return Export{
		Budget:      l.Budget,
		Expenses:    l.Expenses,
		Adjustments: l.Adjustments,
		Savings:     s.Entries,
		Goals:       s.Goals,
	}
}

type ExportResponse struct {
	Version      string    `json:"version" example:"1.4.0"` // The version of the backend the export was made with
	Data         Export    `json:"data"`                    // The exported data
	CreationTime time.Time `json:"creationTime"`            // Time the export was created
}

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", co.GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports the budget, all expenses, adjustments, savings entries and goals
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	c.JSON(http.StatusOK, ExportResponse{
		Version:      co.Version,
		Data:         newExport(co.Store.Snapshot(), co.Bank.Snapshot()),
		CreationTime: co.now(),
	})
}
