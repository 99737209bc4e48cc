package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budget      string `json:"budget" example:"https://example.com/api/v1/budget"`           // URL of the budget endpoint
	Expenses    string `json:"expenses" example:"https://example.com/api/v1/expenses"`       // URL of the expense collection endpoint
	Categories  string `json:"categories" example:"https://example.com/api/v1/categories"`   // URL of the category collection endpoint
	Summary     string `json:"summary" example:"https://example.com/api/v1/summary"`         // URL of the summary endpoint
	Months      string `json:"months" example:"https://example.com/api/v1/months"`           // URL of the monthly history endpoint
	Insights    string `json:"insights" example:"https://example.com/api/v1/insights"`       // URL of the insights endpoint
	Recalculate string `json:"recalculate" example:"https://example.com/api/v1/recalculate"` // URL of the recalculation endpoint
	Savings     string `json:"savings" example:"https://example.com/api/v1/savings"`         // URL of the piggy bank endpoint
	Goals       string `json:"goals" example:"https://example.com/api/v1/goals"`             // URL of the goal collection endpoint
	Export      string `json:"export" example:"https://example.com/api/v1/export"`           // URL of the export endpoint
	Import      string `json:"import" example:"https://example.com/api/v1/import"`           // URL of the import endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budget:      link(c, "/v1/budget"),
			Expenses:    link(c, "/v1/expenses"),
			Categories:  link(c, "/v1/categories"),
			Summary:     link(c, "/v1/summary"),
			Months:      link(c, "/v1/months"),
			Insights:    link(c, "/v1/insights"),
			Recalculate: link(c, "/v1/recalculate"),
			Savings:     link(c, "/v1/savings"),
			Goals:       link(c, "/v1/goals"),
			Export:      link(c, "/v1/export"),
			Import:      link(c, "/v1/import"),
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes the budget, all expenses, savings entries and goals
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	if err := confirmed(c); err != nil {
		abort(c, err)
		return
	}

	if err := co.Bank.Import(savings.Snapshot{}); err != nil {
		abort(c, err)
		return
	}

	if err := co.Store.Import(ledger.Snapshot{}); err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
