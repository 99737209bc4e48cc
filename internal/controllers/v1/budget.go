package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Income            decimal.Decimal  `json:"income" example:"50000"`         // Monthly income
	SavingsPercentage *decimal.Decimal `json:"savingsPercentage" example:"20"` // Share of the income put aside as savings. Defaults to 20, clamped to [0, 100]
}

type Budget struct {
	ledger.Budget
	State  ledger.State    `json:"state" example:"configured"`
	Links  BudgetLinks     `json:"links"`
	Limits []CategoryLimit `json:"limits"` // The ceiling of every category
}

type CategoryLimit struct {
	Category ledger.Category `json:"category" example:"food"`
	Ceiling  decimal.Decimal `json:"ceiling" example:"14000"`
}

type BudgetLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/budget"`
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"`
	Summary    string `json:"summary" example:"https://example.com/api/v1/summary"`
}

type BudgetResponse struct {
	Data Budget `json:"data"` // Data for the budget
}

func newBudget(c *gin.Context, b ledger.Budget) Budget {
	limits := make([]CategoryLimit, 0, len(ledger.AllCategories()))
	for _, category := range ledger.AllCategories() {
		limits = append(limits, CategoryLimit{Category: category, Ceiling: b.Ceiling(category)})
	}

	return Budget{
		Budget: b,
		State:  ledger.Configured,
		Limits: limits,
		Links: BudgetLinks{
			Self:       link(c, "/v1/budget"),
			Categories: link(c, "/v1/categories"),
			Summary:    link(c, "/v1/summary"),
		},
	}
}

// RegisterBudgetRoutes registers the routes for the budget with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", co.GetBudget)
	r.PUT("", co.SetBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get budget
// @Description	Returns the monthly budget and the ceilings derived from it
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		409	{object}	httpError
// @Router			/v1/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, err := co.Store.Budget()
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: newBudget(c, budget)})
}

// @Summary		Set up budget
// @Description	Allocates the income between savings and spending. Category totals are kept.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [put]
func (co Controller) SetBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	budget, err := co.Store.Configure(editable.Income, editable.SavingsPercentage)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: newBudget(c, budget)})
}
