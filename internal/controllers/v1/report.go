package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/report"
	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	Data report.Summary `json:"data"` // Current figures of the ledger
}

type MonthListResponse struct {
	Data []report.Month `json:"data"` // Expenses per month, newest month first
}

type InsightListResponse struct {
	Data []report.Insight `json:"data"` // Advice about the budget and the savings
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsReport)
	r.GET("/summary", co.GetSummary)

	r.OPTIONS("/months", OptionsReport)
	r.GET("/months", co.GetMonths)

	r.OPTIONS("/insights", OptionsReport)
	r.GET("/insights", co.GetInsights)

	r.OPTIONS("/recalculate", OptionsRecalculate)
	r.POST("/recalculate", co.Recalculate)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/summary [options]
// @Router			/v1/months [options]
// @Router			/v1/insights [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/recalculate [options]
func OptionsRecalculate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get summary
// @Description	Returns the budget, the totals and the figures of every category
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, SummaryResponse{Data: report.NewSummary(co.Store)})
}

// @Summary		Get monthly history
// @Description	Returns the expenses grouped by month
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	c.JSON(http.StatusOK, MonthListResponse{Data: report.Monthly(co.Store)})
}

// @Summary		Get insights
// @Description	Returns advice derived from the budget and the savings
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	InsightListResponse
// @Router			/v1/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, InsightListResponse{Data: report.Insights(co.Store, co.Bank, co.Formatter, co.now())})
}

// @Summary		Recalculate
// @Description	Re-derives the amount spent in every category from the expenses and returns the summary
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Router			/v1/recalculate [post]
func (co Controller) Recalculate(c *gin.Context) {
	co.Store.Recalculate()
	c.JSON(http.StatusOK, SummaryResponse{Data: report.NewSummary(co.Store)})
}
