package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/budget-buddy/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// defaultLimit is the number of records returned by list endpoints
// without limit parameter.
const defaultLimit = 50

type ExpenseEditable struct {
	Description string          `json:"description" example:"Lunch"`                                                  // What the money was spent on, at most 200 characters
	Amount      decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" multipleOf:"0.00000001"`            // The amount spent
	Category    ledger.Category `json:"category" example:"food" binding:"required,category"`                          // ID of the category
	Date        types.Date      `json:"date" example:"2024-03-14" swaggertype:"string" format:"date" default:"today"` // Date of the expense. Defaults to today
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/0b3a8bc5-0a1e-4b0b-a3f7-8d9b4d3c5e1a"` // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/food"`                           // The category of the expense
}

// Expense is the API v1 representation of an expense.
type Expense struct {
	ledger.Expense
	CategoryLabel string       `json:"categoryLabel" example:"Food & Dining"`
	Links         ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, e ledger.Expense) Expense {
	return Expense{
		Expense:       e,
		CategoryLabel: e.Category.Label(),
		Links: ExpenseLinks{
			Self:     link(c, "/v1/expenses/%s", e.ID),
			Category: link(c, "/v1/categories/%s", e.Category),
		},
	}
}

type ExpenseResponse struct {
	Data Expense `json:"data"` // Data for the expense
}

type ExpenseListResponse struct {
	Data       []Expense  `json:"data"`       // List of expenses, newest first
	Pagination Pagination `json:"pagination"` // Pagination information
}

type ExpenseClearResponse struct {
	Data ExpenseClear `json:"data"`
}

type ExpenseClear struct {
	Deleted int `json:"deleted" example:"23"` // Number of deleted expenses
}

type ExpenseQueryFilter struct {
	Category string `form:"category" example:"food"` // Only expenses of this category
	Month    string `form:"month" example:"2024-03"` // Only expenses in this month, YYYY-MM
	Search   string `form:"search" example:"coffee"` // Only expenses whose description contains this, ignoring case
	Offset   uint   `form:"offset" example:"0"`      // The offset of the first expense returned. Defaults to 0.
	Limit    int    `form:"limit" example:"50"`      // Maximum number of expenses to return. Defaults to 50, -1 returns all.
}

// filter returns the expenses matching the filter.
func (f ExpenseQueryFilter) filter(expenses []ledger.Expense) ([]ledger.Expense, error) {
	var category ledger.Category
	if f.Category != "" {
		c, err := ledger.ParseCategory(f.Category)
		if err != nil {
			return nil, err
		}
		category = c
	}

	var month types.Month
	if f.Month != "" {
		m, err := types.ParseMonth(f.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: month must be formatted as YYYY-MM", errInvalidQuery)
		}
		month = m
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))

	return slices.DeleteFunc(expenses, func(e ledger.Expense) bool {
		if category != "" && e.Category != category {
			return true
		}

		if !month.IsZero() && !e.Date.Month().Equal(month) {
			return true
		}

		return search != "" && !strings.Contains(strings.ToLower(e.Description), search)
	}), nil
}

// expenseID returns the ID parameter of the request. UUIDs are matched
// case-insensitively.
func expenseID(c *gin.Context) string {
	return uuid.Canonical(c.Param("id"))
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
		r.DELETE("", co.DeleteExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	_, err := co.Store.Expense(expenseID(c))
	if err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	httpError
// @Router			/v1/expenses [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			month		query	string	false	"Filter by month of the expense date, YYYY-MM"
// @Param			search		query	string	false	"Search in the description, ignoring case"
// @Param			offset		query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of expenses to return. Defaults to 50."
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, fmt.Errorf("%w: %s", errInvalidQuery, err))
		return
	}

	expenses, err := filter.filter(co.Store.Expenses())
	if err != nil {
		abort(c, err)
		return
	}

	limit := defaultLimit
	if slices.Contains(httputil.SetFields(c.Request.URL, filter), "Limit") {
		limit = filter.Limit
	}

	page, pagination := paginate(expenses, filter.Offset, limit)

	data := make([]Expense, 0, len(page))
	for _, e := range page {
		data = append(data, newExpense(c, e))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Create expense
// @Description	Records an expense. The budget must be set up first.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.Date.IsZero() {
		editable.Date = types.DateOf(co.now())
	}

	id, err := co.Store.AddExpense(ledger.ExpenseCreate{
		Description: editable.Description,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Date:        editable.Date,
	})
	if err != nil {
		abort(c, err)
		return
	}

	expense, err := co.Store.Expense(id)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: newExpense(c, expense)})
}

// @Summary		Delete all expenses
// @Description	Deletes all expenses. Savings transfers are kept.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseClearResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all expenses. Must have the value 'yes-please-delete-everything'"
// @Router			/v1/expenses [delete]
func (co Controller) DeleteExpenses(c *gin.Context) {
	if err := confirmed(c); err != nil {
		abort(c, err)
		return
	}

	deleted, err := co.Store.ClearAllExpenses()
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseClearResponse{Data: ExpenseClear{Deleted: deleted}})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	expense, err := co.Store.Expense(expenseID(c))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: newExpense(c, expense)})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	_, err := co.Store.DeleteExpense(expenseID(c))
	if err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
