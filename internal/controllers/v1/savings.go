package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DepositEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001"`
	Description string          `json:"description" example:"Birthday money"` // Marks the deposit as custom save. Empty for a quick save
}

type WithdrawalEditable struct {
	Amount decimal.Decimal `json:"amount" example:"200" minimum:"0.00000001"`
	Reason string          `json:"reason" example:"Car repair"`
}

type SavingsLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/savings"`
	Deposits    string `json:"deposits" example:"https://example.com/api/v1/savings/deposits"`
	Withdrawals string `json:"withdrawals" example:"https://example.com/api/v1/savings/withdrawals"`
	Goals       string `json:"goals" example:"https://example.com/api/v1/goals"`
}

// Savings is the state of the piggy bank.
type Savings struct {
	Total            decimal.Decimal `json:"total" example:"4200"`            // Savings not allocated to a goal
	AvailableBalance decimal.Decimal `json:"availableBalance" example:"8000"` // Amount that can still be moved from the budget to the savings
	ThisMonth        decimal.Decimal `json:"thisMonth" example:"700"`         // Sum of the entries of the current month
	MonthlyTarget    decimal.Decimal `json:"monthlyTarget" example:"2500"`    // Amount per month needed to reach all open goals in time
	GoalsAchieved    int             `json:"goalsAchieved" example:"1"`
	Entries          []savings.Entry `json:"entries"` // All entries, newest first
	Links            SavingsLinks    `json:"links"`
}

type SavingsResponse struct {
	Data Savings `json:"data"`
}

// Transfer is the result of a deposit or withdrawal.
type Transfer struct {
	Entry            savings.Entry   `json:"entry"`
	Total            decimal.Decimal `json:"total" example:"4700"`
	AvailableBalance decimal.Decimal `json:"availableBalance" example:"7500"`
}

type TransferResponse struct {
	Data Transfer `json:"data"`
}

// RegisterSavingsRoutes registers the routes for the piggy bank with
// the RouterGroup that is passed.
func (co Controller) RegisterSavingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSavings)
	r.GET("", co.GetSavings)

	r.OPTIONS("/deposits", OptionsTransfer)
	r.POST("/deposits", co.CreateDeposit)

	r.OPTIONS("/withdrawals", OptionsTransfer)
	r.POST("/withdrawals", co.CreateWithdrawal)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings [options]
func OptionsSavings(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings/deposits [options]
// @Router			/v1/savings/withdrawals [options]
func OptionsTransfer(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get savings
// @Description	Returns the piggy bank with all its entries
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	SavingsResponse
// @Router			/v1/savings [get]
func (co Controller) GetSavings(c *gin.Context) {
	now := co.now()

	c.JSON(http.StatusOK, SavingsResponse{Data: Savings{
		Total:            co.Bank.TotalSavings(),
		AvailableBalance: co.Store.AvailableBalance(),
		ThisMonth:        co.Bank.MonthSavings(types.MonthOf(now)),
		MonthlyTarget:    co.Bank.MonthlyTarget(now),
		GoalsAchieved:    co.Bank.GoalsAchieved(),
		Entries:          co.Bank.Entries(),
		Links: SavingsLinks{
			Self:        link(c, "/v1/savings"),
			Deposits:    link(c, "/v1/savings/deposits"),
			Withdrawals: link(c, "/v1/savings/withdrawals"),
			Goals:       link(c, "/v1/goals"),
		},
	}})
}

// @Summary		Deposit
// @Description	Moves money from the available balance of the budget to the piggy bank
// @Tags			Savings
// @Accept			json
// @Produce		json
// @Success		201		{object}	TransferResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			deposit	body		DepositEditable	true	"Deposit"
// @Router			/v1/savings/deposits [post]
func (co Controller) CreateDeposit(c *gin.Context) {
	var editable DepositEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	id, err := co.Bank.Deposit(editable.Amount, editable.Description)
	if err != nil {
		abort(c, err)
		return
	}

	co.transferCreated(c, id)
}

// @Summary		Withdraw
// @Description	Moves money from the piggy bank back to the budget
// @Tags			Savings
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransferResponse
// @Failure		400			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			withdrawal	body		WithdrawalEditable	true	"Withdrawal"
// @Router			/v1/savings/withdrawals [post]
func (co Controller) CreateWithdrawal(c *gin.Context) {
	var editable WithdrawalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	id, err := co.Bank.Withdraw(editable.Amount, editable.Reason)
	if err != nil {
		abort(c, err)
		return
	}

	co.transferCreated(c, id)
}

// transferCreated responds with the entry with the id and the new totals.
func (co Controller) transferCreated(c *gin.Context, id int64) {
	transfer := Transfer{
		Total:            co.Bank.TotalSavings(),
		AvailableBalance: co.Store.AvailableBalance(),
	}

	for _, e := range co.Bank.Entries() {
		if e.ID == id {
			transfer.Entry = e
			break
		}
	}

	c.JSON(http.StatusCreated, TransferResponse{Data: transfer})
}
