package v1_test

import (
	"net/http"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/test"
)

func (suite *TestSuiteStandard) TestSavingsEmpty() {
	recorder := suite.request(http.MethodGet, "/v1/savings", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Total.IsZero())
	suite.Assert().True(response.Data.AvailableBalance.IsZero())
	suite.Assert().Len(response.Data.Entries, 0)
	suite.Assert().Equal("http://example.com/v1/savings/deposits", response.Data.Links.Deposits)
}

func (suite *TestSuiteStandard) TestDepositWithoutBudget() {
	recorder := suite.request(http.MethodPost, "/v1/savings/deposits", v1.DepositEditable{Amount: d("100")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
	suite.Assert().Len(suite.bank.Entries(), 0)
}

func (suite *TestSuiteStandard) TestDepositAndWithdraw() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("500")})

	quick := suite.deposit("1000")
	suite.Assert().Equal(savings.QuickSave, quick.Data.Entry.Type)
	suite.Assert().Equal("Saved 1000 via Quick Save", quick.Data.Entry.Description)
	suite.Assert().NotEmpty(quick.Data.Entry.AdjustmentID)
	suite.Assert().True(quick.Data.Total.Equal(d("1000")))
	suite.Assert().True(quick.Data.AvailableBalance.Equal(d("38500")))

	recorder := suite.request(http.MethodPost, "/v1/savings/deposits", v1.DepositEditable{Amount: d("250"), Description: "Birthday money"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var custom v1.TransferResponse
	test.DecodeResponse(suite.T(), &recorder, &custom)
	suite.Assert().Equal(savings.CustomSave, custom.Data.Entry.Type)
	suite.Assert().Equal("Birthday money", custom.Data.Entry.Description)
	suite.Assert().True(custom.Data.Total.Equal(d("1250")))

	recorder = suite.request(http.MethodPost, "/v1/savings/withdrawals", v1.WithdrawalEditable{Amount: d("300"), Reason: "Car repair"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var withdrawal v1.TransferResponse
	test.DecodeResponse(suite.T(), &recorder, &withdrawal)
	suite.Assert().Equal(savings.Withdrawal, withdrawal.Data.Entry.Type)
	suite.Assert().True(withdrawal.Data.Entry.Amount.Equal(d("-300")))
	suite.Assert().Equal("Withdrew 300 - Car repair", withdrawal.Data.Entry.Description)
	suite.Assert().True(withdrawal.Data.Total.Equal(d("950")))
	suite.Assert().True(withdrawal.Data.AvailableBalance.Equal(d("38550")))

	adjustments := suite.store.Adjustments()
	suite.Require().Len(adjustments, 3)
	suite.Assert().Equal(ledger.SavingsWithdrawal, adjustments[0].Kind)

	recorder = suite.request(http.MethodGet, "/v1/savings", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Total.Equal(d("950")))
	suite.Assert().True(response.Data.ThisMonth.Equal(d("1250")))
	suite.Require().Len(response.Data.Entries, 3)
	suite.Assert().Equal(withdrawal.Data.Entry.ID, response.Data.Entries[0].ID)
}

func (suite *TestSuiteStandard) TestTransferRejected() {
	suite.setupBudget("10000")
	suite.deposit("500")

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Deposit more than available", "/v1/savings/deposits", v1.DepositEditable{Amount: d("7600")}, http.StatusConflict},
		{"Deposit zero", "/v1/savings/deposits", v1.DepositEditable{Amount: d("0")}, http.StatusBadRequest},
		{"Deposit without body", "/v1/savings/deposits", nil, http.StatusBadRequest},
		{"Withdraw more than saved", "/v1/savings/withdrawals", v1.WithdrawalEditable{Amount: d("500.01")}, http.StatusConflict},
		{"Withdraw negative", "/v1/savings/withdrawals", v1.WithdrawalEditable{Amount: d("-5")}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}

	suite.Assert().True(suite.bank.TotalSavings().Equal(d("500")))
	suite.Assert().True(suite.store.AvailableBalance().Equal(d("7500")))
	suite.Assert().Len(suite.store.Adjustments(), 1)
}

func (suite *TestSuiteStandard) TestDepositDatabaseError() {
	suite.setupBudget("10000")
	suite.CloseDB()

	recorder := suite.request(http.MethodPost, "/v1/savings/deposits", v1.DepositEditable{Amount: d("100")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	suite.Assert().True(suite.bank.TotalSavings().IsZero())
	suite.Assert().Len(suite.store.Adjustments(), 0)
}
