package v1_test

import (
	"net/http"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetNotConfigured() {
	recorder := suite.request(http.MethodGet, "/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestBudgetSetup() {
	response := suite.setupBudget("50000")

	suite.Assert().Equal(ledger.Configured, response.Data.State)
	suite.Assert().True(response.Data.Income.Equal(d("50000")))
	suite.Assert().True(response.Data.SavingsPercentage.Equal(d("20")))
	suite.Assert().True(response.Data.SavingsAmount.Equal(d("10000")))
	suite.Assert().True(response.Data.TotalBudget.Equal(d("40000")))
	suite.Assert().True(now.Equal(response.Data.SetupDate))
	suite.Assert().Equal("http://example.com/v1/budget", response.Data.Links.Self)

	suite.Require().Len(response.Data.Limits, len(ledger.AllCategories()))
	suite.Assert().Equal(ledger.Food, response.Data.Limits[0].Category)
	suite.Assert().True(response.Data.Limits[0].Ceiling.Equal(d("14000")))

	recorder := suite.request(http.MethodGet, "/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var get v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &get)
	suite.Assert().True(get.Data.TotalBudget.Equal(d("40000")))
}

func (suite *TestSuiteStandard) TestBudgetSavingsPercentage() {
	tests := []struct {
		name       string
		percentage decimal.Decimal
		spendable  string
	}{
		{"Custom", d("35"), "32500"},
		{"Clamped above", d("150"), "0"},
		{"Clamped below", d("-10"), "50000"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			percentage := tt.percentage
			recorder := suite.request(http.MethodPut, "/v1/budget", v1.BudgetEditable{Income: d("50000"), SavingsPercentage: &percentage})
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.BudgetResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().True(response.Data.TotalBudget.Equal(d(tt.spendable)), "spendable is %s", response.Data.TotalBudget)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetReconfigureKeepsExpenses() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("800")})

	response := suite.setupBudget("20000")
	suite.Assert().True(response.Data.TotalBudget.Equal(d("16000")))
	suite.Assert().True(suite.store.TotalSpent().Equal(d("800")))
}

func (suite *TestSuiteStandard) TestBudgetInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", nil},
		{"Broken JSON", `{"income": `},
		{"Zero income", `{"income": 0}`},
		{"Negative income", `{"income": -100}`},
		{"Text income", `{"income": "a lot"}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPut, "/v1/budget", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().Equal(ledger.Uninitialized, suite.store.State())
}

func (suite *TestSuiteStandard) TestBudgetDatabaseError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodPut, "/v1/budget", v1.BudgetEditable{Income: d("50000")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().Equal(ledger.Uninitialized, suite.store.State())
}
