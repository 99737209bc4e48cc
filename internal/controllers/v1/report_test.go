package v1_test

import (
	"net/http"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/report"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/budget-buddy/backend/test"
)

func (suite *TestSuiteStandard) TestSummary() {
	recorder := suite.request(http.MethodGet, "/v1/summary", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Data.Configured)
	suite.Assert().True(response.Data.TotalSpent.IsZero())

	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("1500"), Category: ledger.Bills})
	suite.deposit("2000")

	recorder = suite.request(http.MethodGet, "/v1/summary", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Configured)
	suite.Assert().True(response.Data.TotalBudget.Equal(d("40000")))
	suite.Assert().True(response.Data.ExpenseTotal.Equal(d("1500")))
	suite.Assert().True(response.Data.AdjustmentTotal.Equal(d("2000")))
	suite.Assert().True(response.Data.TotalSpent.Equal(d("3500")))
	suite.Assert().True(response.Data.Remaining.Equal(d("36500")))
	suite.Assert().True(response.Data.AvailableBalance.Equal(d("36500")))
	suite.Assert().Equal(1, response.Data.ExpenseCount)
	suite.Assert().Len(response.Data.Categories, len(ledger.AllCategories()))
}

func (suite *TestSuiteStandard) TestMonths() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("10"), Category: ledger.Food, Date: types.NewDate(2024, 1, 31)})
	suite.createExpense(v1.ExpenseEditable{Amount: d("20"), Category: ledger.Food, Date: types.NewDate(2024, 3, 1)})
	suite.createExpense(v1.ExpenseEditable{Amount: d("5"), Category: ledger.Transport, Date: types.NewDate(2024, 3, 9)})

	recorder := suite.request(http.MethodGet, "/v1/months", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	march := response.Data[0]
	suite.Assert().Equal("2024-03", march.Month.String())
	suite.Assert().True(march.Total.Equal(d("25")))
	suite.Assert().Equal(2, march.Count)
	suite.Assert().True(march.Categories[ledger.Transport].Equal(d("5")))

	suite.Assert().Equal("2024-01", response.Data[1].Month.String())
	suite.Assert().True(response.Data[1].Total.Equal(d("10")))
}

func (suite *TestSuiteStandard) TestInsights() {
	recorder := suite.request(http.MethodGet, "/v1/insights", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.InsightListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotEmpty(response.Data)
	suite.Assert().Equal("Set up your budget to see personalized insights!", response.Data[0].Message)

	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("45000"), Category: ledger.Shopping})

	recorder = suite.request(http.MethodGet, "/v1/insights", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotEmpty(response.Data)
	suite.Assert().Equal(report.Danger, response.Data[0].Level)
	suite.Assert().Contains(response.Data[0].Message, "over budget")
	suite.Assert().Contains(response.Data[0].Message, "₹")
}

func (suite *TestSuiteStandard) TestRecalculate() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("700"), Category: ledger.Healthcare})

	recorder := suite.request(http.MethodPost, "/v1/recalculate", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.TotalSpent.Equal(d("700")))

	var healthcare ledger.CategoryBreakdown
	for _, c := range response.Data.Categories {
		if c.ID == ledger.Healthcare {
			healthcare = c
		}
	}
	suite.Assert().True(healthcare.Spent.Equal(d("700")))
}
