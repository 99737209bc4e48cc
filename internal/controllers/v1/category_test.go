package v1_test

import (
	"net/http"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/test"
)

func (suite *TestSuiteStandard) TestCategories() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("3000"), Category: ledger.Food})
	suite.createExpense(v1.ExpenseEditable{Amount: d("250"), Category: ledger.Food})
	suite.createExpense(v1.ExpenseEditable{Amount: d("900"), Category: ledger.Other})

	recorder := suite.request(http.MethodGet, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, len(ledger.AllCategories()))

	food := response.Data[0]
	suite.Assert().Equal(ledger.Food, food.ID)
	suite.Assert().Equal("Food & Dining", food.Label)
	suite.Assert().True(food.Ceiling.Equal(d("14000")))
	suite.Assert().True(food.Spent.Equal(d("3250")))
	suite.Assert().True(food.Remaining.Equal(d("10750")))
	suite.Assert().True(food.Percentage.Equal(d("23.21")))
	suite.Assert().False(food.OverBudget)
	suite.Assert().Equal(2, food.Count)
	suite.Assert().Equal("http://example.com/v1/expenses?category=food", food.Links.Expenses)

	other := response.Data[len(response.Data)-1]
	suite.Assert().Equal(ledger.Other, other.ID)
	suite.Assert().True(other.Ceiling.Equal(d("800")))
	suite.Assert().True(other.Remaining.Equal(d("-100")))
	suite.Assert().True(other.OverBudget)
}

func (suite *TestSuiteStandard) TestCategoryGet() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("60"), Category: ledger.Transport})

	for _, id := range []string{"transport", "Transport"} {
		suite.Run(id, func() {
			recorder := suite.request(http.MethodGet, "/v1/categories/"+id, nil)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.CategoryResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Equal(ledger.Transport, response.Data.ID)
			suite.Assert().True(response.Data.Spent.Equal(d("60")))
			suite.Assert().True(response.Data.Ceiling.Equal(d("6000")))
			suite.Assert().Equal(1, response.Data.Count)
			suite.Assert().Equal("http://example.com/v1/categories/transport", response.Data.Links.Self)
		})
	}

	recorder := suite.request(http.MethodGet, "/v1/categories/fuel", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesWithoutBudget() {
	recorder := suite.request(http.MethodGet, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	for _, c := range response.Data {
		suite.Assert().True(c.Ceiling.IsZero(), "ceiling of %s", c.ID)
	}
}
