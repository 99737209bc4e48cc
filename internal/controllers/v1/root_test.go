package v1_test

import (
	"net/http"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := suite.request(http.MethodGet, "/v1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/v1/budget", response.Links.Budget)
	suite.Assert().Equal("http://example.com/v1/expenses", response.Links.Expenses)
	suite.Assert().Equal("http://example.com/v1/savings", response.Links.Savings)
	suite.Assert().Equal("http://example.com/v1/import", response.Links.Import)
}

func (suite *TestSuiteStandard) TestCleanup() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("300")})
	suite.deposit("1000")
	suite.createGoal(v1.GoalEditable{Amount: d("5000")})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"No confirmation", "/v1", http.StatusBadRequest},
		{"Wrong confirmation", "/v1?confirm=yes", http.StatusBadRequest},
		{"Confirmed", "/v1?confirm=yes-please-delete-everything", http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodDelete, tt.path, nil)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}

	recorder := suite.request(http.MethodGet, "/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)

	suite.Assert().Len(suite.store.Expenses(), 0)
	suite.Assert().Len(suite.store.Adjustments(), 0)
	suite.Assert().Len(suite.bank.Entries(), 0)
	suite.Assert().Len(suite.bank.Goals(), 0)
}

func (suite *TestSuiteStandard) TestUnknownRouteAndMethod() {
	recorder := suite.request(http.MethodGet, "/v1/nothing-here", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodPatch, "/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
