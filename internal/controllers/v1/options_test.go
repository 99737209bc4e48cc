package v1_test

import (
	"net/http"
	"strings"
	"testing"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"/v1", "OPTIONS, GET, DELETE"},
		{"/v1/budget", "OPTIONS, GET, PUT"},
		{"/v1/expenses", "OPTIONS, GET, POST, DELETE"},
		{"/v1/categories", "OPTIONS, GET"},
		{"/v1/categories/food", "OPTIONS, GET"},
		{"/v1/summary", "OPTIONS, GET"},
		{"/v1/months", "OPTIONS, GET"},
		{"/v1/insights", "OPTIONS, GET"},
		{"/v1/recalculate", "OPTIONS, POST"},
		{"/v1/savings", "OPTIONS, GET"},
		{"/v1/savings/deposits", "OPTIONS, POST"},
		{"/v1/savings/withdrawals", "OPTIONS, POST"},
		{"/v1/goals", "OPTIONS, GET, POST"},
		{"/v1/export", "OPTIONS, GET"},
		{"/v1/import", "OPTIONS, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := suite.request(http.MethodOptions, tt.path, nil)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetailResources() {
	suite.setupBudget("50000")
	expense := suite.createExpense(v1.ExpenseEditable{Amount: d("12.50")})

	recorder := suite.request(http.MethodOptions, "/v1/expenses/"+expense.Data.ID, nil)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET, DELETE", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/expenses/does-not-exist", nil)
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)

	goal := suite.createGoal(v1.GoalEditable{Amount: d("1000")})

	recorder = suite.request(http.MethodOptions, strings.TrimPrefix(goal.Data.Links.Self, "http://example.com"), nil)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET, DELETE", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/goals/17", nil)
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)

	recorder = suite.request(http.MethodOptions, "/v1/goals/laptop", nil)
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
}
