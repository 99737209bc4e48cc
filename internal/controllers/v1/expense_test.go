package v1_test

import (
	"fmt"
	"net/http"
	"strings"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/budget-buddy/backend/test"
)

func (suite *TestSuiteStandard) TestExpenseWithoutBudget() {
	recorder := suite.request(http.MethodPost, "/v1/expenses", v1.ExpenseEditable{Description: "Lunch", Amount: d("500"), Category: ledger.Food})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	suite.setupBudget("50000")

	expense := suite.createExpense(v1.ExpenseEditable{Description: "  Groceries ", Amount: d("1234.56"), Category: ledger.Food})

	suite.Assert().NotEmpty(expense.Data.ID)
	suite.Assert().Equal("Groceries", expense.Data.Description)
	suite.Assert().True(expense.Data.Amount.Equal(d("1234.56")))
	suite.Assert().Equal("Food & Dining", expense.Data.CategoryLabel)
	suite.Assert().True(expense.Data.Date.Equal(types.DateOf(now)), "date defaults to today")
	suite.Assert().True(now.Equal(expense.Data.Timestamp))
	suite.Assert().Equal("http://example.com/v1/expenses/"+expense.Data.ID, expense.Data.Links.Self)
	suite.Assert().Equal("http://example.com/v1/categories/food", expense.Data.Links.Category)

	dated := suite.createExpense(v1.ExpenseEditable{Amount: d("3"), Category: ledger.Transport, Date: types.NewDate(2024, 2, 29)})
	suite.Assert().Equal("2024-02-29", dated.Data.Date.String())

	suite.Assert().True(suite.store.TotalSpent().Equal(d("1237.56")))
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	suite.setupBudget("50000")

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Empty body", nil, "the request body must not be empty"},
		{"Missing category", `{"description": "Lunch", "amount": 5}`, "Category is required"},
		{"Unknown category", `{"description": "Lunch", "amount": 5, "category": "fuel"}`, "'fuel' is not a valid Category"},
		{"Empty description", `{"description": "  ", "amount": 5, "category": "food"}`, "the description must not be empty"},
		{"Long description", fmt.Sprintf(`{"description": "%s", "amount": 5, "category": "food"}`, strings.Repeat("a", 201)), "must not be longer than 200 characters"},
		{"Zero amount", `{"description": "Lunch", "amount": 0, "category": "food"}`, "the amount must be greater than zero"},
		{"Negative amount", `{"description": "Lunch", "amount": -5, "category": "food"}`, "the amount must be greater than zero"},
		{"Broken date", `{"description": "Lunch", "amount": 5, "category": "food", "date": "yesterday"}`, "invalid or un-parseable data"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/expenses", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
			suite.Assert().Contains(recorder.Body.String(), tt.message)
		})
	}

	suite.Assert().Len(suite.store.Expenses(), 0)
}

func (suite *TestSuiteStandard) TestExpenseGetAndDelete() {
	suite.setupBudget("50000")
	expense := suite.createExpense(v1.ExpenseEditable{Amount: d("45.50")})
	path := "/v1/expenses/" + expense.Data.ID

	recorder := suite.request(http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(expense.Data.ID, response.Data.ID)

	recorder = suite.request(http.MethodGet, "/v1/expenses/"+strings.ToUpper(expense.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().True(suite.store.TotalSpent().IsZero())

	recorder = suite.request(http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseList() {
	suite.setupBudget("50000")

	suite.createExpense(v1.ExpenseEditable{Description: "Morning coffee", Amount: d("3"), Category: ledger.Food, Date: types.NewDate(2024, 2, 10)})
	suite.createExpense(v1.ExpenseEditable{Description: "Train ticket", Amount: d("80"), Category: ledger.Transport, Date: types.NewDate(2024, 3, 1)})
	suite.createExpense(v1.ExpenseEditable{Description: "COFFEE beans", Amount: d("12"), Category: ledger.Shopping, Date: types.NewDate(2024, 3, 2)})
	suite.createExpense(v1.ExpenseEditable{Description: "Dinner", Amount: d("40"), Category: ledger.Food, Date: types.NewDate(2024, 3, 3)})

	tests := []struct {
		name         string
		query        string
		descriptions []string
		total        int
	}{
		{"All, newest first", "", []string{"Dinner", "COFFEE beans", "Train ticket", "Morning coffee"}, 4},
		{"Category", "?category=food", []string{"Dinner", "Morning coffee"}, 2},
		{"Category ignores case", "?category=FOOD", []string{"Dinner", "Morning coffee"}, 2},
		{"Month", "?month=2024-02", []string{"Morning coffee"}, 1},
		{"Search ignores case", "?search=coffee", []string{"COFFEE beans", "Morning coffee"}, 2},
		{"Combined", "?search=coffee&month=2024-03", []string{"COFFEE beans"}, 1},
		{"Limit", "?limit=2", []string{"Dinner", "COFFEE beans"}, 4},
		{"Offset", "?offset=3", []string{"Morning coffee"}, 4},
		{"Offset beyond", "?offset=10", []string{}, 4},
		{"Zero limit", "?limit=0", []string{}, 4},
		{"No limit", "?limit=-1&offset=1", []string{"COFFEE beans", "Train ticket", "Morning coffee"}, 4},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodGet, "/v1/expenses"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			descriptions := make([]string, 0, len(response.Data))
			for _, e := range response.Data {
				descriptions = append(descriptions, e.Description)
			}

			suite.Assert().Equal(tt.descriptions, descriptions)
			suite.Assert().Equal(len(tt.descriptions), response.Pagination.Count)
			suite.Assert().Equal(tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseListDefaultLimit() {
	suite.setupBudget("50000")
	for i := 0; i < 55; i++ {
		suite.createExpense(v1.ExpenseEditable{Amount: d("1")})
	}

	recorder := suite.request(http.MethodGet, "/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 50)
	suite.Assert().Equal(50, response.Pagination.Limit)
	suite.Assert().Equal(55, response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestExpenseListInvalidQuery() {
	for _, query := range []string{"?category=fuel", "?month=March", "?offset=-1", "?limit=many"} {
		suite.Run(query, func() {
			recorder := suite.request(http.MethodGet, "/v1/expenses"+query, nil)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseClear() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Amount: d("100")})
	suite.createExpense(v1.ExpenseEditable{Amount: d("200")})
	suite.deposit("1000")

	recorder := suite.request(http.MethodDelete, "/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Len(suite.store.Expenses(), 2)

	recorder = suite.request(http.MethodDelete, "/v1/expenses?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseClearResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(2, response.Data.Deleted)

	// Savings transfers stay booked
	suite.Assert().True(suite.store.TotalSpent().Equal(d("1000")))
	suite.Assert().True(suite.bank.TotalSavings().Equal(d("1000")))
}

func (suite *TestSuiteStandard) TestExpenseDatabaseError() {
	suite.setupBudget("50000")
	suite.CloseDB()

	recorder := suite.request(http.MethodPost, "/v1/expenses", v1.ExpenseEditable{Description: "Lunch", Amount: d("500"), Category: ledger.Food})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().Len(suite.store.Expenses(), 0)
}
