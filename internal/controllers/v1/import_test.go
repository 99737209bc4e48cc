package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/budget-buddy/backend/test"
)

// legacyBackup is a backup of the browser app. The savings expense is
// converted to an adjustment, "Groceries" is classified as food.
const legacyBackup = `{
	"budget": {"income": 30000, "savingsPercentage": 10, "setupDate": "2024-02-01T08:00:00Z"},
	"expenses": [
		{"id": 1706774400000, "description": "Groceries", "amount": 850, "category": "unknown", "date": "2024-02-01", "timestamp": "2024-02-01T10:00:00Z"},
		{"id": 1706860800000, "description": "Bus pass", "amount": 45.5, "category": "transport", "date": "2024-02-02", "timestamp": "2024-02-02T10:00:00Z"},
		{"id": 1706947200000, "description": "Transferred to Savings", "amount": 1000, "category": "savings", "date": "2024-02-03", "timestamp": "2024-02-03T10:00:00Z"}
	],
	"savings": [
		{"id": 1706947200001, "amount": 1000, "type": "Quick Save", "date": "2024-02-03T10:00:00Z", "description": "Saved 1000 via Quick Save"}
	],
	"goals": [
		{"id": 1706947200002, "name": "Bike", "amount": 5000, "savedAmount": 0, "deadline": "2024-05-01", "category": "travel", "createdDate": "2024-02-03T10:00:00Z", "achieved": false}
	]
}`

// upload sends the content as multipart form file to the import endpoint.
func (suite *TestSuiteStandard) upload(path, filename, content string) httptest.ResponseRecorder {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	suite.Require().Nil(err)
	_, err = part.Write([]byte(content))
	suite.Require().Nil(err)
	suite.Require().Nil(writer.Close())

	return suite.request(http.MethodPost, path, body, map[string]string{"Content-Type": writer.FormDataContentType()})
}

func (suite *TestSuiteStandard) TestImport() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Description: "Replaced", Amount: d("5")})

	recorder := suite.upload("/v1/import", "backup.json", legacyBackup)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Data.DryRun)
	suite.Assert().Equal(2, response.Data.Stats.Expenses)
	suite.Assert().Equal(1, response.Data.Stats.Adjustments)
	suite.Assert().Equal(1, response.Data.Stats.Converted)
	suite.Assert().Equal(1, response.Data.Stats.Entries)
	suite.Assert().Equal(1, response.Data.Stats.Goals)

	budget, err := suite.store.Budget()
	suite.Require().Nil(err)
	suite.Assert().True(budget.TotalBudget.Equal(d("27000")))

	expenses := suite.store.Expenses()
	suite.Require().Len(expenses, 2)
	for _, e := range expenses {
		suite.Assert().NotEqual("Replaced", e.Description)
		if e.Description == "Groceries" {
			suite.Assert().Equal(ledger.Food, e.Category)
		}
	}

	suite.Assert().True(suite.store.TotalSpent().Equal(d("1895.5")))
	suite.Assert().True(suite.bank.TotalSavings().Equal(d("1000")))
	suite.Assert().Len(suite.bank.Goals(), 1)
}

func (suite *TestSuiteStandard) TestImportDryRun() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Description: "Kept", Amount: d("5")})

	recorder := suite.upload("/v1/import?dryRun=true", "backup.json", legacyBackup)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.DryRun)
	suite.Assert().Equal(2, response.Data.Stats.Expenses)

	expenses := suite.store.Expenses()
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("Kept", expenses[0].Description)
}

func (suite *TestSuiteStandard) TestImportErrors() {
	tests := []struct {
		name     string
		path     string
		filename string
		content  string
		message  string
	}{
		{"Wrong suffix", "/v1/import", "backup.csv", legacyBackup, "this endpoint only supports files of the following types: .json"},
		{"Not JSON", "/v1/import", "backup.json", "date,amount\n", "the file could not be imported"},
		{"Invalid dry run", "/v1/import?dryRun=maybe", "backup.json", legacyBackup, "the query parameters are not valid"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.upload(tt.path, tt.filename, tt.content)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
			suite.Assert().Contains(recorder.Body.String(), tt.message)
		})
	}

	recorder := suite.request(http.MethodPost, "/v1/import", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(recorder.Body.String(), "you must send a file to this endpoint")

	suite.Assert().Equal(ledger.Uninitialized, suite.store.State())
}

func (suite *TestSuiteStandard) TestExport() {
	suite.setupBudget("50000")
	suite.createExpense(v1.ExpenseEditable{Description: "Dinner", Amount: d("42"), Date: types.NewDate(2024, 3, 10)})
	suite.deposit("1500")
	goal := suite.createGoal(v1.GoalEditable{Name: "Camera", Amount: d("1000")})
	suite.allocate(goal.Data.ID, "400", http.StatusOK)

	recorder := suite.request(http.MethodGet, "/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	exported := recorder.Body.String()

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("0.0.0", response.Version)
	suite.Assert().True(now.Equal(response.CreationTime))
	suite.Require().NotNil(response.Data.Budget)
	suite.Assert().True(response.Data.Budget.Income.Equal(d("50000")))
	suite.Assert().Len(response.Data.Expenses, 1)
	suite.Assert().Len(response.Data.Adjustments, 1)
	suite.Assert().Len(response.Data.Savings, 2)
	suite.Assert().Len(response.Data.Goals, 1)

	// Start over and import the export
	recorder = suite.request(http.MethodDelete, "/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.upload("/v1/import", "export.json", exported)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	budget, err := suite.store.Budget()
	suite.Require().Nil(err)
	suite.Assert().True(budget.TotalBudget.Equal(d("40000")))
	suite.Assert().True(budget.SetupDate.Equal(now))

	expenses := suite.store.Expenses()
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(response.Data.Expenses[0].ID, expenses[0].ID)
	suite.Assert().Equal("2024-03-10", expenses[0].Date.String())

	suite.Assert().True(suite.store.TotalSpent().Equal(d("1542")))
	suite.Assert().True(suite.bank.TotalSavings().Equal(d("1100")))

	goals := suite.bank.Goals()
	suite.Require().Len(goals, 1)
	suite.Assert().Equal(goal.Data.ID, goals[0].ID)
	suite.Assert().True(goals[0].SavedAmount.Equal(d("400")))
	suite.Assert().WithinDuration(now, goals[0].CreatedDate, time.Second)
}
