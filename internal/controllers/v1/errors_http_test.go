package v1_test

import (
	"bytes"
	"errors"
	"net/http"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/budget-buddy/backend/internal/router"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/test"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// failingPersister stores budgets and fails every expense insert with a
// driver error that no callback maps.
type failingPersister struct {
	ledger.NopPersister
}

func (failingPersister) InsertExpense(ledger.Expense) error {
	return errors.New(`ERROR: relation "expenses" does not exist (SQLSTATE 42P01)`)
}

type healthy struct{}

func (healthy) Ping() error { return nil }

func (suite *TestSuiteStandard) TestUnmappedErrorIsHidden() {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = previous }()

	store := ledger.New(ledger.WithClock(clock), ledger.WithPersister(failingPersister{}))
	_, err := store.Configure(d("50000"), nil)
	suite.Require().Nil(err)

	r := gin.New()
	r.Use(requestid.New())
	router.AttachRoutes(v1.Controller{Store: store, Bank: savings.New(store), Clock: clock}, healthy{}, r.Group("/"))

	recorder := test.Request(suite.T(), r, http.MethodPost, "http://example.com/v1/expenses", v1.ExpenseEditable{Description: "Lunch", Amount: d("500"), Category: ledger.Food})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ErrGeneral.Error(), response.Error)
	suite.Assert().NotContains(recorder.Body.String(), "SQLSTATE")

	id := recorder.Header().Get("X-Request-ID")
	suite.Require().NotEmpty(id)
	suite.Assert().Contains(buf.String(), id)
	suite.Assert().Contains(buf.String(), "SQLSTATE 42P01")

	suite.Assert().Len(store.Expenses(), 0)
}
