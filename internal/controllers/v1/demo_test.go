package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDemo() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/demo", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.DemoResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 10, response.Data.Expenses)
	assert.Equal(suite.T(), 8, response.Data.Budgets)
}

// Seeding twice does not duplicate resources.
func (suite *TestSuiteStandard) TestDemoIdempotent() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/demo", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/demo", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.DemoResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 0, response.Data.Expenses)
	assert.Equal(suite.T(), 0, response.Data.Budgets)

	expenses, err := models.Expenses(models.DB, nil)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 10)
}

func (suite *TestSuiteStandard) TestDemoDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/demo", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestDemoOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/demo", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))
}
