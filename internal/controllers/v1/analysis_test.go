package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAnalysisEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analysis", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalSpent.IsZero())
	assert.Nil(suite.T(), response.Data.StartDate)
	assert.Empty(suite.T(), response.Data.Statuses)
	assert.Empty(suite.T(), response.Data.Alerts)
	assert.Nil(suite.T(), response.Data.Trend.PeakDay)
}

func (suite *TestSuiteStandard) TestAnalysis() {
	createTestBudget(suite.T(), v1.BudgetEditable{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})
	createTestBudget(suite.T(), v1.BudgetEditable{Category: "Transportation", MonthlyLimit: decimal.NewFromInt(200)})

	createTestExpense(suite.T(), v1.ExpenseEditable{Date: testDate(10), Description: "Grocery Store", Amount: decimal.NewFromInt(120)})
	createTestExpense(suite.T(), v1.ExpenseEditable{Date: testDate(12), Description: "Gas Station", Amount: decimal.NewFromInt(235)})
	createTestExpense(suite.T(), v1.ExpenseEditable{Date: testDate(14), Description: "Flight Tickets", Amount: decimal.NewFromInt(300), Category: "Travel"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analysis", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	data := response.Data
	assert.True(suite.T(), data.TotalSpent.Equal(decimal.NewFromInt(655)), "total spent is %s", data.TotalSpent)

	// Budgeted categories in lexical order, no explicit priorities set
	require.Len(suite.T(), data.Statuses, 2)
	assert.Equal(suite.T(), "Groceries", data.Statuses[0].Category)
	assert.True(suite.T(), data.Statuses[0].Remaining.Equal(decimal.NewFromInt(380)))
	assert.Equal(suite.T(), "Transportation", data.Statuses[1].Category)
	assert.True(suite.T(), data.Statuses[1].Overspent)
	assert.True(suite.T(), data.Statuses[1].Overspend.Equal(decimal.NewFromInt(35)))

	// Travel has no budget and lands in the unbudgeted bucket
	require.Len(suite.T(), data.Unbudgeted, 1)
	assert.Equal(suite.T(), "Travel", data.Unbudgeted[0].Category)

	require.Len(suite.T(), data.Alerts, 1)
	assert.Equal(suite.T(), "Transportation: overspent by $35.00 (117.5% of budget)", data.Alerts[0])

	assert.Equal(suite.T(), 2, data.Summary.Categories)
	assert.True(suite.T(), data.Summary.TotalBudget.Equal(decimal.NewFromInt(700)))

	assert.Len(suite.T(), data.Trend.Daily, 3)
	require.NotNil(suite.T(), data.Trend.PeakDay)
	assert.True(suite.T(), data.Trend.PeakDay.Amount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestAnalysisMonthFilter() {
	createTestBudget(suite.T(), v1.BudgetEditable{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})
	createTestExpense(suite.T(), v1.ExpenseEditable{Date: testDate(10), Description: "Grocery Store", Amount: decimal.NewFromInt(120), Category: "Groceries"})
	createTestExpense(suite.T(), v1.ExpenseEditable{Date: testDate(41), Description: "Grocery Store", Amount: decimal.NewFromInt(80), Category: "Groceries"})

	tests := []struct {
		month string
		spent int64
	}{
		{"2024-01", 120},
		{"2024-02", 80},
		{"2024-03", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.month, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/analysis?month="+tt.month, nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.AnalysisResponse
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Data)
			assert.True(t, response.Data.TotalSpent.Equal(decimal.NewFromInt(tt.spent)), "total spent is %s", response.Data.TotalSpent)
		})
	}
}

func (suite *TestSuiteStandard) TestAnalysisInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analysis?month=2024-13", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "the month query parameter must be a month in YYYY-MM format", *response.Error)
}

func (suite *TestSuiteStandard) TestAnalysisDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analysis", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestAnalysisOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/analysis", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}
