package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpensesEmptyList() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	response := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Grocery Store",
		Amount:      decimal.NewFromFloat(45.67),
		Category:    "Groceries",
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Grocery Store", response.Data.Description)
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data.ID)
}

// An expense without a category is categorized on creation.
func (suite *TestSuiteStandard) TestExpenseCreateCategorizes() {
	response := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Gas Station",
		Amount:      decimal.NewFromFloat(35),
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Transportation", response.Data.Category)
}

// Stored category rules win over the built-in table.
func (suite *TestSuiteStandard) TestExpenseCreateUsesStoredRules() {
	createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Match: "gas", Category: "Car"})

	response := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Gas Station",
		Amount:      decimal.NewFromFloat(35),
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Car", response.Data.Category)
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"broken JSON", `{ "description": "Grocery`},
		{"wrong type", `{ "description": 2 }`},
		{"negative amount", v1.ExpenseEditable{Description: "Refund", Date: testDate(15), Amount: decimal.NewFromFloat(-10)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseGet() {
	created := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Coffee Shop", Amount: decimal.NewFromFloat(4.50), Category: "Dining"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", created.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestExpenseGetInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesFilter() {
	createTestExpense(suite.T(), v1.ExpenseEditable{Date: testDate(15), Description: "Grocery Store", Amount: decimal.NewFromInt(45), Category: "Groceries", PaymentMethod: "Credit Card"})
	createTestExpense(suite.T(), v1.ExpenseEditable{Date: testDate(16), Description: "Gas Station", Amount: decimal.NewFromInt(35), Category: "Transportation", PaymentMethod: "Cash"})
	createTestExpense(suite.T(), v1.ExpenseEditable{Date: testDate(40), Description: "Restaurant", Amount: decimal.NewFromInt(28), Category: "Dining", PaymentMethod: "Credit Card"})

	tests := []struct {
		query string
		count int
	}{
		{"category=Groceries", 1},
		{"paymentMethod=Credit%20Card", 2},
		{"month=2024-01", 2},
		{"month=2024-02", 1},
		{"category=Groceries&paymentMethod=Cash", 0},
		{"", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesFilterInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=January", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "the month query parameter must be a month in YYYY-MM format", *response.Error)
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	created := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Coffee Shop", Amount: decimal.NewFromFloat(4.50), Category: "Dining"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", created.Data.ID), map[string]any{
		"description": "Coffee Shop Downtown",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Coffee Shop Downtown", response.Data.Description)

	// Fields not in the request body stay unchanged
	assert.Equal(suite.T(), "Dining", response.Data.Category)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(4.50)))
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	created := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Coffee Shop", Amount: decimal.NewFromFloat(4.50), Category: "Dining"})

	url := fmt.Sprintf("http://example.com/v1/expenses/%s", created.Data.ID)

	recorder := test.Request(suite.T(), http.MethodDelete, url, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseCategorizeEndpoint() {
	// Two uncategorized, one with a category that must not change
	models.DB.Create(&models.Expense{Date: testDate(15), Description: "Grocery Store", Amount: decimal.NewFromInt(45)})
	models.DB.Create(&models.Expense{Date: testDate(16), Description: "Gas Station", Amount: decimal.NewFromInt(35)})
	models.DB.Create(&models.Expense{Date: testDate(17), Description: "Gas Station", Amount: decimal.NewFromInt(20), Category: "Custom"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/categorize", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategorizeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 2, response.Data.Categorized)

	expenses, err := models.Expenses(models.DB, nil)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), expenses, 3)
	assert.Equal(suite.T(), "Groceries", expenses[0].Category)
	assert.Equal(suite.T(), "Transportation", expenses[1].Category)
	assert.Equal(suite.T(), "Custom", expenses[2].Category)
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}
