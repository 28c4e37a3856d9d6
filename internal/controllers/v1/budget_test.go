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

func (suite *TestSuiteStandard) TestBudgetsEmptyList() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestBudgetCreate() {
	response := createTestBudget(suite.T(), v1.BudgetEditable{
		Category:     "Groceries",
		MonthlyLimit: decimal.NewFromInt(500),
		Note:         "Includes the farmers market",
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
	assert.True(suite.T(), response.Data.MonthlyLimit.Equal(decimal.NewFromInt(500)))
	assert.Equal(suite.T(), "Includes the farmers market", response.Data.Note)
}

func (suite *TestSuiteStandard) TestBudgetCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"broken JSON", `{ "category": "Gro`},
		{"missing category", v1.BudgetEditable{MonthlyLimit: decimal.NewFromInt(500)}},
		{"negative limit", v1.BudgetEditable{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(-500)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

// Only one budget can exist per category.
func (suite *TestSuiteStandard) TestBudgetCreateDuplicateCategory() {
	createTestBudget(suite.T(), v1.BudgetEditable{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Category:     "Groceries",
		MonthlyLimit: decimal.NewFromInt(300),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), models.ErrBudgetCategoryNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestBudgetsOrderedByCategory() {
	createTestBudget(suite.T(), v1.BudgetEditable{Category: "Utilities", MonthlyLimit: decimal.NewFromInt(150)})
	createTestBudget(suite.T(), v1.BudgetEditable{Category: "Dining", MonthlyLimit: decimal.NewFromInt(200)})
	createTestBudget(suite.T(), v1.BudgetEditable{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Dining", response.Data[0].Category)
	assert.Equal(suite.T(), "Groceries", response.Data[1].Category)
	assert.Equal(suite.T(), "Utilities", response.Data[2].Category)
}

func (suite *TestSuiteStandard) TestBudgetGet() {
	created := createTestBudget(suite.T(), v1.BudgetEditable{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", created.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestBudgetGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	created := createTestBudget(suite.T(), v1.BudgetEditable{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", created.Data.ID), map[string]any{
		"monthlyLimit": 650,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.MonthlyLimit.Equal(decimal.NewFromInt(650)))
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	created := createTestBudget(suite.T(), v1.BudgetEditable{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})

	url := fmt.Sprintf("http://example.com/v1/budgets/%s", created.Data.ID)

	recorder := test.Request(suite.T(), http.MethodDelete, url, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}
