package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetBeforeSave() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{"valid", models.Budget{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)}, nil},
		{"zero limit", models.Budget{Category: "Misc"}, nil},
		{"missing category", models.Budget{MonthlyLimit: decimal.NewFromInt(500)}, models.ErrCategoryRequired},
		{"negative limit", models.Budget{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(-500)}, models.ErrMonthlyLimitNegative},
	}

	for _, tt := range tests {
		budget := tt.budget
		err := budget.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err, "test case: %s", tt.name)
	}
}

func (suite *TestSuiteStandard) TestBudgetCategoryUnique() {
	suite.createTestBudget(models.Budget{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})

	err := models.DB.Create(&models.Budget{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(300)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetCategoryNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetsOrder() {
	suite.createTestBudget(models.Budget{Category: "Utilities", MonthlyLimit: decimal.NewFromInt(250)})
	suite.createTestBudget(models.Budget{Category: "Dining", MonthlyLimit: decimal.NewFromInt(300)})
	suite.createTestBudget(models.Budget{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(500)})

	budgets, err := models.Budgets(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), budgets, 3)

	assert.Equal(suite.T(), "Dining", budgets[0].Category)
	assert.Equal(suite.T(), "Groceries", budgets[1].Category)
	assert.Equal(suite.T(), "Utilities", budgets[2].Category)
}

func (suite *TestSuiteStandard) TestBudgetNotFound() {
	var budget models.Budget
	err := models.DB.First(&budget, "category = ?", "Nonexistent").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no budget matching your query", err.Error())
}
