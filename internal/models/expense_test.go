package models_test

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDate(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

func (suite *TestSuiteStandard) TestExpenseBeforeSave() {
	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{
			"valid",
			models.Expense{Date: testDate(15), Description: "Grocery Store", Amount: decimal.NewFromFloat(45.67)},
			nil,
		},
		{
			"missing date",
			models.Expense{Description: "Grocery Store", Amount: decimal.NewFromFloat(45.67)},
			models.ErrDateRequired,
		},
		{
			"missing description",
			models.Expense{Date: testDate(15), Amount: decimal.NewFromFloat(45.67)},
			models.ErrDescriptionRequired,
		},
		{
			"negative amount",
			models.Expense{Date: testDate(15), Description: "Refund", Amount: decimal.NewFromFloat(-10)},
			models.ErrAmountNegative,
		},
	}

	for _, tt := range tests {
		expense := tt.expense
		err := expense.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err, "test case: %s", tt.name)
	}
}

func (suite *TestSuiteStandard) TestExpenseDateUTC() {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.Nil(suite.T(), err)

	expense := suite.createTestExpense(models.Expense{
		Date:        time.Date(2024, time.January, 15, 10, 0, 0, 0, berlin),
		Description: "Grocery Store",
		Amount:      decimal.NewFromFloat(45.67),
	})

	assert.Equal(suite.T(), time.UTC, expense.Date.Location())

	var loaded models.Expense
	require.Nil(suite.T(), models.DB.First(&loaded, "id = ?", expense.ID).Error)
	assert.Equal(suite.T(), time.UTC, loaded.Date.Location())
}

func (suite *TestSuiteStandard) TestExpensesOrder() {
	suite.createTestExpense(models.Expense{Date: testDate(20), Description: "Later", Amount: decimal.NewFromInt(1)})
	suite.createTestExpense(models.Expense{Date: testDate(15), Description: "Earlier", Amount: decimal.NewFromInt(1)})

	expenses, err := models.Expenses(models.DB, nil)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), expenses, 2)

	assert.Equal(suite.T(), "Earlier", expenses[0].Description)
	assert.Equal(suite.T(), "Later", expenses[1].Description)
}

func (suite *TestSuiteStandard) TestExpensesMonthFilter() {
	suite.createTestExpense(models.Expense{Date: testDate(15), Description: "January", Amount: decimal.NewFromInt(1)})
	suite.createTestExpense(models.Expense{Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Description: "February", Amount: decimal.NewFromInt(1)})

	month := types.NewMonth(2024, time.January)
	expenses, err := models.Expenses(models.DB, &month)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), "January", expenses[0].Description)
}

func (suite *TestSuiteStandard) TestExpensesEmpty() {
	expenses, err := models.Expenses(models.DB, nil)
	require.Nil(suite.T(), err)
	assert.Empty(suite.T(), expenses)
}

func (suite *TestSuiteStandard) TestExpenseDBClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.Expense{Date: testDate(15), Description: "Grocery Store", Amount: decimal.NewFromInt(1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
