package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestCategoryRuleBeforeSave() {
	tests := []struct {
		name string
		rule models.CategoryRule
		err  error
	}{
		{"valid", models.CategoryRule{Match: "grocery", Category: "Groceries"}, nil},
		{"missing match", models.CategoryRule{Category: "Groceries"}, models.ErrMatchRequired},
		{"missing category", models.CategoryRule{Match: "grocery"}, models.ErrCategoryRequired},
	}

	for _, tt := range tests {
		rule := tt.rule
		err := rule.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err, "test case: %s", tt.name)
	}
}

func (suite *TestSuiteStandard) TestCategoryRulesOrder() {
	suite.createTestCategoryRule(models.CategoryRule{Priority: 2, Match: "station", Category: "Utilities"})
	suite.createTestCategoryRule(models.CategoryRule{Priority: 1, Match: "gas", Category: "Transportation"})

	rules, err := models.CategoryRules(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rules, 2)

	assert.Equal(suite.T(), "gas", rules[0].Match)
	assert.Equal(suite.T(), "station", rules[1].Match)
}

// Rules with equal priority keep a stable order across queries.
func (suite *TestSuiteStandard) TestCategoryRulesEqualPriority() {
	suite.createTestCategoryRule(models.CategoryRule{Match: "gas", Category: "Transportation"})
	suite.createTestCategoryRule(models.CategoryRule{Match: "station", Category: "Utilities"})

	first, err := models.CategoryRules(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), first, 2)

	for i := 0; i < 5; i++ {
		rules, err := models.CategoryRules(models.DB)
		require.Nil(suite.T(), err)
		require.Len(suite.T(), rules, 2)

		assert.Equal(suite.T(), first[0].ID, rules[0].ID)
		assert.Equal(suite.T(), first[1].ID, rules[1].ID)
	}
}
