package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents the monthly spending limit for a single category.
//
// Spent and remaining amounts are not stored, they are derived by the
// analyzer from the expenses of the analyzed period.
type Budget struct {
	DefaultModel
	Category     string          `json:"category" gorm:"uniqueIndex" example:"Groceries"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" gorm:"type:DECIMAL(20,8)" example:"500"`
	Priority     uint            `json:"priority" example:"0"` // Optional report ordering, 0 sorts last by category name
	Note         string          `json:"note,omitempty" example:"Includes the farmers market"`
}

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Category == "" {
		return ErrCategoryRequired
	}

	if b.MonthlyLimit.IsNegative() {
		return ErrMonthlyLimitNegative
	}

	return nil
}

// Budgets returns all budgets, ordered by category name.
func Budgets(db *gorm.DB) ([]Budget, error) {
	var budgets []Budget
	err := db.Order("category ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}
