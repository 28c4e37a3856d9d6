package models

import (
	"gorm.io/gorm"
)

// CategoryRule maps a description pattern to a category.
//
// Rules are evaluated in priority order, the first rule whose pattern
// matches wins. Reordering rules therefore changes categorization results.
type CategoryRule struct {
	DefaultModel
	Priority uint   `json:"priority" example:"1"`           // Evaluation order, lower numbers are evaluated first
	Match    string `json:"match" example:"*grocery*"`      // Glob pattern to match the expense description against, case-insensitive
	Category string `json:"category" example:"Groceries"`   // Category to assign on a match
}

// BeforeSave validates the rule.
func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	if r.Match == "" {
		return ErrMatchRequired
	}

	if r.Category == "" {
		return ErrCategoryRequired
	}

	return nil
}

// CategoryRules returns all category rules in evaluation order.
func CategoryRules(db *gorm.DB) ([]CategoryRule, error) {
	var rules []CategoryRule
	err := db.Order("priority ASC, id ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}
