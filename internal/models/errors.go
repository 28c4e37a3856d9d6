package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative          = errors.New("the amount of an expense must not be negative")
	ErrDateRequired            = errors.New("the date of an expense must be set")
	ErrDescriptionRequired     = errors.New("the description of an expense must be set")
	ErrMatchRequired           = errors.New("the match of a category rule must be set")
	ErrCategoryRequired        = errors.New("the category must be set")
	ErrMonthlyLimitNegative    = errors.New("the monthly limit of a budget must not be negative")
	ErrBudgetCategoryNotUnique = errors.New("budget categories must be unique, there already is a budget for this category")
)
