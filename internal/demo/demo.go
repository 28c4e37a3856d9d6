// Package demo provides a sample dataset for trying out the tracker.
package demo

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func date(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

// Expenses returns the demo expense records.
func Expenses() []models.Expense {
	return []models.Expense{
		{Date: date(15), Description: "Grocery Store", Amount: decimal.NewFromFloat(45.67), Category: "Groceries", PaymentMethod: "Credit Card"},
		{Date: date(16), Description: "Gas Station", Amount: decimal.NewFromFloat(35.00), Category: "Transportation", PaymentMethod: "Cash"},
		{Date: date(17), Description: "Restaurant", Amount: decimal.NewFromFloat(28.50), Category: "Dining", PaymentMethod: "Credit Card"},
		{Date: date(18), Description: "Netflix Subscription", Amount: decimal.NewFromFloat(15.99), Category: "Entertainment", PaymentMethod: "Debit Card"},
		{Date: date(19), Description: "Electric Bill", Amount: decimal.NewFromFloat(89.45), Category: "Utilities", PaymentMethod: "Bank Transfer"},
		{Date: date(20), Description: "Coffee Shop", Amount: decimal.NewFromFloat(4.50), Category: "Dining", PaymentMethod: "Cash"},
		{Date: date(21), Description: "Movie Theater", Amount: decimal.NewFromFloat(24.00), Category: "Entertainment", PaymentMethod: "Credit Card"},
		{Date: date(22), Description: "Pharmacy", Amount: decimal.NewFromFloat(12.75), Category: "Healthcare", PaymentMethod: "Credit Card"},
		{Date: date(23), Description: "Clothing Store", Amount: decimal.NewFromFloat(67.89), Category: "Shopping", PaymentMethod: "Credit Card"},
		{Date: date(24), Description: "Gym Membership", Amount: decimal.NewFromFloat(49.99), Category: "Health & Fitness", PaymentMethod: "Debit Card"},
	}
}

// Budgets returns the demo budget records.
func Budgets() []models.Budget {
	limits := []struct {
		category string
		limit    float64
	}{
		{"Groceries", 500},
		{"Transportation", 200},
		{"Dining", 300},
		{"Entertainment", 150},
		{"Utilities", 250},
		{"Healthcare", 100},
		{"Shopping", 200},
		{"Health & Fitness", 100},
	}

	budgets := make([]models.Budget, 0, len(limits))
	for _, l := range limits {
		budgets = append(budgets, models.Budget{
			Category:     l.category,
			MonthlyLimit: decimal.NewFromFloat(l.limit),
		})
	}

	return budgets
}

// Result reports how many resources a Seed call created.
type Result struct {
	Expenses int
	Budgets  int
}

// Seed writes the demo dataset to the database. Seeding is idempotent,
// resources that already exist are kept and not duplicated.
func Seed(db *gorm.DB) (created Result, err error) {
	for _, expense := range Expenses() {
		var count int64
		err = db.Model(&models.Expense{}).
			Where("date = ? AND description = ? AND amount = ?", expense.Date, expense.Description, expense.Amount).
			Count(&count).Error
		if err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		if err = db.Create(&expense).Error; err != nil {
			return created, err
		}
		created.Expenses++
	}

	for _, budget := range Budgets() {
		var count int64
		err = db.Model(&models.Budget{}).Where("category = ?", budget.Category).Count(&count).Error
		if err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		if err = db.Create(&budget).Error; err != nil {
			return created, err
		}
		created.Budgets++
	}

	return created, nil
}
