// Package analysis computes budget state from categorized expenses.
//
// All functions are pure: they operate on the expense and budget slices
// passed in and never touch storage. Repeated analysis of identical input
// yields identical output, including ordering.
package analysis

import (
	"strings"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Unbudgeted is the bucket for expense categories without a budget.
const Unbudgeted = "Unbudgeted"

// approachingThreshold is the utilization percentage above which an
// approaching-limit alert is generated.
var approachingThreshold = decimal.NewFromInt(80)

// Status is the analysis result for one budgeted category.
type Status struct {
	Category    string          `json:"category" example:"Groceries"`
	Spent       decimal.Decimal `json:"spent" example:"235"`
	Limit       decimal.Decimal `json:"limit" example:"200"`
	Remaining   decimal.Decimal `json:"remaining" example:"-35"`   // Limit minus Spent, negative when overspent
	Overspent   bool            `json:"overspent" example:"true"`
	Overspend   decimal.Decimal `json:"overspend" example:"35"`    // Positive amount above the limit, zero otherwise
	Utilization decimal.Decimal `json:"utilization" example:"117.5"` // Spent as a percentage of Limit, 0 for a zero limit
}

// CategorySpend is the spending total for a category without a budget.
type CategorySpend struct {
	Category string          `json:"category" example:"Travel"`
	Spent    decimal.Decimal `json:"spent" example:"120.50"`
}

// Report is the result of one analysis run.
type Report struct {
	TotalSpent   decimal.Decimal `json:"totalSpent" example:"383.74"`
	StartDate    *time.Time      `json:"startDate"` // Date of the earliest expense, null for an empty expense set
	EndDate      *time.Time      `json:"endDate"`   // Date of the latest expense, null for an empty expense set
	AverageDaily decimal.Decimal `json:"averageDaily" example:"42.64"`
	Statuses     []Status        `json:"statuses"`
	Unbudgeted   []CategorySpend `json:"unbudgeted"` // Spending in categories without a budget, never matched against a limit
	Alerts       []string        `json:"alerts"`
}

// Analyze aggregates expenses by category and compares the totals against
// the budget limits.
//
// Expenses whose category has no budget are reported in the Unbudgeted list.
// Budgets without expenses get a status with zero spending. An empty expense
// set is valid input and yields all-zero spending, never an error.
func Analyze(expenses []models.Expense, budgets []models.Budget) Report {
	report := Report{
		TotalSpent:   decimal.Zero,
		AverageDaily: decimal.Zero,
		Statuses:     make([]Status, 0, len(budgets)),
		Unbudgeted:   make([]CategorySpend, 0),
		Alerts:       make([]string, 0),
	}

	// Sum amounts per category. Negative amounts (refunds) are summed
	// as-is, validating amount >= 0 is the ingestion layer's job.
	spentByCategory := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		category := expense.Category
		if category == "" {
			category = Unbudgeted
		}

		spentByCategory[category] = spentByCategory[category].Add(expense.Amount)
		report.TotalSpent = report.TotalSpent.Add(expense.Amount)

		date := expense.Date
		if report.StartDate == nil || date.Before(*report.StartDate) {
			report.StartDate = &date
		}
		if report.EndDate == nil || date.After(*report.EndDate) {
			report.EndDate = &date
		}
	}

	if report.StartDate != nil {
		days := int64(report.EndDate.Sub(*report.StartDate).Hours()/24) + 1
		report.AverageDaily = report.TotalSpent.Div(decimal.NewFromInt(days)).Round(2)
	}

	budgeted := make(map[string]bool, len(budgets))
	for _, budget := range budgets {
		budgeted[budget.Category] = true

		status := Status{
			Category:  budget.Category,
			Spent:     spentByCategory[budget.Category],
			Limit:     budget.MonthlyLimit,
			Overspend: decimal.Zero,
		}
		status.Remaining = status.Limit.Sub(status.Spent)
		status.Overspent = status.Spent.GreaterThan(status.Limit)
		if status.Overspent {
			status.Overspend = status.Spent.Sub(status.Limit)
		}
		if status.Limit.IsPositive() {
			status.Utilization = status.Spent.Div(status.Limit).Mul(decimal.NewFromInt(100)).Round(1)
		}

		report.Statuses = append(report.Statuses, status)
	}

	sortStatuses(report.Statuses, budgets)

	for category, spent := range spentByCategory {
		if !budgeted[category] {
			report.Unbudgeted = append(report.Unbudgeted, CategorySpend{Category: category, Spent: spent})
		}
	}
	slices.SortFunc(report.Unbudgeted, func(a, b CategorySpend) int {
		return strings.Compare(a.Category, b.Category)
	})

	report.Alerts = alerts(report.Statuses)

	return report
}

// sortStatuses orders statuses deterministically: budgets with an explicit
// priority come first in priority order, the rest follow in lexical order
// by category name.
func sortStatuses(statuses []Status, budgets []models.Budget) {
	priority := make(map[string]uint, len(budgets))
	for _, budget := range budgets {
		priority[budget.Category] = budget.Priority
	}

	slices.SortFunc(statuses, func(a, b Status) int {
		pa, pb := priority[a.Category], priority[b.Category]
		switch {
		case pa != 0 && pb == 0:
			return -1
		case pa == 0 && pb != 0:
			return 1
		case pa != pb:
			if pa < pb {
				return -1
			}
			return 1
		}

		return strings.Compare(a.Category, b.Category)
	})
}
