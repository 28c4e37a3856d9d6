package analysis

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats alert amounts with thousands separators.
var printer = message.NewPrinter(language.English)

// alerts generates overspend and approaching-limit messages for budgeted
// categories. Budgets with a zero limit only alert once actually overspent,
// and without a percentage since utilization is undefined for them.
func alerts(statuses []Status) []string {
	messages := make([]string, 0)

	for _, status := range statuses {
		if status.Overspent {
			if status.Limit.IsPositive() {
				messages = append(messages, printer.Sprintf(
					"%s: overspent by $%.2f (%.1f%% of budget)",
					status.Category, status.Overspend.InexactFloat64(), status.Utilization.InexactFloat64(),
				))
			} else {
				messages = append(messages, printer.Sprintf(
					"%s: overspent by $%.2f",
					status.Category, status.Overspend.InexactFloat64(),
				))
			}
			continue
		}

		if status.Utilization.GreaterThan(approachingThreshold) {
			messages = append(messages, printer.Sprintf(
				"%s: approaching budget limit (%.1f%% used)",
				status.Category, status.Utilization.InexactFloat64(),
			))
		}
	}

	return messages
}

// Summary is the aggregated state over all budgeted categories.
type Summary struct {
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"1800"`
	TotalSpent     decimal.Decimal `json:"totalSpent" example:"383.74"`
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"1416.26"`
	Utilization    decimal.Decimal `json:"utilization" example:"21.3"` // Percentage of the total budget spent
	Categories     int             `json:"categories" example:"8"`     // Number of budgeted categories
}

// Summarize computes the budget summary from per-category statuses.
func Summarize(statuses []Status) Summary {
	summary := Summary{
		TotalBudget:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
		Categories:     len(statuses),
	}

	for _, status := range statuses {
		summary.TotalBudget = summary.TotalBudget.Add(status.Limit)
		summary.TotalSpent = summary.TotalSpent.Add(status.Spent)
		summary.TotalRemaining = summary.TotalRemaining.Add(status.Remaining)
	}

	if summary.TotalBudget.IsPositive() {
		summary.Utilization = summary.TotalSpent.Div(summary.TotalBudget).Mul(decimal.NewFromInt(100)).Round(1)
	}

	return summary
}
