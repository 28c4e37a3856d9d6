package analysis

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Trend directions.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// DailyTotal is the spending total for a single day.
type DailyTotal struct {
	Date   time.Time       `json:"date" example:"2024-01-15T00:00:00Z"`
	Amount decimal.Decimal `json:"amount" example:"45.67"`
}

// TrendReport describes how spending develops over time.
type TrendReport struct {
	Daily     []DailyTotal `json:"daily"`
	Direction string       `json:"direction" example:"stable"` // increasing, decreasing or stable
	PeakDay   *DailyTotal  `json:"peakDay"`                    // Day with the highest total, null for an empty expense set
}

// Trend aggregates expenses into daily totals and classifies the direction
// by comparing the mean of the first half against the second half. Changes
// within a ten percent band count as stable.
func Trend(expenses []models.Expense) TrendReport {
	report := TrendReport{
		Daily:     make([]DailyTotal, 0),
		Direction: TrendStable,
	}

	if len(expenses) == 0 {
		return report
	}

	totals := make(map[time.Time]decimal.Decimal)
	for _, expense := range expenses {
		day := expense.Date.In(time.UTC).Truncate(24 * time.Hour)
		totals[day] = totals[day].Add(expense.Amount)
	}

	for day, amount := range totals {
		report.Daily = append(report.Daily, DailyTotal{Date: day, Amount: amount})
	}
	slices.SortFunc(report.Daily, func(a, b DailyTotal) int {
		return a.Date.Compare(b.Date)
	})

	if len(report.Daily) > 1 {
		half := len(report.Daily) / 2
		first := mean(report.Daily[:half])
		second := mean(report.Daily[half:])

		switch {
		case second.GreaterThan(first.Mul(decimal.NewFromFloat(1.1))):
			report.Direction = TrendIncreasing
		case second.LessThan(first.Mul(decimal.NewFromFloat(0.9))):
			report.Direction = TrendDecreasing
		}
	}

	// Peak day, first occurrence wins on equal amounts
	peak := report.Daily[0]
	for _, day := range report.Daily[1:] {
		if day.Amount.GreaterThan(peak.Amount) {
			peak = day
		}
	}
	report.PeakDay = &peak

	return report
}

func mean(days []DailyTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, day := range days {
		sum = sum.Add(day.Amount)
	}

	return sum.Div(decimal.NewFromInt(int64(len(days))))
}
