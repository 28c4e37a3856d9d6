package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

// budget CSV columns. Budget files may also carry current_spent and
// remaining columns, those are derived values and ignored on import since
// the analyzer recomputes them on every run.
const (
	columnBudgetCategory = "category"
	columnMonthlyLimit   = "monthly_limit"
)

// ParseBudgets parses a budget CSV file.
func ParseBudgets(f io.Reader) ([]models.Budget, error) {
	reader := csv.NewReader(f)
	reader.ReuseRecord = true

	columns, err := readHeader(reader, []string{columnBudgetCategory, columnMonthlyLimit})
	if err != nil {
		return nil, err
	}

	var budgets []models.Budget
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		rawLimit := field(record, columns, columnMonthlyLimit)
		limit, err := decimal.NewFromString(rawLimit)
		if err != nil {
			return nil, csvReadError(reader, fmt.Errorf("could not parse monthly limit %q to a decimal", rawLimit))
		}

		if limit.IsNegative() {
			return nil, csvReadError(reader, models.ErrMonthlyLimitNegative)
		}

		budgets = append(budgets, models.Budget{
			Category:     field(record, columns, columnBudgetCategory),
			MonthlyLimit: limit,
		})
	}

	return budgets, nil
}
