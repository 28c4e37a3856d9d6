// Package importer parses expense and budget CSV files into model resources.
//
// The importer owns input validation: rows with unparseable dates, malformed
// or negative amounts are rejected here so that the analysis engine can
// assume well-typed input.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fintrack/backend/internal/importer/helpers"
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrNoHeader       = errors.New("the CSV file does not contain a header row")
	ErrMissingColumns = errors.New("missing required columns")
	ErrAmountNegative = errors.New("the amount must not be negative")
)

// expense CSV columns. Only date, description and amount are required.
const (
	columnDate          = "date"
	columnDescription   = "description"
	columnAmount        = "amount"
	columnCategory      = "category"
	columnPaymentMethod = "payment_method"
)

// defaultPaymentMethod is used when the CSV has no payment method column.
const defaultPaymentMethod = "Unknown"

// ParseExpenses parses an expense CSV file.
//
// The header row determines the column order. Categories may be blank, they
// are then filled in by the categorizer after parsing. Each expense gets an
// import hash over date, description and amount for duplicate detection.
func ParseExpenses(f io.Reader) ([]models.Expense, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	columns, err := readHeader(reader, []string{columnDate, columnDescription, columnAmount})
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		date, err := parseDate(field(record, columns, columnDate))
		if err != nil {
			return nil, csvReadError(reader, fmt.Errorf("could not parse date: %w", err))
		}

		rawAmount := field(record, columns, columnAmount)
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return nil, csvReadError(reader, fmt.Errorf("could not parse amount %q to a decimal", rawAmount))
		}

		if amount.IsNegative() {
			return nil, csvReadError(reader, ErrAmountNegative)
		}

		paymentMethod := field(record, columns, columnPaymentMethod)
		if paymentMethod == "" {
			paymentMethod = defaultPaymentMethod
		}

		expense := models.Expense{
			Date:          date,
			Description:   field(record, columns, columnDescription),
			Amount:        amount,
			Category:      field(record, columns, columnCategory),
			PaymentMethod: paymentMethod,
			ImportHash: helpers.Sha256String(strings.Join([]string{
				date.Format("2006-01-02"),
				field(record, columns, columnDescription),
				amount.String(),
			}, ",")),
		}

		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// readHeader reads the header row and returns the column index per
// normalized column name. The required columns must all be present.
func readHeader(reader *csv.Reader, required []string) (map[string]int, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeColumn(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return columns, nil
}

// normalizeColumn maps header spellings like "Payment Method" to the
// canonical snake_case column names.
func normalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// field returns the trimmed value of a named column, or "" if the column
// does not exist in the file.
func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}

// parseDate accepts RFC3339 full-date and timestamp formats.
func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err == nil {
		return date, nil
	}

	return time.Parse(time.RFC3339, s)
}

// csvReadError returns an error including the line of the input the error
// occurred in.
func csvReadError(r *csv.Reader, err error) error {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
