package models

import (
	"time"

	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spending record.
//
// The category may be empty on creation, it is then filled in by the
// categorizer. Once a category is set, it is never overwritten automatically.
type Expense struct {
	DefaultModel
	Date          time.Time       `json:"date" example:"2024-01-15T00:00:00Z"`
	Description   string          `json:"description" example:"Grocery Store"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"45.67"`
	Category      string          `json:"category" example:"Groceries"`
	PaymentMethod string          `json:"paymentMethod" example:"Credit Card"`
	ImportHash    string          `json:"importHash,omitempty" gorm:"index"` // The SHA256 hash of a unique combination of values to use in duplicate detection for imports
}

// BeforeSave validates the expense and sets the timezone for the Date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Date.IsZero() {
		return ErrDateRequired
	}

	if e.Description == "" {
		return ErrDescriptionRequired
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// Expenses returns all expenses, ordered by date. When month is non-nil,
// only expenses within that month are returned.
func Expenses(db *gorm.DB, month *types.Month) ([]Expense, error) {
	query := db.Order("date ASC, id ASC")

	if month != nil {
		query = query.Where("date >= date(?) AND date < date(?)", *month, month.AddDate(0, 1))
	}

	var expenses []Expense
	err := query.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
