package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lmnpbooks/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a cost booked against a property.
//
// Deductible controls whether the expense counts against the taxable
// result. Non-deductible expenses are kept for completeness but skipped by
// the income statement.
type Expense struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"index" example:"d1b8f432-1f56-4a39-9df4-39eaa3c0a9e1"`   // ID of the owning user
	PropertyID uuid.UUID       `json:"propertyId" example:"00f29724-95a8-4ad4-b3b1-c56ad50cf301"`            // ID of the property the expense belongs to
	Property   Property        `json:"-"`                                                                    // The property the expense belongs to
	Category   string          `json:"category" example:"insurance"`                                         // Expense category, e.g. property_tax, insurance, management_fees
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"120.40"`                    // Amount paid
	Date       time.Time       `json:"date" gorm:"column:expense_date;index" example:"2023-02-10T00:00:00Z"` // Date the expense was paid
	Deductible bool            `json:"deductible" example:"true" default:"true"`                             // Does the expense reduce the taxable result?
	Notes      string          `json:"notes" example:"" default:""`                                          // Notes about the expense
}

// BeforeSave sets the timezone for the Date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) AfterFind(_ *gorm.DB) (err error) {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// ExpensesForYear returns all expenses of a user for a fiscal year, newest
// first. Non-deductible expenses are included, callers filter where needed.
func ExpensesForYear(db *gorm.DB, userID uuid.UUID, year types.FiscalYear) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Where("expenses.user_id = ?", userID).
		Where("expenses.expense_date >= ? AND expenses.expense_date < ?", year.Start(), (year + 1).Start()).
		Order("expenses.expense_date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// ExpenseYears returns the distinct fiscal years a user has expenses in.
func ExpenseYears(db *gorm.DB, userID uuid.UUID) ([]types.FiscalYear, error) {
	return factYears(db, &Expense{}, "expense_date", userID)
}
