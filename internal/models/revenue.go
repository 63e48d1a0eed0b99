package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lmnpbooks/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Revenue represents rental income booked against a property.
type Revenue struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"index" example:"d1b8f432-1f56-4a39-9df4-39eaa3c0a9e1"`     // ID of the owning user
	PropertyID uuid.UUID       `json:"propertyId" example:"00f29724-95a8-4ad4-b3b1-c56ad50cf301"`              // ID of the property the revenue belongs to
	Property   Property        `json:"-"`                                                                      // The property the revenue belongs to
	Category   string          `json:"category" example:"rent"`                                                // Revenue category, e.g. rent, deposit, subsidy
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"650"`                         // Amount received
	Date       time.Time       `json:"date" gorm:"column:revenue_date;index" example:"2023-05-02T00:00:00Z"`   // Date the revenue was received
	Notes      string          `json:"notes" example:"" default:""`                                            // Notes about the revenue
}

// BeforeSave sets the timezone for the Date to UTC.
func (r *Revenue) BeforeSave(_ *gorm.DB) (err error) {
	if r.Date.IsZero() {
		r.Date = time.Now().In(time.UTC)
	} else {
		r.Date = r.Date.In(time.UTC)
	}

	return nil
}

func (r *Revenue) AfterFind(_ *gorm.DB) (err error) {
	r.Date = r.Date.In(time.UTC)
	return nil
}

// RevenuesForYear returns all revenues of a user for a fiscal year, newest
// first.
func RevenuesForYear(db *gorm.DB, userID uuid.UUID, year types.FiscalYear) ([]Revenue, error) {
	var revenues []Revenue

	err := db.
		Where("revenues.user_id = ?", userID).
		Where("revenues.revenue_date >= ? AND revenues.revenue_date < ?", year.Start(), (year + 1).Start()).
		Order("revenues.revenue_date DESC").
		Find(&revenues).Error
	if err != nil {
		return nil, err
	}

	return revenues, nil
}

// RevenueYears returns the distinct fiscal years a user has revenues in.
func RevenueYears(db *gorm.DB, userID uuid.UUID) ([]types.FiscalYear, error) {
	return factYears(db, &Revenue{}, "revenue_date", userID)
}

// factYears collects the distinct calendar years of a date column, scoped
// to one user. Used to offer fiscal year choices for reports.
func factYears(db *gorm.DB, model any, column string, userID uuid.UUID) ([]types.FiscalYear, error) {
	var raw []string

	err := db.
		Model(model).
		Where("user_id = ?", userID).
		Distinct("strftime('%Y', " + column + ")").
		Pluck("strftime('%Y', "+column+")", &raw).Error
	if err != nil {
		return nil, err
	}

	years := make([]types.FiscalYear, 0, len(raw))
	for _, r := range raw {
		year, err := types.ParseFiscalYear(r)
		if err != nil {
			continue
		}
		years = append(years, year)
	}

	return years, nil
}
