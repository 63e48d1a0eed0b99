package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lmnpbooks/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ReportType discriminates the payload stored in a report.
type ReportType string

const (
	ReportTypeIncomeStatement ReportType = "income_statement"
	ReportTypeTax2031         ReportType = "tax_2031"
	ReportTypeTax2033A        ReportType = "tax_2033A"
	ReportTypeBalanceSheet    ReportType = "balance_sheet"
	ReportTypeCustom          ReportType = "custom"
)

// ReportStatus is the lifecycle state of a report.
//
// Generation always produces completed reports. Draft is reserved for
// partial saves, which do not exist yet.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusCompleted ReportStatus = "completed"
)

// Report is a generated snapshot of a financial statement. One report
// exists per user, type and fiscal year; regeneration overwrites it.
type Report struct {
	DerivedModel
	UserID     uuid.UUID        `json:"userId" gorm:"uniqueIndex:report_user_type_year" example:"d1b8f432-1f56-4a39-9df4-39eaa3c0a9e1"` // ID of the owning user
	ReportType ReportType       `json:"reportType" gorm:"uniqueIndex:report_user_type_year" example:"income_statement"`                 // Type of the report
	FiscalYear types.FiscalYear `json:"fiscalYear" gorm:"uniqueIndex:report_user_type_year" example:"2023"`                             // Fiscal year the report covers
	Status     ReportStatus     `json:"status" example:"completed"`                                                                     // draft or completed
	Data       json.RawMessage  `json:"data" gorm:"type:TEXT" swaggertype:"object"`                                                     // Payload, shape depends on ReportType
}

// ReportFilter narrows report queries. Zero values mean "no filter".
type ReportFilter struct {
	FiscalYear types.FiscalYear
	ReportType ReportType
}

// Reports returns the reports of a user matching the filter, newest first.
func Reports(db *gorm.DB, userID uuid.UUID, filter ReportFilter) ([]Report, error) {
	var reports []Report

	query := db.Where("reports.user_id = ?", userID)

	if filter.FiscalYear != 0 {
		query = query.Where("reports.fiscal_year = ?", filter.FiscalYear)
	}

	if filter.ReportType != "" {
		query = query.Where("reports.report_type = ?", filter.ReportType)
	}

	err := query.Order("reports.created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}

	return reports, nil
}

// ReportForUser returns the report with the given ID if it belongs to the
// user.
func ReportForUser(db *gorm.DB, id, userID uuid.UUID) (Report, error) {
	var report Report

	err := db.
		Where("reports.id = ? AND reports.user_id = ?", id, userID).
		First(&report).Error
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

// ReportByTypeYear returns the report of one type for one fiscal year. The
// bool reports whether it exists. Callers use this as an advisory check
// before generation.
func ReportByTypeYear(db *gorm.DB, userID uuid.UUID, reportType ReportType, year types.FiscalYear) (Report, bool, error) {
	var reports []Report

	err := db.
		Where("reports.user_id = ? AND reports.report_type = ? AND reports.fiscal_year = ?", userID, reportType, year).
		Limit(1).
		Find(&reports).Error
	if err != nil {
		return Report{}, false, err
	}

	if len(reports) == 0 {
		return Report{}, false, nil
	}

	return reports[0], true, nil
}

// FiscalYears returns every year a user has financial activity or reports
// in, sorted ascending without duplicates.
func FiscalYears(db *gorm.DB, userID uuid.UUID) ([]types.FiscalYear, error) {
	revenueYears, err := RevenueYears(db, userID)
	if err != nil {
		return nil, err
	}

	expenseYears, err := ExpenseYears(db, userID)
	if err != nil {
		return nil, err
	}

	var reportYears []types.FiscalYear
	err = db.
		Model(&Report{}).
		Where("user_id = ?", userID).
		Distinct("fiscal_year").
		Pluck("fiscal_year", &reportYears).Error
	if err != nil {
		return nil, err
	}

	years := append(revenueYears, expenseYears...)
	years = append(years, reportYears...)

	slices.Sort(years)
	years = slices.Compact(years)

	return years, nil
}
