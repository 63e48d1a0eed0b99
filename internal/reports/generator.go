package reports

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lmnpbooks/backend/internal/depreciation"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/lmnpbooks/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Generate composes the report of the given type for one user and fiscal
// year and persists it. A previous report for the same (user, type, year)
// is replaced; composing and storing happen in one transaction, so a
// failed generation leaves the prior snapshot intact.
//
// Generation always produces a completed report.
func Generate(db *gorm.DB, userID uuid.UUID, year types.FiscalYear, reportType models.ReportType) (models.Report, error) {
	var report models.Report

	err := db.Transaction(func(tx *gorm.DB) error {
		payload, err := compose(tx, userID, year, reportType)
		if err != nil {
			return err
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding %s report: %w", reportType, err)
		}

		// Replace the previous snapshot, if any
		err = tx.
			Where("user_id = ? AND report_type = ? AND fiscal_year = ?", userID, reportType, year).
			Delete(&models.Report{}).Error
		if err != nil {
			return err
		}

		report = models.Report{
			UserID:     userID,
			ReportType: reportType,
			FiscalYear: year,
			Status:     models.ReportStatusCompleted,
			Data:       data,
		}

		return tx.Create(&report).Error
	})
	if err != nil {
		return models.Report{}, err
	}

	return report, nil
}

func compose(db *gorm.DB, userID uuid.UUID, year types.FiscalYear, reportType models.ReportType) (Payload, error) {
	switch reportType {
	case models.ReportTypeIncomeStatement:
		return composeIncomeStatement(db, userID, year)

	case models.ReportTypeBalanceSheet:
		return composeBalanceSheet(db, userID, year)

	case models.ReportTypeTax2031:
		statement, err := composeIncomeStatement(db, userID, year)
		if err != nil {
			return nil, err
		}

		return Tax2031{
			FiscalYear:      year,
			GeneratedAt:     statement.GeneratedAt,
			Identification:  identificationFor(year),
			IncomeStatement: statement,
		}, nil

	case models.ReportTypeTax2033A:
		sheet, err := composeBalanceSheet(db, userID, year)
		if err != nil {
			return nil, err
		}

		return Tax2033A{
			FiscalYear:     year,
			GeneratedAt:    sheet.GeneratedAt,
			Identification: identificationFor(year),
			BalanceSheet:   sheet,
		}, nil

	default:
		return nil, ErrUnsupportedReportType
	}
}

func composeIncomeStatement(db *gorm.DB, userID uuid.UUID, year types.FiscalYear) (IncomeStatement, error) {
	properties, err := models.Properties(db, userID)
	if err != nil {
		return IncomeStatement{}, err
	}

	revenues, err := models.RevenuesForYear(db, userID, year)
	if err != nil {
		return IncomeStatement{}, err
	}

	revenueAmounts := CategoryAmounts{ByCategory: make(map[string]decimal.Decimal)}
	for _, revenue := range revenues {
		revenueAmounts.ByCategory[revenue.Category] = revenueAmounts.ByCategory[revenue.Category].Add(revenue.Amount)
		revenueAmounts.Total = revenueAmounts.Total.Add(revenue.Amount)
	}

	expenses, err := models.ExpensesForYear(db, userID, year)
	if err != nil {
		return IncomeStatement{}, err
	}

	expenseAmounts := CategoryAmounts{ByCategory: make(map[string]decimal.Decimal)}
	for _, expense := range expenses {
		// Non-deductible expenses never reduce the taxable result
		if !expense.Deductible {
			continue
		}

		expenseAmounts.ByCategory[expense.Category] = expenseAmounts.ByCategory[expense.Category].Add(expense.Amount)
		expenseAmounts.Total = expenseAmounts.Total.Add(expense.Amount)
	}

	totals, err := depreciation.TotalForUserYear(db, userID, year)
	if err != nil {
		return IncomeStatement{}, err
	}

	return IncomeStatement{
		FiscalYear:   year,
		GeneratedAt:  time.Now().In(time.UTC),
		Properties:   propertySummaries(properties),
		Revenues:     revenueAmounts,
		Expenses:     expenseAmounts,
		Depreciation: totals.Annual,
		NetIncome:    revenueAmounts.Total.Sub(expenseAmounts.Total).Sub(totals.Annual),
	}, nil
}

func composeBalanceSheet(db *gorm.DB, userID uuid.UUID, year types.FiscalYear) (BalanceSheet, error) {
	properties, err := models.Properties(db, userID)
	if err != nil {
		return BalanceSheet{}, err
	}

	// Disposed assets are off the books
	assets, err := models.Assets(db, userID, models.AssetFilter{Status: models.AssetStatusActive})
	if err != nil {
		return BalanceSheet{}, err
	}

	byType := make(map[models.CategoryType]TypeBalance, 3)
	for _, categoryType := range models.CategoryTypes() {
		byType[categoryType] = TypeBalance{}
	}

	var total TypeBalance
	for _, asset := range assets {
		figures, err := depreciation.AssetFigures(db, asset, year)
		if err != nil {
			return BalanceSheet{}, err
		}

		balance := TypeBalance{
			BaseValue:               figures.BaseValue,
			AccumulatedDepreciation: figures.Accumulated,
			NetValue:                figures.Remaining,
		}

		byType[asset.Category.CategoryType] = byType[asset.Category.CategoryType].add(balance)
		total = total.add(balance)
	}

	return BalanceSheet{
		FiscalYear:   year,
		GeneratedAt:  time.Now().In(time.UTC),
		Properties:   propertySummaries(properties),
		AssetsByType: byType,
		TotalAssets:  total,
		Liabilities: Liabilities{
			// Equity balances the net asset value, loans and
			// payables are not tracked anywhere in the schema
			Equity: total.NetValue,
			Total:  total.NetValue,
		},
	}, nil
}

func propertySummaries(properties []models.Property) []PropertySummary {
	summaries := make([]PropertySummary, 0, len(properties))
	for _, property := range properties {
		summaries = append(summaries, PropertySummary{
			ID:      property.ID,
			Name:    property.Name,
			Address: property.Address,
		})
	}

	return summaries
}
