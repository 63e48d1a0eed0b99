// Package reports assembles financial statements from the revenue,
// expense and depreciation data of a user and persists them as report
// snapshots.
package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/lmnpbooks/backend/internal/types"
	"github.com/shopspring/decimal"
)

var ErrUnsupportedReportType = errors.New("this report type is not supported")

// Payload is the typed content of a report. Every report type has its own
// payload struct; the stored JSON is decoded back into the right one via
// Decode.
type Payload interface {
	Type() models.ReportType
}

// PropertySummary identifies a property inside a report payload.
type PropertySummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// CategoryAmounts breaks a total down by category.
type CategoryAmounts struct {
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	Total      decimal.Decimal            `json:"total"`
}

// IncomeStatement is the "compte de résultat": revenues and deductible
// expenses by category, the depreciation charge of the year, and the
// resulting net income.
type IncomeStatement struct {
	FiscalYear  types.FiscalYear  `json:"fiscalYear"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Properties  []PropertySummary `json:"properties"`

	Revenues CategoryAmounts `json:"revenues"`
	Expenses CategoryAmounts `json:"expenses"` // deductible expenses only

	Depreciation decimal.Decimal `json:"depreciation"` // charge of the fiscal year
	NetIncome    decimal.Decimal `json:"netIncome"`    // revenues - expenses - depreciation
}

func (IncomeStatement) Type() models.ReportType {
	return models.ReportTypeIncomeStatement
}

// TypeBalance is one asset class on the balance sheet.
type TypeBalance struct {
	BaseValue               decimal.Decimal `json:"baseValue"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	NetValue                decimal.Decimal `json:"netValue"`
}

func (b TypeBalance) add(other TypeBalance) TypeBalance {
	return TypeBalance{
		BaseValue:               b.BaseValue.Add(other.BaseValue),
		AccumulatedDepreciation: b.AccumulatedDepreciation.Add(other.AccumulatedDepreciation),
		NetValue:                b.NetValue.Add(other.NetValue),
	}
}

// Liabilities is the passive side of the balance sheet.
//
// No loan or payables tracking exists anywhere in the schema, so equity is
// simplified to the total net asset value and loans and payables are
// always zero. This is a known gap, not a modeling decision.
type Liabilities struct {
	Equity   decimal.Decimal `json:"equity"`
	Loans    decimal.Decimal `json:"loans"`
	Payables decimal.Decimal `json:"payables"`
	Total    decimal.Decimal `json:"total"`
}

// BalanceSheet is the "bilan": active assets grouped by category type
// with their accumulated depreciation and net value as of the end of the
// fiscal year.
type BalanceSheet struct {
	FiscalYear  types.FiscalYear  `json:"fiscalYear"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Properties  []PropertySummary `json:"properties"`

	AssetsByType map[models.CategoryType]TypeBalance `json:"assetsByType"`
	TotalAssets  TypeBalance                         `json:"totalAssets"`
	Liabilities  Liabilities                         `json:"liabilities"`
}

func (BalanceSheet) Type() models.ReportType {
	return models.ReportTypeBalanceSheet
}

// Identification is the fixed identification block of the French tax
// forms. Name, address and tax ID are placeholders to be completed by the
// filer.
type Identification struct {
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	TaxID       string    `json:"taxId"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
}

const toBeCompleted = "À compléter"

func identificationFor(year types.FiscalYear) Identification {
	return Identification{
		Name:        toBeCompleted,
		Address:     toBeCompleted,
		TaxID:       toBeCompleted,
		PeriodStart: year.Start(),
		PeriodEnd:   year.End(),
	}
}

// Tax2031 is the déclaration 2031: an income statement projected into the
// tax form layout. It carries no independently computed figures.
type Tax2031 struct {
	FiscalYear      types.FiscalYear `json:"fiscalYear"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	Identification  Identification   `json:"identification"`
	IncomeStatement IncomeStatement  `json:"incomeStatement"`
}

func (Tax2031) Type() models.ReportType {
	return models.ReportTypeTax2031
}

// Tax2033A is the annexe 2033-A: a balance sheet projected into the tax
// form layout.
type Tax2033A struct {
	FiscalYear     types.FiscalYear `json:"fiscalYear"`
	GeneratedAt    time.Time        `json:"generatedAt"`
	Identification Identification   `json:"identification"`
	BalanceSheet   BalanceSheet     `json:"balanceSheet"`
}

func (Tax2033A) Type() models.ReportType {
	return models.ReportTypeTax2033A
}

// Decode rehydrates a stored report payload into its typed form. The
// report type decides the shape; unknown types are rejected.
func Decode(reportType models.ReportType, data json.RawMessage) (Payload, error) {
	switch reportType {
	case models.ReportTypeIncomeStatement:
		var payload IncomeStatement
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("decoding %s report: %w", reportType, err)
		}
		return payload, nil

	case models.ReportTypeBalanceSheet:
		var payload BalanceSheet
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("decoding %s report: %w", reportType, err)
		}
		return payload, nil

	case models.ReportTypeTax2031:
		var payload Tax2031
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("decoding %s report: %w", reportType, err)
		}
		return payload, nil

	case models.ReportTypeTax2033A:
		var payload Tax2033A
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("decoding %s report: %w", reportType, err)
		}
		return payload, nil

	default:
		return nil, ErrUnsupportedReportType
	}
}
