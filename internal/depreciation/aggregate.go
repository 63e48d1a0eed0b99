package depreciation

import (
	"time"

	"github.com/google/uuid"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/lmnpbooks/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Totals are depreciation figures summed across assets for one fiscal
// year.
type Totals struct {
	Annual      decimal.Decimal `json:"annual"`      // Sum of the yearly charges
	Accumulated decimal.Decimal `json:"accumulated"` // Sum of the cumulative charges
	Remaining   decimal.Decimal `json:"remaining"`   // Sum of the values not yet expensed
	BaseValue   decimal.Decimal `json:"baseValue"`   // Sum of the depreciable bases
}

func (t Totals) add(other Totals) Totals {
	return Totals{
		Annual:      t.Annual.Add(other.Annual),
		Accumulated: t.Accumulated.Add(other.Accumulated),
		Remaining:   t.Remaining.Add(other.Remaining),
		BaseValue:   t.BaseValue.Add(other.BaseValue),
	}
}

// AssetFigures returns the depreciation figures of one asset for a fiscal
// year: the materialized entry when one exists, otherwise an estimate from
// the whole years of service at the end of that fiscal year. The estimate
// keeps listings and reports correct for assets whose schedule has not
// been generated yet.
func AssetFigures(db *gorm.DB, asset models.DepreciationAsset, year types.FiscalYear) (Totals, error) {
	entry, ok, err := models.EntryForAssetYear(db, asset.ID, int(year))
	if err != nil {
		return Totals{}, err
	}

	if ok {
		return Totals{
			Annual:      entry.Amount,
			Accumulated: entry.Accumulated,
			Remaining:   entry.Remaining,
			BaseValue:   asset.BaseValue,
		}, nil
	}

	return estimate(asset, year.End()), nil
}

// estimate approximates the depreciation standing of an asset as of a
// date, using whole years of service times the annual rate, capped at the
// base value.
func estimate(asset models.DepreciationAsset, asOf time.Time) Totals {
	annual := asset.BaseValue.Mul(asset.Rate).Div(oneHundred)

	yearsElapsed := types.WholeYearsSince(asset.AcquisitionDate, asOf)

	accumulated := annual.Mul(decimal.NewFromInt(int64(yearsElapsed)))
	if accumulated.GreaterThan(asset.BaseValue) {
		accumulated = asset.BaseValue
	}

	return Totals{
		Annual:      annual,
		Accumulated: accumulated,
		Remaining:   asset.BaseValue.Sub(accumulated),
		BaseValue:   asset.BaseValue,
	}
}

// TotalForUserYear sums the depreciation figures of all of a user's
// assets for one fiscal year.
func TotalForUserYear(db *gorm.DB, userID uuid.UUID, year types.FiscalYear) (Totals, error) {
	assets, err := models.Assets(db, userID, models.AssetFilter{})
	if err != nil {
		return Totals{}, err
	}

	var totals Totals
	for _, asset := range assets {
		figures, err := AssetFigures(db, asset, year)
		if err != nil {
			return Totals{}, err
		}

		totals = totals.add(figures)
	}

	return totals, nil
}

// ByCategoryType partitions TotalForUserYear across the category types.
// Every type is present in the result, with zero totals when the user has
// no assets of that type. Summing the partitions gives TotalForUserYear
// back exactly.
func ByCategoryType(db *gorm.DB, userID uuid.UUID, year types.FiscalYear) (map[models.CategoryType]Totals, error) {
	assets, err := models.Assets(db, userID, models.AssetFilter{})
	if err != nil {
		return nil, err
	}

	byType := make(map[models.CategoryType]Totals, 3)
	for _, categoryType := range models.CategoryTypes() {
		byType[categoryType] = Totals{}
	}

	for _, asset := range assets {
		figures, err := AssetFigures(db, asset, year)
		if err != nil {
			return nil, err
		}

		byType[asset.Category.CategoryType] = byType[asset.Category.CategoryType].add(figures)
	}

	return byType, nil
}

// Progress reports the whole years of service of an asset as of a date
// and how far through its schedule it is, as a percentage clamped to 100.
// Used by listings to show schedule completion.
func Progress(asset models.DepreciationAsset, asOf time.Time) (yearsElapsed int, percent int) {
	yearsElapsed = types.WholeYearsSince(asset.AcquisitionDate, asOf)

	if asset.Duration <= 0 {
		return yearsElapsed, 0
	}

	percent = int(decimal.NewFromInt(int64(yearsElapsed)).
		Div(decimal.NewFromInt(int64(asset.Duration))).
		Mul(oneHundred).
		Round(0).
		IntPart())
	if percent > 100 {
		percent = 100
	}

	return yearsElapsed, percent
}
