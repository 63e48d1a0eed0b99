// Package depreciation implements the straight-line depreciation schedule
// engine: computing, persisting and aggregating the yearly entry sets of
// depreciable assets.
package depreciation

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var oneHundred = decimal.NewFromInt(100)

// YearFigures are the computed values of one schedule year.
type YearFigures struct {
	Annual      decimal.Decimal // Charge of the year
	Accumulated decimal.Decimal // Cumulative charge through the year
	Remaining   decimal.Decimal // Base value not yet expensed
}

// ComputeYearEntry computes the straight-line depreciation figures for one
// year of a schedule. yearIndex is 1-based.
//
// The annual charge is baseValue * rate / 100. In the final year the
// charge is overridden with whatever exactly exhausts the base value, so
// that the schedule closes at accumulated == baseValue and remaining == 0
// regardless of how the rate rounds.
func ComputeYearEntry(baseValue, rate decimal.Decimal, yearIndex, duration int) (YearFigures, error) {
	if !baseValue.IsPositive() || !rate.IsPositive() || duration < 1 || yearIndex < 1 {
		return YearFigures{}, ErrInvalidScheduleParameters
	}

	annual := baseValue.Mul(rate).Div(oneHundred)

	years := yearIndex
	if years > duration {
		years = duration
	}

	accumulated := annual.Mul(decimal.NewFromInt(int64(years)))
	remaining := baseValue.Sub(accumulated)

	// Final year: plug the rounding drift of the per-year rate so the
	// base value is expensed exactly.
	if yearIndex == duration {
		throughPreviousYear := annual.Mul(decimal.NewFromInt(int64(duration - 1)))
		annual = baseValue.Sub(throughPreviousYear)
		accumulated = baseValue
		remaining = decimal.Zero
	}

	return YearFigures{
		Annual:      annual,
		Accumulated: accumulated,
		Remaining:   remaining,
	}, nil
}

// GenerateSchedule computes the full schedule of an asset and replaces its
// persisted entry set. The first entry is tagged with the acquisition
// calendar year, the last with acquisition year + duration - 1.
//
// Replacement happens in a single transaction, so concurrent readers
// either see the previous complete set or the new one, never an empty or
// partial one. Regeneration is idempotent: repeating it for an unchanged
// asset yields the same entries, which also makes retrying a failed call
// safe.
func GenerateSchedule(db *gorm.DB, userID, assetID uuid.UUID) ([]models.DepreciationEntry, error) {
	asset, err := findAsset(db, userID, assetID)
	if err != nil {
		return nil, err
	}

	return regenerate(db, asset)
}

// Entries returns the full persisted schedule of an asset, oldest year
// first. An asset without entries gets its schedule generated on demand
// instead of returning an empty set.
func Entries(db *gorm.DB, userID, assetID uuid.UUID) ([]models.DepreciationEntry, error) {
	asset, err := findAsset(db, userID, assetID)
	if err != nil {
		return nil, err
	}

	entries, err := models.EntriesForAsset(db, asset.ID)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return regenerate(db, asset)
	}

	return entries, nil
}

// EntryForYear returns the persisted entry of an asset for one fiscal
// year. Unlike Entries, this is a pure read: no generation happens, a
// missing entry is reported through the bool.
func EntryForYear(db *gorm.DB, userID, assetID uuid.UUID, year int) (models.DepreciationEntry, bool, error) {
	asset, err := findAsset(db, userID, assetID)
	if err != nil {
		return models.DepreciationEntry{}, false, err
	}

	return models.EntryForAssetYear(db, asset.ID, year)
}

func findAsset(db *gorm.DB, userID, assetID uuid.UUID) (models.DepreciationAsset, error) {
	asset, err := models.AssetForUser(db, assetID, userID)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.DepreciationAsset{}, ErrAssetNotFound
		}

		return models.DepreciationAsset{}, err
	}

	return asset, nil
}

func regenerate(db *gorm.DB, asset models.DepreciationAsset) ([]models.DepreciationEntry, error) {
	if !asset.BaseValue.IsPositive() || asset.Duration <= 0 || !asset.Rate.IsPositive() {
		return nil, ErrInvalidScheduleParameters
	}

	acquisitionYear := asset.AcquisitionDate.UTC().Year()

	entries := make([]models.DepreciationEntry, 0, asset.Duration)
	for yearIndex := 1; yearIndex <= asset.Duration; yearIndex++ {
		figures, err := ComputeYearEntry(asset.BaseValue, asset.Rate, yearIndex, asset.Duration)
		if err != nil {
			return nil, err
		}

		entries = append(entries, models.DepreciationEntry{
			AssetID:     asset.ID,
			Year:        acquisitionYear + yearIndex - 1,
			Amount:      figures.Annual,
			Accumulated: figures.Accumulated,
			Remaining:   figures.Remaining,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("asset_id = ?", asset.ID).Delete(&models.DepreciationEntry{}).Error
		if err != nil {
			return err
		}

		return tx.Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
