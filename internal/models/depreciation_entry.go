package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepreciationEntry is one fiscal year of an asset's depreciation
// schedule.
//
// The full entry set of an asset is a cache derived from the asset's
// parameters: it is regenerated wholesale and never patched entry by
// entry. For a complete schedule, Accumulated is non-decreasing, Remaining
// is non-increasing, and the final year closes exactly at Accumulated ==
// BaseValue and Remaining == 0.
type DepreciationEntry struct {
	DerivedModel
	AssetID     uuid.UUID         `json:"assetId" gorm:"uniqueIndex:entry_asset_year" example:"916eacf1-0c37-4eb3-9bd0-ee27d2f235aa"` // ID of the asset the entry belongs to
	Asset       DepreciationAsset `json:"-"`                                                                                          // The asset the entry belongs to
	Year        int               `json:"year" gorm:"uniqueIndex:entry_asset_year" example:"2023"`                                    // Calendar year of the charge
	Amount      decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2000"`                                            // Depreciation charge of the year
	Accumulated decimal.Decimal   `json:"accumulated" gorm:"type:DECIMAL(20,8)" example:"6000"`                                       // Cumulative charge through this year
	Remaining   decimal.Decimal   `json:"remaining" gorm:"type:DECIMAL(20,8)" example:"4000"`                                         // BaseValue minus Accumulated
}

// EntriesForAsset returns all persisted entries of an asset, oldest year
// first. No lazy generation happens here, see depreciation.Entries for
// that.
func EntriesForAsset(db *gorm.DB, assetID uuid.UUID) ([]DepreciationEntry, error) {
	var entries []DepreciationEntry

	err := db.
		Where("depreciation_entries.asset_id = ?", assetID).
		Order("depreciation_entries.year").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// EntryForAssetYear returns the entry of an asset for one year. The bool
// reports whether the entry is materialized.
func EntryForAssetYear(db *gorm.DB, assetID uuid.UUID, year int) (DepreciationEntry, bool, error) {
	var entries []DepreciationEntry

	err := db.
		Where("depreciation_entries.asset_id = ? AND depreciation_entries.year = ?", assetID, year).
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return DepreciationEntry{}, false, err
	}

	if len(entries) == 0 {
		return DepreciationEntry{}, false, nil
	}

	return entries[0], true, nil
}
