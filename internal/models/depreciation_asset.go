package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetStatus is the lifecycle state of a depreciation asset.
type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "active"
	AssetStatusDisposed AssetStatus = "disposed"
)

// DepreciationAsset is a capital good whose cost is expensed over several
// fiscal years. An asset always belongs to a property of the same user;
// every scoped query joins properties on both columns so that an asset
// whose property changed hands is unreachable, independent of the foreign
// keys.
type DepreciationAsset struct {
	DefaultModel
	UserID          uuid.UUID            `json:"userId" gorm:"index" example:"d1b8f432-1f56-4a39-9df4-39eaa3c0a9e1"` // ID of the owning user
	PropertyID      uuid.UUID            `json:"propertyId" example:"00f29724-95a8-4ad4-b3b1-c56ad50cf301"`          // ID of the property the asset belongs to
	Property        Property             `json:"-"`                                                                  // The property the asset belongs to
	CategoryID      uuid.UUID            `json:"categoryId" example:"c3b1ea32-4d43-8419-882a-2fc91d71772f"`          // ID of the depreciation category preset
	Category        DepreciationCategory `json:"-"`                                                                  // The category preset
	Name            string               `json:"name" example:"Canapé convertible"`                                  // Name of the asset
	AcquisitionDate time.Time            `json:"acquisitionDate" example:"2020-06-01T00:00:00Z"`                     // Date the asset entered service
	BaseValue       decimal.Decimal      `json:"baseValue" gorm:"type:DECIMAL(20,8)" example:"10000"`                // Depreciable base
	Duration        int                  `json:"duration" example:"5"`                                               // Depreciation duration in years
	Rate            decimal.Decimal      `json:"rate" gorm:"type:DECIMAL(20,8)" example:"20"`                        // Annual rate in percent
	Status          AssetStatus          `json:"status" example:"active" default:"active"`                           // active or disposed
	Notes           string               `json:"notes" example:"" default:""`                                        // Notes about the asset
}

// BeforeSave validates the schedule parameters. Rejecting non-positive
// values here keeps the schedule engine's own check a pure defect guard.
func (a *DepreciationAsset) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Notes = strings.TrimSpace(a.Notes)

	if a.Status == "" {
		a.Status = AssetStatusActive
	}

	if !a.BaseValue.IsPositive() || a.Duration <= 0 || !a.Rate.IsPositive() {
		return ErrAssetValuesInvalid
	}

	if a.AcquisitionDate.IsZero() {
		a.AcquisitionDate = time.Now().In(time.UTC)
	} else {
		a.AcquisitionDate = a.AcquisitionDate.In(time.UTC)
	}

	return nil
}

func (a *DepreciationAsset) AfterFind(_ *gorm.DB) (err error) {
	a.AcquisitionDate = a.AcquisitionDate.In(time.UTC)
	return nil
}

// AfterDelete removes the asset's entries. The entry set is a derived
// cache, so it is hard deleted even though the asset itself is soft
// deleted.
func (a *DepreciationAsset) AfterDelete(tx *gorm.DB) error {
	return tx.Where("asset_id = ?", a.ID).Delete(&DepreciationEntry{}).Error
}

// AssetFilter narrows asset queries. Zero values mean "no filter".
type AssetFilter struct {
	PropertyID   uuid.UUID
	CategoryType CategoryType
	Status       AssetStatus
}

// ownershipJoin restricts an asset query to assets whose property belongs
// to the same user. This is intentionally a join condition, not a foreign
// key check.
func ownershipJoin(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN properties ON properties.id = depreciation_assets.property_id AND properties.user_id = depreciation_assets.user_id AND properties.deleted_at IS NULL")
}

// Assets returns the assets of a user matching the filter, newest
// acquisition first.
func Assets(db *gorm.DB, userID uuid.UUID, filter AssetFilter) ([]DepreciationAsset, error) {
	var assets []DepreciationAsset

	query := ownershipJoin(db.Model(&DepreciationAsset{})).
		Preload("Category").
		Where("depreciation_assets.user_id = ?", userID)

	if filter.PropertyID != uuid.Nil {
		query = query.Where("depreciation_assets.property_id = ?", filter.PropertyID)
	}

	if filter.CategoryType != "" {
		query = query.
			Joins("JOIN depreciation_categories ON depreciation_categories.id = depreciation_assets.category_id").
			Where("depreciation_categories.category_type = ?", filter.CategoryType)
	}

	if filter.Status != "" {
		query = query.Where("depreciation_assets.status = ?", filter.Status)
	}

	err := query.Order("depreciation_assets.acquisition_date DESC").Find(&assets).Error
	if err != nil {
		return nil, err
	}

	return assets, nil
}

// AssetForUser returns the asset with the given ID if it belongs to the
// user and its property still does too.
func AssetForUser(db *gorm.DB, id, userID uuid.UUID) (DepreciationAsset, error) {
	var asset DepreciationAsset

	err := ownershipJoin(db.Model(&DepreciationAsset{})).
		Preload("Category").
		Where("depreciation_assets.id = ? AND depreciation_assets.user_id = ?", id, userID).
		First(&asset).Error
	if err != nil {
		return DepreciationAsset{}, err
	}

	return asset, nil
}
