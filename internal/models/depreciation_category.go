package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryType groups depreciation categories for reporting.
type CategoryType string

const (
	CategoryTypeProperty    CategoryType = "property"
	CategoryTypeFurniture   CategoryType = "furniture"
	CategoryTypeImprovement CategoryType = "improvement"
)

// CategoryTypes returns all category types in reporting order.
func CategoryTypes() []CategoryType {
	return []CategoryType{CategoryTypeProperty, CategoryTypeFurniture, CategoryTypeImprovement}
}

// Valid reports whether the category type is one of the known values.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeProperty || t == CategoryTypeFurniture || t == CategoryTypeImprovement
}

// DepreciationCategory is a preset for depreciable assets: a default
// duration and rate for a class of goods. Reference data, seeded on
// migration and never modified by the engine.
type DepreciationCategory struct {
	DefaultModel
	Name            string          `json:"name" example:"Mobilier"`                              // Name of the category
	DefaultDuration int             `json:"defaultDuration" example:"7"`                          // Default depreciation duration in years
	Rate            decimal.Decimal `json:"rate" gorm:"type:DECIMAL(20,8)" example:"14.29"`       // Annual rate in percent, typically 100/duration
	CategoryType    CategoryType    `json:"categoryType" gorm:"index" example:"furniture"`        // Reporting group: property, furniture or improvement
}

// DepreciationCategories returns all categories, grouped by type.
func DepreciationCategories(db *gorm.DB) ([]DepreciationCategory, error) {
	var categories []DepreciationCategory

	err := db.Order("category_type, name").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// DepreciationCategoryByID returns a single category.
func DepreciationCategoryByID(db *gorm.DB, id uuid.UUID) (DepreciationCategory, error) {
	var category DepreciationCategory

	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		return DepreciationCategory{}, err
	}

	return category, nil
}

// seedDepreciationCategories installs the standard LMNP presets. It only
// runs on an empty table so user databases are never touched twice.
func seedDepreciationCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&DepreciationCategory{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	presets := []DepreciationCategory{
		{Name: "Bâtiment", DefaultDuration: 25, Rate: decimal.NewFromInt(4), CategoryType: CategoryTypeProperty},
		{Name: "Gros œuvre", DefaultDuration: 50, Rate: decimal.NewFromInt(2), CategoryType: CategoryTypeProperty},
		{Name: "Mobilier", DefaultDuration: 7, Rate: decimal.RequireFromString("14.29"), CategoryType: CategoryTypeFurniture},
		{Name: "Électroménager", DefaultDuration: 5, Rate: decimal.NewFromInt(20), CategoryType: CategoryTypeFurniture},
		{Name: "Travaux de rénovation", DefaultDuration: 10, Rate: decimal.NewFromInt(10), CategoryType: CategoryTypeImprovement},
		{Name: "Agencements", DefaultDuration: 15, Rate: decimal.RequireFromString("6.67"), CategoryType: CategoryTypeImprovement},
	}

	return db.Create(&presets).Error
}
