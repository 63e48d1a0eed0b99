package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property represents a rental property operated under the LMNP regime.
//
// Properties are the anchor for all financial facts: revenues, expenses and
// depreciable assets all reference a property owned by the same user.
type Property struct {
	DefaultModel
	UserID          uuid.UUID       `json:"userId" gorm:"index" example:"d1b8f432-1f56-4a39-9df4-39eaa3c0a9e1"` // ID of the owning user
	Name            string          `json:"name" example:"Studio Bastille"`                                     // Name of the property
	Address         string          `json:"address" example:"12 rue de la Roquette, 75011 Paris"`               // Postal address
	AcquisitionDate time.Time       `json:"acquisitionDate" example:"2019-03-15T00:00:00Z"`                     // Date the property was acquired
	PurchasePrice   decimal.Decimal `json:"purchasePrice" gorm:"type:DECIMAL(20,8)" example:"185000"`           // Purchase price
	Notes           string          `json:"notes" example:"" default:""`                                        // Notes about the property
}

func (p *Property) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	p.Notes = strings.TrimSpace(p.Notes)

	return nil
}

// Properties returns all properties of a user, newest acquisition first.
func Properties(db *gorm.DB, userID uuid.UUID) ([]Property, error) {
	var properties []Property

	err := db.
		Where(&Property{UserID: userID}).
		Order("acquisition_date DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}

	return properties, nil
}

// PropertyForUser returns the property with the given ID if it belongs to
// the user.
func PropertyForUser(db *gorm.DB, id, userID uuid.UUID) (Property, error) {
	var property Property

	err := db.
		Where("properties.id = ? AND properties.user_id = ?", id, userID).
		First(&property).Error
	if err != nil {
		return Property{}, err
	}

	return property, nil
}
