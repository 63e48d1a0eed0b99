package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmnpbooks/backend/internal/models"
)

func (suite *TestSuiteStandard) TestPropertiesOrdered() {
	user := uuid.New()

	older := models.Property{
		UserID:          user,
		Name:            "Studio Bordeaux",
		AcquisitionDate: time.Date(2015, 2, 1, 0, 0, 0, 0, time.UTC),
		PurchasePrice:   decimal.NewFromInt(90000),
	}
	suite.Require().Nil(models.DB.Create(&older).Error)

	newer := suite.createTestProperty(user)

	properties, err := models.Properties(models.DB, user)
	suite.Require().Nil(err)
	suite.Require().Len(properties, 2)

	// Newest acquisition first
	suite.Assert().Equal(newer.ID, properties[0].ID)
	suite.Assert().Equal(older.ID, properties[1].ID)
}

func (suite *TestSuiteStandard) TestPropertyForUser() {
	owner := uuid.New()
	property := suite.createTestProperty(owner)

	found, err := models.PropertyForUser(models.DB, property.ID, owner)
	suite.Require().Nil(err)
	suite.Assert().Equal(property.ID, found.ID)

	// Another user gets the same answer as for a property that does not exist
	_, err = models.PropertyForUser(models.DB, property.ID, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestPropertyTrimsStrings() {
	property := models.Property{
		UserID:          uuid.New(),
		Name:            "  T2 Nantes ",
		Address:         " 4 rue Crébillon ",
		AcquisitionDate: time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC),
		PurchasePrice:   decimal.NewFromInt(180000),
	}
	suite.Require().Nil(models.DB.Create(&property).Error)

	suite.Assert().Equal("T2 Nantes", property.Name)
	suite.Assert().Equal("4 rue Crébillon", property.Address)
}
