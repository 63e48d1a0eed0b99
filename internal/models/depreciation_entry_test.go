package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmnpbooks/backend/internal/models"
)

func (suite *TestSuiteStandard) entry(assetID uuid.UUID, year int, amount int64) models.DepreciationEntry {
	return models.DepreciationEntry{
		AssetID:     assetID,
		Year:        year,
		Amount:      decimal.NewFromInt(amount),
		Accumulated: decimal.NewFromInt(amount),
		Remaining:   decimal.Zero,
	}
}

func (suite *TestSuiteStandard) TestEntryUniquePerAssetYear() {
	user := uuid.New()
	property := suite.createTestProperty(user)
	asset := suite.createTestAsset(user, property.ID)

	first := suite.entry(asset.ID, 2020, 2000)
	suite.Require().Nil(models.DB.Create(&first).Error)

	duplicate := suite.entry(asset.ID, 2020, 3000)
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrEntryYearExists)
}

func (suite *TestSuiteStandard) TestEntriesOrderedByYear() {
	user := uuid.New()
	property := suite.createTestProperty(user)
	asset := suite.createTestAsset(user, property.ID)

	for _, year := range []int{2022, 2020, 2021} {
		entry := suite.entry(asset.ID, year, 2000)
		suite.Require().Nil(models.DB.Create(&entry).Error)
	}

	entries, err := models.EntriesForAsset(models.DB, asset.ID)
	suite.Require().Nil(err)
	suite.Require().Len(entries, 3)

	suite.Assert().Equal(2020, entries[0].Year)
	suite.Assert().Equal(2021, entries[1].Year)
	suite.Assert().Equal(2022, entries[2].Year)
}

func (suite *TestSuiteStandard) TestEntryForAssetYear() {
	user := uuid.New()
	property := suite.createTestProperty(user)
	asset := suite.createTestAsset(user, property.ID)

	entry := suite.entry(asset.ID, 2021, 2000)
	suite.Require().Nil(models.DB.Create(&entry).Error)

	found, ok, err := models.EntryForAssetYear(models.DB, asset.ID, 2021)
	suite.Require().Nil(err)
	suite.Require().True(ok)
	suite.Assert().True(found.Amount.Equal(decimal.NewFromInt(2000)))

	_, ok, err = models.EntryForAssetYear(models.DB, asset.ID, 1999)
	suite.Require().Nil(err)
	suite.Assert().False(ok)
}
