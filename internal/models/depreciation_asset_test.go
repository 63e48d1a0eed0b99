package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmnpbooks/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAssetValuesValidated() {
	user := uuid.New()
	property := suite.createTestProperty(user)
	category := suite.categoryByName("Mobilier")

	tests := []struct {
		name      string
		baseValue decimal.Decimal
		duration  int
		rate      decimal.Decimal
	}{
		{"zero base value", decimal.Zero, 5, decimal.NewFromInt(20)},
		{"negative base value", decimal.NewFromInt(-1), 5, decimal.NewFromInt(20)},
		{"zero duration", decimal.NewFromInt(1000), 0, decimal.NewFromInt(20)},
		{"negative rate", decimal.NewFromInt(1000), 5, decimal.NewFromInt(-20)},
	}

	for _, tt := range tests {
		asset := models.DepreciationAsset{
			UserID:          user,
			PropertyID:      property.ID,
			CategoryID:      category.ID,
			Name:            tt.name,
			AcquisitionDate: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
			BaseValue:       tt.baseValue,
			Duration:        tt.duration,
			Rate:            tt.rate,
		}

		err := models.DB.Create(&asset).Error
		suite.Assert().ErrorIs(err, models.ErrAssetValuesInvalid, "case %q", tt.name)
	}
}

func (suite *TestSuiteStandard) TestAssetDefaults() {
	user := uuid.New()
	property := suite.createTestProperty(user)
	category := suite.categoryByName("Mobilier")

	asset := models.DepreciationAsset{
		UserID:          user,
		PropertyID:      property.ID,
		CategoryID:      category.ID,
		Name:            "  Lave-linge  ",
		AcquisitionDate: time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC),
		BaseValue:       decimal.NewFromInt(600),
		Duration:        5,
		Rate:            decimal.NewFromInt(20),
	}
	suite.Require().Nil(models.DB.Create(&asset).Error)

	suite.Assert().Equal("Lave-linge", asset.Name)
	suite.Assert().Equal(models.AssetStatusActive, asset.Status)
}

func (suite *TestSuiteStandard) TestAssetsScopedToUser() {
	owner := uuid.New()
	other := uuid.New()

	property := suite.createTestProperty(owner)
	asset := suite.createTestAsset(owner, property.ID)

	assets, err := models.Assets(models.DB, owner, models.AssetFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(assets, 1)

	assets, err = models.Assets(models.DB, other, models.AssetFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(assets, 0)

	_, err = models.AssetForUser(models.DB, asset.ID, other)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAssetsFilter() {
	user := uuid.New()
	property := suite.createTestProperty(user)
	second := suite.createTestProperty(user)

	furniture := suite.createTestAsset(user, property.ID)

	building := models.DepreciationAsset{
		UserID:          user,
		PropertyID:      second.ID,
		CategoryID:      suite.categoryByName("Bâtiment").ID,
		Name:            "Gros œuvre",
		AcquisitionDate: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		BaseValue:       decimal.NewFromInt(200000),
		Duration:        25,
		Rate:            decimal.NewFromInt(4),
		Status:          models.AssetStatusDisposed,
	}
	suite.Require().Nil(models.DB.Create(&building).Error)

	tests := []struct {
		name   string
		filter models.AssetFilter
		want   []uuid.UUID
	}{
		{"no filter", models.AssetFilter{}, []uuid.UUID{furniture.ID, building.ID}},
		{"by property", models.AssetFilter{PropertyID: second.ID}, []uuid.UUID{building.ID}},
		{"by type", models.AssetFilter{CategoryType: models.CategoryTypeFurniture}, []uuid.UUID{furniture.ID}},
		{"by status", models.AssetFilter{Status: models.AssetStatusDisposed}, []uuid.UUID{building.ID}},
	}

	for _, tt := range tests {
		assets, err := models.Assets(models.DB, user, tt.filter)
		suite.Require().Nil(err, "case %q", tt.name)

		ids := make([]uuid.UUID, 0, len(assets))
		for _, a := range assets {
			ids = append(ids, a.ID)
		}

		suite.Assert().ElementsMatch(tt.want, ids, "case %q", tt.name)
	}
}

func (suite *TestSuiteStandard) TestAssetDeleteRemovesEntries() {
	user := uuid.New()
	property := suite.createTestProperty(user)
	asset := suite.createTestAsset(user, property.ID)

	entry := models.DepreciationEntry{
		AssetID:     asset.ID,
		Year:        2020,
		Amount:      decimal.NewFromInt(2000),
		Accumulated: decimal.NewFromInt(2000),
		Remaining:   decimal.NewFromInt(8000),
	}
	suite.Require().Nil(models.DB.Create(&entry).Error)

	suite.Require().Nil(models.DB.Delete(&asset).Error)

	entries, err := models.EntriesForAsset(models.DB, asset.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(entries, 0)
}
