package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmnpbooks/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryPresetsSeeded() {
	categories, err := models.DepreciationCategories(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 6)

	// Ordered by type, then name
	suite.Assert().Equal(models.CategoryTypeFurniture, categories[0].CategoryType)
	suite.Assert().Equal(models.CategoryTypeImprovement, categories[2].CategoryType)
	suite.Assert().Equal(models.CategoryTypeProperty, categories[4].CategoryType)

	mobilier := suite.categoryByName("Mobilier")
	suite.Assert().Equal(7, mobilier.DefaultDuration)
	suite.Assert().True(mobilier.Rate.Equal(decimal.RequireFromString("14.29")))
}

func (suite *TestSuiteStandard) TestCategorySeedingIsIdempotent() {
	// Running the migration again must not duplicate the presets
	suite.Require().Nil(models.Migrate(models.DB))

	categories, err := models.DepreciationCategories(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 6)
}

func (suite *TestSuiteStandard) TestCategoryByID() {
	mobilier := suite.categoryByName("Mobilier")

	category, err := models.DepreciationCategoryByID(models.DB, mobilier.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Mobilier", category.Name)

	_, err = models.DepreciationCategoryByID(models.DB, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
