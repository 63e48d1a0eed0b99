package v1_test

import (
	"net/http"

	google_uuid "github.com/google/uuid"
	"github.com/shopspring/decimal"

	v1 "github.com/lmnpbooks/backend/internal/controllers/v1"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/lmnpbooks/backend/internal/test"
)

func (suite *TestSuiteEnv) TestGetTotals() {
	user := google_uuid.New()

	create := suite.testAssetCreate(user)
	create.GenerateEntries = true
	suite.createTestAssetRequest(user, create)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/depreciation/totals?year=2022", "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Annual.Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(response.Data.Accumulated.Equal(decimal.NewFromInt(6000)))
	suite.Assert().True(response.Data.Remaining.Equal(decimal.NewFromInt(4000)))
}

func (suite *TestSuiteEnv) TestGetTotalsByType() {
	user := google_uuid.New()

	create := suite.testAssetCreate(user)
	create.GenerateEntries = true
	suite.createTestAssetRequest(user, create)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/depreciation/by-type?year=2022", "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TotalsByTypeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().True(response.Data[models.CategoryTypeFurniture].Annual.Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(response.Data[models.CategoryTypeProperty].Annual.IsZero())
}

func (suite *TestSuiteEnv) TestGetTotalsInvalidYear() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/depreciation/totals?year=now", "", test.UserHeader(google_uuid.NewString()))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
