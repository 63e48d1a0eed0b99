package v1_test

import (
	"fmt"
	"net/http"
	"time"

	google_uuid "github.com/google/uuid"
	"github.com/shopspring/decimal"

	v1 "github.com/lmnpbooks/backend/internal/controllers/v1"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/lmnpbooks/backend/internal/test"
	"github.com/lmnpbooks/backend/internal/uuid"
)

func (suite *TestSuiteEnv) createTestAssetRequest(userID google_uuid.UUID, create v1.AssetCreate) v1.AssetResponse {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/assets", create, test.UserHeader(userID.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var asset v1.AssetResponse
	test.DecodeResponse(suite.T(), &r, &asset)

	return asset
}

func (suite *TestSuiteEnv) testAssetCreate(userID google_uuid.UUID) v1.AssetCreate {
	property := suite.createTestProperty(userID)
	category := suite.categoryByName("Mobilier")

	return v1.AssetCreate{
		AssetEditable: v1.AssetEditable{
			PropertyID:      uuid.UUID{UUID: property.ID},
			CategoryID:      uuid.UUID{UUID: category.ID},
			Name:            "Canapé convertible",
			AcquisitionDate: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
			BaseValue:       decimal.NewFromInt(10000),
			Duration:        5,
			Rate:            decimal.NewFromInt(20),
		},
	}
}

func (suite *TestSuiteEnv) TestAssetsRequireUser() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/assets", "")
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &r)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/assets", "", test.UserHeader("NotAUUID"))
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &r)
}

func (suite *TestSuiteEnv) TestAssetLifecycle() {
	user := google_uuid.New()

	create := suite.testAssetCreate(user)
	create.GenerateEntries = true
	asset := suite.createTestAssetRequest(user, create)

	suite.Assert().Equal("Canapé convertible", asset.Data.Name)
	suite.Assert().Equal(models.AssetStatusActive, asset.Data.Status)

	// List contains the asset
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/assets", "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var list v1.AssetListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)

	// The schedule was generated with the asset
	path := fmt.Sprintf("http://example.com/v1/assets/%s/entries", asset.Data.ID)
	r = test.Request(suite.T(), http.MethodGet, path, "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var entries v1.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &entries)
	suite.Require().Len(entries.Data, 5)
	suite.Assert().Equal(2020, entries.Data[0].Year)

	// Rename
	path = fmt.Sprintf("http://example.com/v1/assets/%s", asset.Data.ID)
	r = test.Request(suite.T(), http.MethodPatch, path, map[string]string{"name": "Canapé d'angle"}, test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.AssetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Canapé d'angle", updated.Data.Name)
	suite.Assert().Equal(asset.Data.Duration, updated.Data.Duration, "unnamed fields must keep their values")

	// Delete
	r = test.Request(suite.T(), http.MethodDelete, path, "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), http.MethodGet, path, "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteEnv) TestCreateAssetChecksProperty() {
	user := google_uuid.New()

	create := suite.testAssetCreate(user)

	// Someone else's property is as invalid as a missing one
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/assets", create, test.UserHeader(google_uuid.NewString()))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteEnv) TestRegenerateEntries() {
	user := google_uuid.New()
	asset := suite.createTestAssetRequest(user, suite.testAssetCreate(user))

	path := fmt.Sprintf("http://example.com/v1/assets/%s/entries", asset.Data.ID)
	r := test.Request(suite.T(), http.MethodPost, path, "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var entries v1.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &entries)
	suite.Assert().Len(entries.Data, 5)
}

func (suite *TestSuiteEnv) TestAssetsInvalidRequests() {
	user := google_uuid.New()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/assets?type=vehicles", "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/assets/NotAUUID", "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/assets/%s", google_uuid.New()), "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
