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
	"github.com/lmnpbooks/backend/internal/types"
)

func (suite *TestSuiteEnv) seedRevenue(userID google_uuid.UUID, year int) {
	property := suite.createTestProperty(userID)

	revenue := models.Revenue{
		UserID:     userID,
		PropertyID: property.ID,
		Category:   "loyer",
		Amount:     decimal.NewFromInt(800),
		Date:       time.Date(year, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.Require().Nil(models.DB.Create(&revenue).Error)
}

func (suite *TestSuiteEnv) TestReportRoundTrip() {
	user := google_uuid.New()
	suite.seedRevenue(user, 2023)

	create := v1.ReportCreate{ReportType: models.ReportTypeIncomeStatement, FiscalYear: 2023}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reports", create, test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var created v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &created)

	suite.Assert().Equal(models.ReportStatusCompleted, created.Data.Status)
	suite.Assert().Equal(types.FiscalYear(2023), created.Data.FiscalYear)

	// Fetching decodes the payload
	path := fmt.Sprintf("http://example.com/v1/reports/%s", created.Data.ID)
	r = test.Request(suite.T(), http.MethodGet, path, "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var detail struct {
		Data struct {
			ReportType models.ReportType `json:"reportType"`
			Payload    struct {
				NetIncome decimal.Decimal `json:"netIncome"`
			} `json:"payload"`
		} `json:"data"`
	}
	test.DecodeResponse(suite.T(), &r, &detail)

	suite.Assert().Equal(models.ReportTypeIncomeStatement, detail.Data.ReportType)
	suite.Assert().True(detail.Data.Payload.NetIncome.Equal(decimal.NewFromInt(800)))
}

func (suite *TestSuiteEnv) TestReportExistingIsReturned() {
	user := google_uuid.New()
	suite.seedRevenue(user, 2023)

	create := v1.ReportCreate{ReportType: models.ReportTypeIncomeStatement, FiscalYear: 2023}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reports", create, test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var first v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &first)

	// Without force, the existing report is returned unchanged
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reports", create, test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var second v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &second)
	suite.Assert().Equal(first.Data.ID, second.Data.ID)

	// With force, it is replaced
	create.Force = true
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reports", create, test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var replaced v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &replaced)
	suite.Assert().NotEqual(first.Data.ID, replaced.Data.ID)
}

func (suite *TestSuiteEnv) TestReportUnsupportedType() {
	user := google_uuid.New()
	suite.seedRevenue(user, 2023)

	create := v1.ReportCreate{ReportType: models.ReportTypeCustom, FiscalYear: 2023}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reports", create, test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteEnv) TestReportDelete() {
	user := google_uuid.New()
	suite.seedRevenue(user, 2023)

	create := v1.ReportCreate{ReportType: models.ReportTypeBalanceSheet, FiscalYear: 2023}
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reports", create, test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var created v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &created)

	// Another user must not be able to delete someone's report
	path := fmt.Sprintf("http://example.com/v1/reports/%s", created.Data.ID)
	r = test.Request(suite.T(), http.MethodDelete, path, "", test.UserHeader(google_uuid.NewString()))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)

	r = test.Request(suite.T(), http.MethodDelete, path, "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), http.MethodGet, path, "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteEnv) TestReportFiscalYears() {
	user := google_uuid.New()
	suite.seedRevenue(user, 2021)
	suite.seedRevenue(user, 2023)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/years", "", test.UserHeader(user.String()))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.FiscalYearListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal([]types.FiscalYear{2021, 2023}, response.Data)
}
