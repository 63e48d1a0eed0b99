package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmnpbooks/backend/internal/httputil"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/lmnpbooks/backend/internal/reports"
	"github.com/lmnpbooks/backend/internal/types"
)

type ReportListResponse struct {
	Data []models.Report `json:"data"` // List of reports
}

type ReportResponse struct {
	Data models.Report `json:"data"` // The report
}

type ReportDetailResponse struct {
	Data ReportDetail `json:"data"` // The report with its decoded payload
}

// ReportDetail is a report with its payload decoded into the shape
// matching its type.
type ReportDetail struct {
	models.Report
	Payload reports.Payload `json:"payload" swaggertype:"object"` // Typed payload
}

type FiscalYearListResponse struct {
	Data []types.FiscalYear `json:"data"` // Years with recorded activity, ascending
}

// ReportCreate is the body for generating a report.
type ReportCreate struct {
	ReportType models.ReportType `json:"reportType" example:"income_statement"`
	FiscalYear types.FiscalYear  `json:"fiscalYear" example:"2023"`
	Force      bool              `json:"force" example:"false" default:"false"` // Regenerate even if a report already exists
}

// ReportQueryFilter are the query string filters for report lists.
type ReportQueryFilter struct {
	Year types.FiscalYear  `form:"year"` // By fiscal year
	Type models.ReportType `form:"type"` // By report type
}

// RegisterReportRoutes registers the routes for fiscal reports.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetReports)
		r.POST("", CreateReport)
	}
	{
		r.OPTIONS("/years", httputil.OptionsGet)
		r.GET("/years", GetFiscalYears)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetDelete)
		r.GET("/:id", GetReport)
		r.DELETE("/:id", DeleteReport)
	}
}

// @Summary		List reports
// @Description	Returns the reports of the authenticated user
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			year	query	string	false	"Filter by fiscal year"
// @Param			type	query	string	false	"Filter by report type"
// @Router			/v1/reports [get]
func GetReports(c *gin.Context) {
	var query ReportQueryFilter
	if err := c.ShouldBind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidYear.Error()})
		return
	}

	list, err := models.Reports(models.DB, userID(c), models.ReportFilter{
		FiscalYear: query.Year,
		ReportType: query.Type,
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReportListResponse{Data: list})
}

// @Summary		Generate report
// @Description	Generates a report for a fiscal year. If one of the same type and year already exists it is returned unchanged unless force is set, in which case it is replaced.
// @Tags			Reports
// @Accept			json
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Success		201	{object}	ReportResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			report	body	ReportCreate	true	"Report"
// @Router			/v1/reports [post]
func CreateReport(c *gin.Context) {
	var data ReportCreate
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if data.FiscalYear == 0 {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidYear.Error()})
		return
	}

	user := userID(c)

	// The existence check is advisory, generation itself replaces any
	// report of the same type and year atomically.
	existing, found, err := models.ReportByTypeYear(models.DB, user, data.ReportType, data.FiscalYear)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if found && !data.Force {
		c.JSON(http.StatusOK, ReportResponse{Data: existing})
		return
	}

	report, err := reports.Generate(models.DB, user, data.FiscalYear, data.ReportType)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ReportResponse{Data: report})
}

// @Summary		Get report
// @Description	Returns a single report with its payload decoded
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportDetailResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/reports/{id} [get]
func GetReport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	report, err := models.ReportForUser(models.DB, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	payload, err := reports.Decode(report.ReportType, report.Data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReportDetailResponse{Data: ReportDetail{Report: report, Payload: payload}})
}

// @Summary		Delete report
// @Description	Deletes a report
// @Tags			Reports
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/reports/{id} [delete]
func DeleteReport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	report, err := models.ReportForUser(models.DB, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&report).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		List fiscal years
// @Description	Returns every fiscal year with recorded revenues, expenses or reports
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	FiscalYearListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/reports/years [get]
func GetFiscalYears(c *gin.Context) {
	years, err := models.FiscalYears(models.DB, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, FiscalYearListResponse{Data: years})
}
