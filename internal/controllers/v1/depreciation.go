package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lmnpbooks/backend/internal/depreciation"
	"github.com/lmnpbooks/backend/internal/httputil"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/lmnpbooks/backend/internal/types"
)

type TotalsResponse struct {
	Data depreciation.Totals `json:"data"` // Aggregated figures across all assets
}

type TotalsByTypeResponse struct {
	Data map[models.CategoryType]depreciation.Totals `json:"data"` // Aggregated figures per category type
}

// RegisterDepreciationRoutes registers the routes for aggregated
// depreciation figures.
func RegisterDepreciationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/totals", httputil.OptionsGet)
		r.GET("/totals", GetTotals)
	}
	{
		r.OPTIONS("/by-type", httputil.OptionsGet)
		r.GET("/by-type", GetTotalsByType)
	}
}

// fiscalYearQuery reads the year query parameter, defaulting to the
// current fiscal year.
func fiscalYearQuery(c *gin.Context) (types.FiscalYear, error) {
	raw := c.Query("year")
	if raw == "" {
		return types.FiscalYearOf(time.Now()), nil
	}

	return types.ParseFiscalYear(raw)
}

// @Summary		Depreciation totals
// @Description	Returns annual, accumulated and remaining depreciation across all assets of the user for a fiscal year
// @Tags			Depreciation
// @Produce		json
// @Success		200	{object}	TotalsResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			year	query	string	false	"Fiscal year, defaults to the current year"
// @Router			/v1/depreciation/totals [get]
func GetTotals(c *gin.Context) {
	year, err := fiscalYearQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	totals, err := depreciation.TotalForUserYear(models.DB, userID(c), year)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TotalsResponse{Data: totals})
}

// @Summary		Depreciation totals by category type
// @Description	Returns depreciation figures partitioned by category type for a fiscal year
// @Tags			Depreciation
// @Produce		json
// @Success		200	{object}	TotalsByTypeResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			year	query	string	false	"Fiscal year, defaults to the current year"
// @Router			/v1/depreciation/by-type [get]
func GetTotalsByType(c *gin.Context) {
	year, err := fiscalYearQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	byType, err := depreciation.ByCategoryType(models.DB, userID(c), year)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TotalsByTypeResponse{Data: byType})
}
