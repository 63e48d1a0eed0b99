package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmnpbooks/backend/internal/httputil"
	"github.com/lmnpbooks/backend/internal/models"
)

type CategoryListResponse struct {
	Data []models.DepreciationCategory `json:"data"` // List of category presets
}

type CategoryResponse struct {
	Data models.DepreciationCategory `json:"data"` // The category preset
}

// RegisterCategoryRoutes registers the routes for depreciation category
// presets. Presets are read-only, they are seeded with the database.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetCategories)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGet)
		r.GET("/:id", GetCategory)
	}
}

// @Summary		List category presets
// @Description	Returns all depreciation category presets
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/depreciation-categories [get]
func GetCategories(c *gin.Context) {
	categories, err := models.DepreciationCategories(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Get category preset
// @Description	Returns a single depreciation category preset by its ID
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/depreciation-categories/{id} [get]
func GetCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	category, err := models.DepreciationCategoryByID(models.DB, id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: category})
}
