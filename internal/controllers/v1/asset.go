package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmnpbooks/backend/internal/depreciation"
	"github.com/lmnpbooks/backend/internal/httputil"
	"github.com/lmnpbooks/backend/internal/models"
	"github.com/lmnpbooks/backend/internal/uuid"
)

type AssetListResponse struct {
	Data []models.DepreciationAsset `json:"data"` // List of depreciation assets
}

type AssetResponse struct {
	Data models.DepreciationAsset `json:"data"` // The depreciation asset
}

type EntryListResponse struct {
	Data []models.DepreciationEntry `json:"data"` // Schedule rows for the asset, ascending by year
}

// AssetEditable is the set of fields clients may set on an asset.
type AssetEditable struct {
	PropertyID      uuid.UUID          `json:"propertyId" example:"00f29724-95a8-4ad4-b3b1-c56ad50cf301"`
	CategoryID      uuid.UUID          `json:"categoryId" example:"c3b1ea32-4d43-8419-882a-2fc91d71772f"`
	Name            string             `json:"name" example:"Canapé convertible"`
	AcquisitionDate time.Time          `json:"acquisitionDate" example:"2020-06-01T00:00:00Z"`
	BaseValue       decimal.Decimal    `json:"baseValue" example:"10000"`
	Duration        int                `json:"duration" example:"5"`
	Rate            decimal.Decimal    `json:"rate" example:"20"`
	Status          models.AssetStatus `json:"status" example:"active" default:"active"`
	Notes           string             `json:"notes" example:""`
}

// AssetCreate additionally allows generating the schedule in the same
// request, matching the checkbox on the creation form.
type AssetCreate struct {
	AssetEditable
	GenerateEntries bool `json:"generateEntries" example:"true" default:"false"`
}

// AssetQueryFilter are the query string filters for asset lists.
type AssetQueryFilter struct {
	Property     uuid.UUID `form:"property"` // By property ID
	CategoryType string    `form:"type"`     // By category type (property, furniture, improvement)
	Status       string    `form:"status"`   // By status (active, disposed)
}

func (e AssetEditable) model(userID google_uuid.UUID) models.DepreciationAsset {
	return models.DepreciationAsset{
		UserID:          userID,
		PropertyID:      e.PropertyID.UUID,
		CategoryID:      e.CategoryID.UUID,
		Name:            e.Name,
		AcquisitionDate: e.AcquisitionDate,
		BaseValue:       e.BaseValue,
		Duration:        e.Duration,
		Rate:            e.Rate,
		Status:          e.Status,
		Notes:           e.Notes,
	}
}

// RegisterAssetRoutes registers the routes for depreciation assets.
func RegisterAssetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetAssets)
		r.POST("", CreateAsset)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", GetAsset)
		r.PATCH("/:id", UpdateAsset)
		r.DELETE("/:id", DeleteAsset)
	}
	{
		r.OPTIONS("/:id/entries", httputil.OptionsGetPost)
		r.GET("/:id/entries", GetAssetEntries)
		r.POST("/:id/entries", RegenerateAssetEntries)
	}
}

// @Summary		List assets
// @Description	Returns the depreciation assets of the authenticated user
// @Tags			Assets
// @Produce		json
// @Success		200	{object}	AssetListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			property	query	string	false	"Filter by property ID"
// @Param			type		query	string	false	"Filter by category type"
// @Param			status		query	string	false	"Filter by status"
// @Router			/v1/assets [get]
func GetAssets(c *gin.Context) {
	var query AssetQueryFilter
	if err := c.ShouldBind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidBody.Error()})
		return
	}

	filter := models.AssetFilter{
		PropertyID:   query.Property.UUID,
		CategoryType: models.CategoryType(query.CategoryType),
		Status:       models.AssetStatus(query.Status),
	}

	if filter.CategoryType != "" && !filter.CategoryType.Valid() {
		c.JSON(http.StatusBadRequest, httpError{Error: "the type query parameter must be one of property, furniture or improvement"})
		return
	}

	assets, err := models.Assets(models.DB, userID(c), filter)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AssetListResponse{Data: assets})
}

// @Summary		Create asset
// @Description	Creates a new depreciation asset, optionally generating its schedule
// @Tags			Assets
// @Accept			json
// @Produce		json
// @Success		201	{object}	AssetResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			asset	body	AssetCreate	true	"Asset"
// @Router			/v1/assets [post]
func CreateAsset(c *gin.Context) {
	var data AssetCreate
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := userID(c)

	// The property check doubles as the ownership check. A property that
	// exists but belongs to someone else gets the same answer as one that
	// does not exist.
	if _, err := models.PropertyForUser(models.DB, data.PropertyID.UUID, user); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrPropertyInvalid.Error()})
		return
	}

	if _, err := models.DepreciationCategoryByID(models.DB, data.CategoryID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	asset := data.model(user)

	if err := models.DB.Create(&asset).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if data.GenerateEntries {
		if _, err := depreciation.GenerateSchedule(models.DB, user, asset.ID); err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, AssetResponse{Data: asset})
}

// @Summary		Get asset
// @Description	Returns a single depreciation asset by its ID
// @Tags			Assets
// @Produce		json
// @Success		200	{object}	AssetResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/assets/{id} [get]
func GetAsset(c *gin.Context) {
	id, err := assetID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	asset, err := models.AssetForUser(models.DB, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AssetResponse{Data: asset})
}

// @Summary		Update asset
// @Description	Updates a depreciation asset. Regenerate its entries afterwards to reflect changed values.
// @Tags			Assets
// @Accept			json
// @Produce		json
// @Success		200	{object}	AssetResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id		path	string			true	"ID formatted as string"
// @Param			asset	body	AssetEditable	true	"Asset"
// @Router			/v1/assets/{id} [patch]
func UpdateAsset(c *gin.Context) {
	id, err := assetID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	user := userID(c)

	asset, err := models.AssetForUser(models.DB, id, user)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Prefill with the current values so a partial body only changes the
	// fields it names.
	data := AssetEditable{
		PropertyID:      uuid.UUID{UUID: asset.PropertyID},
		CategoryID:      uuid.UUID{UUID: asset.CategoryID},
		Name:            asset.Name,
		AcquisitionDate: asset.AcquisitionDate,
		BaseValue:       asset.BaseValue,
		Duration:        asset.Duration,
		Rate:            asset.Rate,
		Status:          asset.Status,
		Notes:           asset.Notes,
	}
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if data.PropertyID.UUID != asset.PropertyID {
		if _, err := models.PropertyForUser(models.DB, data.PropertyID.UUID, user); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: models.ErrPropertyInvalid.Error()})
			return
		}
	}

	if data.CategoryID.UUID != asset.CategoryID {
		if _, err := models.DepreciationCategoryByID(models.DB, data.CategoryID.UUID); err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	updated := data.model(user)
	updated.DefaultModel = asset.DefaultModel

	if err := models.DB.Save(&updated).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AssetResponse{Data: updated})
}

// @Summary		Delete asset
// @Description	Deletes a depreciation asset and its schedule entries
// @Tags			Assets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/assets/{id} [delete]
func DeleteAsset(c *gin.Context) {
	id, err := assetID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	asset, err := models.AssetForUser(models.DB, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&asset).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		List schedule entries
// @Description	Returns the depreciation schedule of an asset, generating it if it does not exist yet
// @Tags			Assets
// @Produce		json
// @Success		200	{object}	EntryListResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/assets/{id}/entries [get]
func GetAssetEntries(c *gin.Context) {
	id, err := assetID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	entries, err := depreciation.Entries(models.DB, userID(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, EntryListResponse{Data: entries})
}

// @Summary		Regenerate schedule entries
// @Description	Replaces the depreciation schedule of an asset with a freshly computed one
// @Tags			Assets
// @Produce		json
// @Success		201	{object}	EntryListResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/assets/{id}/entries [post]
func RegenerateAssetEntries(c *gin.Context) {
	id, err := assetID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	entries, err := depreciation.GenerateSchedule(models.DB, userID(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, EntryListResponse{Data: entries})
}

func assetID(c *gin.Context) (google_uuid.UUID, error) {
	return parseID(c)
}
