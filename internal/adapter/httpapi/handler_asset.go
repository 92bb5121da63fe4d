package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/dto"
	"github.com/simaogato/assetly-backend/internal/logging"
	"github.com/simaogato/assetly-backend/internal/usecase/asset"
	"github.com/simaogato/assetly-backend/internal/usecase/metrics"
	"github.com/simaogato/assetly-backend/internal/usecase/settings"
)

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	assets    *asset.AssetService
	settings  *settings.SettingsService
	formatter *metrics.Formatter
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, h *assetHandler) {
	assets := rg.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.POST("", h.createAsset)
		assets.GET("/:id", h.getAsset)
		assets.PATCH("/:id", h.updateAsset)
		assets.DELETE("/:id", h.deleteAsset)
	}
	rg.GET("/summary", h.getSummary)
}

func (h *assetHandler) createAsset(c *gin.Context) {
	logger := logging.FromContext(c.Request.Context(), nil)

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	created, err := h.assets.AddAsset(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(*created, h.formatter))
}

func (h *assetHandler) listAssets(c *gin.Context) {
	var req dto.ListAssetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query: " + err.Error()})
		return
	}
	opts, err := req.ToOptions()
	if err != nil {
		respondError(c, err)
		return
	}

	assets, err := h.assets.ListAssets(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListAssetsResponse{
		Assets: dto.ToListAssetResponse(assets, h.formatter),
		Count:  len(assets),
	})
}

func (h *assetHandler) getAsset(c *gin.Context) {
	id := c.Param("id")

	found, err := h.assets.GetAssetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if found == nil {
		respondError(c, domain.AssetNotFound(id))
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(*found, h.formatter))
}

func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := logging.FromContext(c.Request.Context(), nil)

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}
	req.ID = c.Param("id")
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.assets.UpdateAsset(c.Request.Context(), req.ID, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(*updated, h.formatter))
}

func (h *assetHandler) deleteAsset(c *gin.Context) {
	if err := h.assets.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *assetHandler) getSummary(c *gin.Context) {
	assets, err := h.assets.GetAssets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(assets, h.settings.Currency(), h.formatter))
}
