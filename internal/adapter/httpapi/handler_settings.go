package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/dto"
	"github.com/simaogato/assetly-backend/internal/usecase/settings"
)

// settingsHandler handles HTTP requests for display preferences.
type settingsHandler struct {
	settings *settings.SettingsService
}

func registerSettingsRoutes(rg *gin.RouterGroup, h *settingsHandler) {
	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
	rg.GET("/currencies", h.listCurrencies)
}

func (h *settingsHandler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSettingsResponse(h.settings.Snapshot()))
}

func (h *settingsHandler) updateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if req.Theme != nil {
		if err := h.settings.SetTheme(ctx, domain.Theme(*req.Theme)); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.Currency != nil {
		if err := h.settings.SetCurrency(ctx, domain.Currency(*req.Currency)); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(h.settings.Snapshot()))
}

func (h *settingsHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CurrenciesResponse{Currencies: h.settings.AvailableCurrencies()})
}
