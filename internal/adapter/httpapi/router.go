package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/simaogato/assetly-backend/internal/usecase/asset"
	"github.com/simaogato/assetly-backend/internal/usecase/metrics"
	"github.com/simaogato/assetly-backend/internal/usecase/settings"
)

// Dependencies holds everything the HTTP API needs
type Dependencies struct {
	Assets    *asset.AssetService
	Settings  *settings.SettingsService
	Formatter *metrics.Formatter
	Logger    *slog.Logger
	APIToken  string
	Rate      string // ulule formatted rate, e.g. "120-M"
}

// NewRouter sets up all routes under /api/v1 plus an unauthenticated /healthz
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	rate, err := limiter.NewRateFromFormatted(deps.Rate)
	if err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(StructuredLoggingMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1",
		RateLimit(limiter.New(limitermemory.NewStore(), rate)),
		APITokenAuth(deps.APIToken),
	)

	registerAssetRoutes(v1, &assetHandler{
		assets:    deps.Assets,
		settings:  deps.Settings,
		formatter: deps.Formatter,
	})
	registerSettingsRoutes(v1, &settingsHandler{settings: deps.Settings})

	return r, nil
}
