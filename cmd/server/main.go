package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/assetly-backend/internal/adapter/grpc"
	"github.com/simaogato/assetly-backend/internal/adapter/httpapi"
	"github.com/simaogato/assetly-backend/internal/adapter/storage"
	"github.com/simaogato/assetly-backend/internal/config"
	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/logging"
	"github.com/simaogato/assetly-backend/internal/usecase/asset"
	"github.com/simaogato/assetly-backend/internal/usecase/metrics"
	"github.com/simaogato/assetly-backend/internal/usecase/settings"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

// run starts both servers and blocks until shutdown; it returns the process exit code
// so deferred cleanup always runs before exit
func run() int {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx := context.Background()

	// 2. Open storage
	store, closeStore, err := storage.Open(ctx, cfg.StorageDriver, cfg.StorageDSN)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("Failed to close storage", slog.String("error", err.Error()))
		}
	}()
	logger.Info("Storage ready", slog.String("driver", cfg.StorageDriver))

	// 3. Initialize Services (Use Cases)
	assetService := asset.NewAssetService(store, logger)
	assetService.Initialize(ctx)

	settingsService := settings.NewSettingsService(store, logger)
	settingsService.Subscribe(func(s domain.Settings) {
		logger.Info("Settings changed", slog.String("theme", string(s.Theme)), slog.String("currency", string(s.Currency)))
	})
	settingsService.Load(ctx)

	formatter := metrics.NewFormatter(settingsService)

	// 4. Start gRPC Server
	grpcServer := grpcadapter.NewGRPCServer(
		grpcadapter.NewServer(assetService, settingsService, formatter),
		grpcadapter.Options{
			APIToken:  cfg.APIToken,
			RateLimit: cfg.RateLimit,
			RateBurst: cfg.RateBurst,
			Logger:    logger,
		},
	)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("Failed to listen", slog.String("addr", cfg.GRPCAddr), slog.String("error", err.Error()))
		return 1
	}

	serveErrs := make(chan error, 2)

	go func() {
		logger.Info("gRPC server listening", slog.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			serveErrs <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	// 5. Start HTTP Server
	gin.SetMode(gin.ReleaseMode)
	router, err := httpapi.NewRouter(httpapi.Dependencies{
		Assets:    assetService,
		Settings:  settingsService,
		Formatter: formatter,
		Logger:    logger,
		APIToken:  cfg.APIToken,
		Rate:      cfg.HTTPRate,
	})
	if err != nil {
		logger.Error("Failed to build HTTP router", slog.String("error", err.Error()))
		grpcServer.Stop()
		return 1
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", slog.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrs <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	return waitForShutdown(logger, sigChan, serveErrs, grpcServer, httpServer)
}

// waitForShutdown blocks until a signal arrives or a server fails, then shuts both
// servers down. It returns 1 when a server failure triggered the shutdown.
func waitForShutdown(logger *slog.Logger, sigChan <-chan os.Signal, serveErrs <-chan error, grpcServer *grpclib.Server, httpServer *http.Server) int {
	code := 0
	select {
	case sig := <-sigChan:
		logger.Info("Shutting down gracefully", slog.String("signal", sig.String()))
	case err := <-serveErrs:
		logger.Error("Server failed, shutting down", slog.String("error", err.Error()))
		code = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	return code
}
