package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simaogato/assetly-backend/internal/adapter/storage"
	"github.com/simaogato/assetly-backend/internal/config"
	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/logging"
	"github.com/simaogato/assetly-backend/internal/usecase/asset"
	"github.com/simaogato/assetly-backend/internal/usecase/metrics"
	"github.com/simaogato/assetly-backend/internal/usecase/settings"
)

// App is what every subcommand operates on
type App struct {
	Assets    *asset.AssetService
	Settings  *settings.SettingsService
	Formatter *metrics.Formatter
}

// Opener builds the App for a command invocation and returns a cleanup function
type Opener func(ctx context.Context, opts GlobalOptions) (*App, func() error, error)

// GlobalOptions are the persistent flags shared by all subcommands
type GlobalOptions struct {
	EnvFile string
	Driver  string
	DSN     string
	Verbose bool
	JSON    bool
}

type appKey struct{}

// NewRootCommand creates the assetly command tree
func NewRootCommand(open Opener) *cobra.Command {
	var (
		opts    GlobalOptions
		cleanup func() error
	)

	root := &cobra.Command{
		Use:   "assetly",
		Short: "Track what your belongings cost you per day",
		Long: `assetly keeps an inventory of the things you own and works out what each
one costs per day of ownership (or per use).

ASSETS:
  add         Record a new asset
  list        List assets, with filters and sorting
  show        Show one asset with its cost figures
  update      Change fields of an asset
  delete      Remove an asset
  summary     Totals over the assets still in service
  clear       Remove every asset

PREFERENCES:
  settings    Show or change the display currency and theme`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, closeFn, err := open(cmd.Context(), opts)
			if err != nil {
				return err
			}
			cleanup = closeFn
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, app))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cleanup == nil {
				return nil
			}
			return cleanup()
		},
	}

	root.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "Load environment variables from this .env file")
	root.PersistentFlags().StringVar(&opts.Driver, "driver", "", "Storage driver (sqlite3, postgres, memory); overrides ASSETLY_STORAGE_DRIVER")
	root.PersistentFlags().StringVar(&opts.DSN, "dsn", "", "Storage DSN; overrides ASSETLY_STORAGE_DSN")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().BoolVarP(&opts.JSON, "json", "j", false, "Print structured JSON instead of tables")

	root.AddCommand(
		newAddCommand(&opts),
		newListCommand(&opts),
		newShowCommand(&opts),
		newUpdateCommand(&opts),
		newDeleteCommand(),
		newSummaryCommand(&opts),
		newClearCommand(),
		newSettingsCommand(&opts),
	)

	return root
}

// OpenFromConfig loads configuration and opens the configured store
func OpenFromConfig(ctx context.Context, opts GlobalOptions) (*App, func() error, error) {
	var envFiles []string
	if opts.EnvFile != "" {
		envFiles = append(envFiles, opts.EnvFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, nil, err
	}
	if opts.Driver != "" {
		cfg.StorageDriver = opts.Driver
	}
	if opts.DSN != "" {
		cfg.StorageDSN = opts.DSN
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level := "error"
	if opts.Verbose {
		level = "debug"
	}
	logger := logging.New(os.Stderr, level, "text")

	store, closeFn, err := storage.Open(ctx, cfg.StorageDriver, cfg.StorageDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	return NewApp(ctx, store, logger), closeFn, nil
}

// NewApp wires the services over store and loads persisted settings
func NewApp(ctx context.Context, store domain.KeyValueStore, logger *slog.Logger) *App {
	settingsService := settings.NewSettingsService(store, logger)
	settingsService.Load(ctx)

	return &App{
		Assets:    asset.NewAssetService(store, logger),
		Settings:  settingsService,
		Formatter: metrics.NewFormatter(settingsService),
	}
}

func appFrom(cmd *cobra.Command) *App {
	app, _ := cmd.Context().Value(appKey{}).(*App)
	return app
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
