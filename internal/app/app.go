package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/five82/atlas/internal/config"
	"github.com/five82/atlas/internal/logging"
	"github.com/five82/atlas/internal/prefs"
	"github.com/five82/atlas/internal/restcountries"
	"github.com/five82/atlas/internal/state"
	"github.com/five82/atlas/internal/ui"
	"github.com/five82/atlas/internal/web"
)

// Options configure the Atlas application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/atlas/prefs.toml
	Listen     string // overrides the config; non-empty serves the web frontend
	Debug      bool
}

// Run boots Atlas until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.Setup(logging.Options{Path: cfg.LogPath(), Debug: opts.Debug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "atlas: logging disabled: %v\n", err)
	}
	defer func() { _ = closeLog() }()

	client, err := restcountries.NewClient(cfg.APIURL, cfg.RequestTimeout())
	if err != nil {
		return fmt.Errorf("init countries client: %w", err)
	}
	client = client.WithLogger(logger)

	store := &state.Store{}

	if addr := listenAddr(opts, cfg); addr != "" {
		return runWeb(ctx, addr, store, client, logger)
	}
	return runTUI(ctx, opts, cfg, store, client, logger)
}

func listenAddr(opts Options, cfg config.Config) string {
	if addr := strings.TrimSpace(opts.Listen); addr != "" {
		return addr
	}
	return cfg.Listen
}

func runWeb(ctx context.Context, addr string, store *state.Store, fetcher restcountries.CountryFetcher, logger *slog.Logger) error {
	logger.Info("starting web frontend", "addr", addr)
	StartLoader(ctx, store, fetcher, logger)

	srv := web.New(web.Options{Store: store, Logger: logger})
	if err := srv.Listen(ctx, addr); err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

func runTUI(ctx context.Context, opts Options, cfg config.Config, store *state.Store, fetcher restcountries.CountryFetcher, logger *slog.Logger) error {
	logger.Info("starting terminal frontend")
	userPrefs := prefs.Load(opts.PrefsPath)

	return ui.Run(ui.Options{
		Context: ctx,
		Store:   store,
		Load: func(ctx context.Context) error {
			return Load(ctx, store, fetcher, logger)
		},
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath(),
		ExportDir: cfg.ExportDir,
		Logger:    logger,
	})
}
