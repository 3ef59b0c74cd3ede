// Package cli provides the modcn command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/modcn/modcn/internal/config"
	"github.com/modcn/modcn/internal/draft"
	"github.com/modcn/modcn/internal/fonts"
	"github.com/modcn/modcn/internal/kv"
	"github.com/modcn/modcn/internal/preview"
	"github.com/modcn/modcn/internal/store"
)

var (
	cfgFile      string
	dbPathFlag   string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:           "modcn",
	Short:         "Design token editor",
	Long:          "Edit, preview and version shadcn-style design tokens from the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "sqlite database path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if dbPathFlag != "" {
		cfg.DBPath = dbPathFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	return cfg, nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// app bundles the wired runtime a command needs: config, logger, the
// sqlite-backed store and the draft engine on top of it.
type app struct {
	cfg     config.Config
	logger  zerolog.Logger
	backing kv.Store
	engine  *draft.Engine
	binding *preview.Binding
}

// openApp wires the full runtime. withPreview additionally starts the
// file-backed preview binding when a stylesheet path is configured.
func openApp(withPreview bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	backing, err := kv.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	adapter := store.New(backing, logger)
	engine := draft.New(adapter, draft.Options{
		PersistWindow: cfg.PersistDebounce,
		Logger:        logger,
		Fonts:         fonts.NewLogLoader(logger),
	})

	a := &app{cfg: cfg, logger: logger, backing: backing, engine: engine}

	if withPreview && cfg.PreviewCSSPath != "" {
		a.binding = preview.NewBinding(engine, preview.NewFileTarget(cfg.PreviewCSSPath), preview.Options{
			Window: cfg.PreviewDebounce,
			Logger: logger,
		})
		if err := a.binding.Start(); err != nil {
			a.Close()
			return nil, fmt.Errorf("starting preview binding: %w", err)
		}
	}
	return a, nil
}

// Close flushes pending persistence and releases the database.
func (a *app) Close() {
	if a.binding != nil {
		a.binding.Close()
	}
	a.engine.Close()
	if err := a.backing.Close(); err != nil {
		a.logger.Error().Err(err).Msg("closing database")
	}
}
