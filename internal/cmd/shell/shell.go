// Package shell wires the shell command: configuration, logging and the
// serve or export run modes.
package shell

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/appshell/internal/platform/cmd"
	"github.com/louisbranch/appshell/internal/platform/logging"
	shellservice "github.com/louisbranch/appshell/internal/services/shell"
	"github.com/louisbranch/appshell/internal/services/shell/navigation"
	"github.com/louisbranch/appshell/internal/services/shell/templates"
)

// Config holds the shell command configuration.
type Config struct {
	HTTPAddr      string           `env:"HTTP_ADDR" envDefault:"localhost:8090"`
	AssetBaseURL  string           `env:"ASSET_BASE_URL"`
	HTMXScriptURL string           `env:"HTMX_SCRIPT_URL"`
	AppName       string           `env:"APP_NAME"`
	NavFile       string           `env:"NAV_FILE"`
	ExportDir     string           `env:"EXPORT_DIR"`
	Log           logging.Settings
}

// ParseConfig reads APPSHELL_* environment defaults and then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.AppName == "" {
		cfg.AppName = templates.DefaultAppName
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL prefixed to static asset paths")
	fs.StringVar(&cfg.HTMXScriptURL, "htmx-script-url", cfg.HTMXScriptURL, "htmx script source")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Application name shown in page titles")
	fs.StringVar(&cfg.NavFile, "nav-file", cfg.NavFile, "YAML navigation registry; the built-in registry is used when empty")
	fs.StringVar(&cfg.ExportDir, "export-dir", cfg.ExportDir, "Prerender sidebar pages into this directory and exit")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadRegistry returns the registry named by cfg.NavFile, or the built-in one.
func LoadRegistry(cfg Config) (navigation.Registry, error) {
	if path := strings.TrimSpace(cfg.NavFile); path != "" {
		return navigation.LoadFile(path)
	}
	return navigation.DefaultRegistry()
}

// Run serves the shell until ctx is cancelled, or exports it when an export
// directory is configured. Logs go to logOut.
func Run(ctx context.Context, cfg Config, logOut io.Writer) error {
	logger, err := logging.New(cmd.ServiceShell, logOut, cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	reg, err := LoadRegistry(cfg)
	if err != nil {
		return fmt.Errorf("load navigation: %w", err)
	}
	serviceCfg := shellservice.Config{
		HTTPAddr:      cfg.HTTPAddr,
		AssetBaseURL:  cfg.AssetBaseURL,
		HTMXScriptURL: cfg.HTMXScriptURL,
		AppName:       cfg.AppName,
		Registry:      reg,
		Logger:        logger,
	}

	if dir := strings.TrimSpace(cfg.ExportDir); dir != "" {
		written, err := shellservice.Export(ctx, serviceCfg, dir)
		if err != nil {
			return fmt.Errorf("export shell: %w", err)
		}
		logger.WithField("dir", dir).WithField("files", len(written)).Info("export complete")
		return nil
	}

	return cmd.RunWithTelemetryAndOptions(ctx, cmd.ServiceShell, cmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := shellservice.NewServer(ctx, serviceCfg)
		if err != nil {
			return fmt.Errorf("init shell server: %w", err)
		}
		defer server.Close()

		logger.WithField("addr", server.Addr()).WithField("entries", reg.Len()).Info("shell listening")
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve shell: %w", err)
		}
		return nil
	})
}
