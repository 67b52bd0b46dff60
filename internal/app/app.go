// Package app wires the configuration, fetch, formatting and output
// stages into one application run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/somiandras/gtm-docs/internal/config"
	"github.com/somiandras/gtm-docs/internal/ctxlog"
	"github.com/somiandras/gtm-docs/internal/format"
	"github.com/somiandras/gtm-docs/internal/fsutil"
	"github.com/somiandras/gtm-docs/internal/htmldoc"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle. The document goes to outW when the output path is "-";
// logs always go to errW so they never interleave with the document.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	cfg     *Config
	fetcher Fetcher
}

// NewApp constructs the application with its own isolated logger. A nil
// fetcher selects the live Tag Manager API.
func NewApp(outW, errW io.Writer, cfg *Config, fetcher Fetcher) *App {
	if fetcher == nil {
		fetcher = apiFetcher{}
	}
	return &App{
		outW:    outW,
		logger:  newLogger(cfg.LogLevel, cfg.LogFormat, errW),
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// Run executes one fetch-format-write cycle.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	fileCfg, err := config.Load(a.cfg.ConfigPath)
	if err != nil {
		return err
	}
	if a.cfg.OutputPath != "" {
		fileCfg.Output.Path = a.cfg.OutputPath
	}
	if a.cfg.Format != "" {
		fileCfg.Output.Format = a.cfg.Format
	}

	a.logger.Info("fetching container elements",
		"account", fileCfg.Container.AccountID,
		"container", fileCfg.Container.ContainerID,
		"workspace", fileCfg.Container.WorkspaceID)
	elements, err := a.fetcher.Fetch(ctx, fileCfg)
	if err != nil {
		return fmt.Errorf("fetching elements: %w", err)
	}

	a.logger.Debug("building document", "elements", len(elements), "workers", a.cfg.Workers)
	doc, err := format.DocumentWorkers(elements, a.cfg.Workers)
	if err != nil {
		return fmt.Errorf("building document: %w", err)
	}
	if fileCfg.Output.Format == config.FormatHTML {
		if doc, err = htmldoc.Render(doc); err != nil {
			return err
		}
	}

	if fileCfg.Output.Path == "-" {
		_, err := fmt.Fprintln(a.outW, doc)
		return err
	}
	if err := fsutil.WriteFileAtomic(fileCfg.Output.Path, []byte(doc), 0o644); err != nil {
		return err
	}
	a.logger.Info("documentation written",
		"path", fileCfg.Output.Path,
		"format", fileCfg.Output.Format,
		"elements", len(elements))
	return nil
}
