// Package app wires the services shared by the server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/divyank00/portfolio/internal/config"
	"github.com/divyank00/portfolio/internal/content"
	"github.com/divyank00/portfolio/internal/pubsub"
	"github.com/divyank00/portfolio/internal/rendering"
	"github.com/divyank00/portfolio/internal/storage"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// App holds the resolved services. Build it with New and release it with Close.
type App struct {
	Config   *config.Config
	Site     *config.Site
	Content  *content.Cache
	Store    *storage.AferoStore
	Bus      *pubsub.WatermillBridge
	Renderer *rendering.UniversalRenderer

	watcher *content.Watcher
	cancel  context.CancelFunc
}

// Providers registers every service constructor on i.
func Providers(cfg *config.Config, contentFs afero.Fs) func(do.Injector) {
	return func(i do.Injector) {
		do.ProvideValue(i, cfg)
		do.ProvideValue(i, contentFs)

		do.Provide(i, func(i do.Injector) (*config.Site, error) {
			cfg := do.MustInvoke[*config.Config](i)
			return config.LoadSite(cfg.SiteFile)
		})
		do.Provide(i, func(i do.Injector) (*storage.AferoStore, error) {
			return storage.NewAferoStore(do.MustInvoke[afero.Fs](i)), nil
		})
		do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
			return pubsub.NewWatermillBridge(), nil
		})
		do.Provide(i, func(i do.Injector) (*content.MarkdownSource, error) {
			return content.NewMarkdownSource(do.MustInvoke[afero.Fs](i)), nil
		})
		do.Provide(i, func(i do.Injector) (*content.Cache, error) {
			return content.NewCache(do.MustInvoke[*content.MarkdownSource](i)), nil
		})
		do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
			return rendering.NewUniversalRenderer(), nil
		})
	}
}

// New resolves all services over the content directory named in cfg and
// loads the first content snapshot. When cfg.HotReload is set, a file
// watcher republishes changes on the bus and the cache reloads itself.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	return NewWithFs(ctx, cfg, afero.NewBasePathFs(afero.NewOsFs(), cfg.ContentDir))
}

// NewWithFs is New over an explicit content filesystem.
func NewWithFs(ctx context.Context, cfg *config.Config, contentFs afero.Fs) (*App, error) {
	injector := do.New(Providers(cfg, contentFs))

	site, err := do.Invoke[*config.Site](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to load site config: %w", err)
	}

	a := &App{
		Config:   cfg,
		Site:     site,
		Content:  do.MustInvoke[*content.Cache](injector),
		Store:    do.MustInvoke[*storage.AferoStore](injector),
		Bus:      do.MustInvoke[*pubsub.WatermillBridge](injector),
		Renderer: do.MustInvoke[*rendering.UniversalRenderer](injector),
	}

	if err := a.Content.Reload(ctx); err != nil {
		a.Bus.Close()
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	if cfg.HotReload {
		if err := a.startHotReload(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}
	return a, nil
}

func (a *App) startHotReload(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	if err := a.Content.Listen(ctx, a.Bus); err != nil {
		return fmt.Errorf("failed to subscribe content cache: %w", err)
	}

	a.watcher = content.NewWatcher(a.Config.ContentDir, a.Bus)
	if err := a.watcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start content watcher: %w", err)
	}
	slog.Info("Content hot reload enabled", "dir", a.Config.ContentDir)
	return nil
}

// Close stops the watcher and the bus.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Close())
	}
	errs = append(errs, a.Bus.Close())
	return errors.Join(errs...)
}
