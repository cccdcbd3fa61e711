// Package export renders the site once and writes a directory that any static
// file host can serve.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/divyank00/portfolio/internal/config"
	"github.com/divyank00/portfolio/internal/content"
	"github.com/divyank00/portfolio/internal/handlers"
	"github.com/divyank00/portfolio/internal/rendering"
	"github.com/divyank00/portfolio/internal/reveal"
	"github.com/divyank00/portfolio/internal/storage"
	"github.com/divyank00/portfolio/web/src/templates/pages"
	"github.com/spf13/afero"
)

const (
	IndexFile    = "index.html"
	ProjectsFile = "projects.json"
	StaticDir    = "static"
	ContentDir   = "content"
)

// Options configures an Exporter.
type Options struct {
	Site     *config.Site
	Snapshot content.Snapshot
	Renderer rendering.Renderer
	// ContentFs holds the images referenced by the snapshot.
	ContentFs afero.Fs
	// Static holds the stylesheet and other assets served under /static.
	Static fs.FS
	Out    storage.Store
}

// Exporter writes the rendered site to Out.
type Exporter struct {
	opts Options
}

// New creates an Exporter.
func New(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// Result lists the files written, in the order they were written.
type Result struct {
	Files []string
}

// Export writes index.html, projects.json, the static assets and every
// publicly served content file. The same snapshot always produces the same
// files with the same bytes.
func (e *Exporter) Export(ctx context.Context) (*Result, error) {
	res := &Result{}

	if err := e.writePage(ctx, res); err != nil {
		return nil, err
	}
	if err := e.writeProjects(ctx, res); err != nil {
		return nil, err
	}
	if e.opts.Static != nil {
		if err := e.copyStatic(ctx, res); err != nil {
			return nil, err
		}
	}
	if e.opts.ContentFs != nil {
		if err := e.copyContent(ctx, res); err != nil {
			return nil, err
		}
	}

	slog.Info("Site exported", "files", len(res.Files), "projects", len(e.opts.Snapshot.Projects))
	return res, nil
}

func (e *Exporter) save(ctx context.Context, res *Result, name string, data []byte) error {
	if _, err := e.opts.Out.Save(ctx, name, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	res.Files = append(res.Files, name)
	return nil
}

func (e *Exporter) writePage(ctx context.Context, res *Result) error {
	reg := reveal.NewRegistry()
	page := pages.Home(pages.HomeData{Site: e.opts.Site, Content: e.opts.Snapshot}, reg)

	html, err := e.opts.Renderer.RenderComponent(ctx, page)
	if err != nil {
		return fmt.Errorf("failed to render home page: %w", err)
	}
	return e.save(ctx, res, IndexFile, html)
}

func (e *Exporter) writeProjects(ctx context.Context, res *Result) error {
	data, err := json.MarshalIndent(handlers.NewProjectsResponse(e.opts.Snapshot.Projects), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	return e.save(ctx, res, ProjectsFile, append(data, '\n'))
}

func (e *Exporter) copyStatic(ctx context.Context, res *Result) error {
	return fs.WalkDir(e.opts.Static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(e.opts.Static, name)
		if err != nil {
			return fmt.Errorf("failed to read static asset %s: %w", name, err)
		}
		return e.save(ctx, res, path.Join(StaticDir, name), data)
	})
}

func (e *Exporter) copyContent(ctx context.Context, res *Result) error {
	err := afero.Walk(e.opts.ContentFs, ".", func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() || !handlers.IsServedContent(name) {
			return nil
		}
		data, err := afero.ReadFile(e.opts.ContentFs, name)
		if err != nil {
			return fmt.Errorf("failed to read content file %s: %w", name, err)
		}
		return e.save(ctx, res, path.Join(ContentDir, filepath.ToSlash(name)), data)
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
