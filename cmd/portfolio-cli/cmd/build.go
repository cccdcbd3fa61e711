package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/divyank00/portfolio/internal/export"
	"github.com/divyank00/portfolio/internal/storage"
	"github.com/divyank00/portfolio/web"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	outDir   string
	cleanOut bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site into a static directory",
	Long: `Renders index.html and projects.json from the content directory and copies
the stylesheet and content images next to them. The output can be served by
any static file host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		dir := outDir
		if dir == "" {
			dir = a.Config.ExportDir
		}
		if cleanOut {
			if err := checkCleanTarget(dir, a.Config.ContentDir); err != nil {
				return err
			}
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("failed to clean %s: %w", dir, err)
			}
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}

		res, err := export.New(export.Options{
			Site:      a.Site,
			Snapshot:  a.Content.Snapshot(),
			Renderer:  a.Renderer,
			ContentFs: a.Store.Fs(),
			Static:    web.Static(),
			Out:       storage.NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir)),
		}).Export(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(res.Files), dir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (defaults to EXPORT_DIR or ./public)")
	buildCmd.Flags().BoolVar(&cleanOut, "clean", false, "remove the output directory before writing")
	rootCmd.AddCommand(buildCmd)
}

// checkCleanTarget refuses to remove the working directory, a filesystem
// root, or any directory that overlaps the content directory.
func checkCleanTarget(dir, contentDir string) error {
	out, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	content, err := filepath.Abs(contentDir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", contentDir, err)
	}

	switch {
	case out == cwd:
		return fmt.Errorf("refusing to clean the working directory %s", dir)
	case filepath.Dir(out) == out:
		return fmt.Errorf("refusing to clean the filesystem root %s", dir)
	case within(content, out) || within(out, content):
		return fmt.Errorf("refusing to clean %s: it overlaps the content directory %s", dir, contentDir)
	}
	return nil
}

// within reports whether path is parent or lies below it.
func within(path, parent string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
