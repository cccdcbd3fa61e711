package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/divyank00/portfolio/internal/domain"
	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

const (
	// FeaturedDir holds one directory per project, each with an index.md.
	FeaturedDir = "featured"
	// AvatarPath is the profile picture relative to the content root.
	AvatarPath = "images/me.png"
	// URLPrefix is where the HTTP server mounts the content directory.
	URLPrefix = "/content"

	indexFile = "index.md"
)

// frontmatter is the YAML header of a project's index.md.
type frontmatter struct {
	Title    string    `yaml:"title"`
	Date     string    `yaml:"date"`
	Cover    string    `yaml:"cover"`
	Tech     []string  `yaml:"tech"`
	GitHub   string    `yaml:"github"`
	External string    `yaml:"external"`
}

// MarkdownSource reads content from a directory tree of markdown files.
type MarkdownSource struct {
	fs afero.Fs
	md goldmark.Markdown
}

// NewMarkdownSource creates a source rooted at fsys.
func NewMarkdownSource(fsys afero.Fs) *MarkdownSource {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// Descriptions are written by the site owner and may carry inline HTML.
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &MarkdownSource{fs: fsys, md: md}
}

// Projects implements Source. Records that fail to parse or validate are
// logged and left out; a missing featured directory yields no projects.
func (s *MarkdownSource) Projects(ctx context.Context) ([]*domain.Project, error) {
	entries, err := afero.ReadDir(s.fs, FeaturedDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return []*domain.Project{}, nil
		}
		return nil, fmt.Errorf("listing %s: %w", FeaturedDir, err)
	}

	projects := make([]*domain.Project, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		p, err := s.readProject(entry.Name())
		if err != nil {
			slog.Warn("Skipping featured project", "slug", entry.Name(), "error", err)
			continue
		}
		projects = append(projects, p)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Date.After(projects[j].Date)
	})
	return projects, nil
}

func (s *MarkdownSource) readProject(slug string) (*domain.Project, error) {
	file := path.Join(FeaturedDir, slug, indexFile)
	data, err := afero.ReadFile(s.fs, file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	head, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	var fm frontmatter
	if err := yaml.Unmarshal(head, &fm); err != nil {
		return nil, fmt.Errorf("%s: decoding frontmatter: %w", file, err)
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	var desc bytes.Buffer
	if err := s.md.Convert(body, &desc); err != nil {
		return nil, fmt.Errorf("%s: rendering markdown: %w", file, err)
	}

	p := &domain.Project{
		Slug:        slug,
		Title:       strings.TrimSpace(fm.Title),
		Date:        date,
		Description: template.HTML(strings.TrimSpace(desc.String())),
		Tech:        fm.Tech,
		GitHub:      strings.TrimSpace(fm.GitHub),
		External:    strings.TrimSpace(fm.External),
	}
	if fm.Cover != "" {
		cover, err := coverPath(slug, fm.Cover)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		p.Cover = &domain.Image{Src: path.Join(URLPrefix, cover), Alt: p.Title}
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return p, nil
}

// dateLayouts are the accepted frontmatter date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate reads a frontmatter date whether or not it was quoted in YAML.
// An absent date is the zero time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", domain.ErrInvalidProject, s)
}

// coverPath resolves a cover reference relative to the project directory and
// refuses anything that escapes it.
func coverPath(slug, cover string) (string, error) {
	dir := path.Join(FeaturedDir, slug)
	p := path.Join(dir, cover)
	if !strings.HasPrefix(p, dir+"/") {
		return "", fmt.Errorf("%w: cover %q escapes project directory", domain.ErrInvalidProject, cover)
	}
	return p, nil
}

// splitFrontmatter separates a leading "---" delimited YAML block from the body.
func splitFrontmatter(data []byte) (head, body []byte, err error) {
	text := strings.ReplaceAll(strings.TrimPrefix(string(data), "\ufeff"), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, nil, fmt.Errorf("%w: missing frontmatter", domain.ErrInvalidProject)
	}
	text = text[len("---\n"):]

	var h string
	if strings.HasPrefix(text, "---") {
		text = text[len("---"):]
	} else {
		end := strings.Index(text, "\n---")
		if end < 0 {
			return nil, nil, fmt.Errorf("%w: unterminated frontmatter", domain.ErrInvalidProject)
		}
		h, text = text[:end+1], text[end+len("\n---"):]
	}

	// Drop whatever trails the closing delimiter on its line.
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = ""
	}
	return []byte(h), []byte(text), nil
}

// Avatar implements Source.
func (s *MarkdownSource) Avatar(ctx context.Context) (*domain.Image, error) {
	if _, err := s.fs.Stat(AvatarPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("checking %s: %w", AvatarPath, err)
	}
	return &domain.Image{Src: path.Join(URLPrefix, AvatarPath), Alt: "Avatar"}, nil
}
