package pages

import (
	"bytes"
	"strings"
	"testing"

	"github.com/divyank00/portfolio/internal/config"
	"github.com/divyank00/portfolio/internal/content"
	"github.com/divyank00/portfolio/internal/domain"
	"github.com/divyank00/portfolio/internal/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderHome(t *testing.T, snap content.Snapshot) (string, *reveal.Registry) {
	t.Helper()
	site, err := config.LoadSite("")
	require.NoError(t, err)

	reg := reveal.NewRegistry()
	var buf bytes.Buffer
	require.NoError(t, Home(HomeData{Site: site, Content: snap}, reg).Render(&buf))
	return buf.String(), reg
}

func TestHome(t *testing.T) {
	snap := content.Snapshot{
		Avatar: &domain.Image{Src: "/content/images/me.png", Alt: "Avatar"},
		Projects: []*domain.Project{
			{Title: "Halite", External: "https://halite.example.com"},
			nil,
			{Title: "Notes", GitHub: "https://github.com/divyank00/notes"},
		},
	}
	out, reg := renderHome(t, snap)

	t.Run("document shell", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
		assert.Contains(t, out, `<html lang="en-US">`)
		assert.Contains(t, out, "<title>Divyank Lunkad&#39;s Portfolio</title>")
		assert.Contains(t, out, `<link rel="canonical" href="https://divyank00.github.io">`)
		assert.Contains(t, out, `<link rel="stylesheet" href="/static/css/site.css">`)
		assert.Contains(t, out, "--green:#64ffda;")
		assert.Contains(t, out, `<a href="/#projects">Work</a>`)
	})

	t.Run("sections in order", func(t *testing.T) {
		about := strings.Index(out, `id="about"`)
		projects := strings.Index(out, `id="projects"`)
		footer := strings.Index(out, `<footer class="site-footer"></footer>`)
		require.True(t, about > 0 && projects > 0 && footer > 0)
		assert.Less(t, about, projects)
		assert.Less(t, projects, footer)
	})

	t.Run("reveal bootstrap", func(t *testing.T) {
		assert.Equal(t, 4, reg.Len(), "about, heading and two projects")
		lib := strings.Index(out, reveal.LibraryURL)
		boot := strings.Index(out, `r("about",`)
		require.True(t, lib > 0 && boot > 0)
		assert.Less(t, lib, boot, "library loads before the bootstrap runs")
		assert.Contains(t, out, `r("project-1",`)
		assert.NotContains(t, out, `r("project-2",`)
	})
}

func TestHome_EmptySnapshot(t *testing.T) {
	out, reg := renderHome(t, content.Snapshot{})

	assert.NotContains(t, out, `class="avatar"`)
	assert.NotContains(t, out, `class="featured-project"`)
	assert.Equal(t, 2, reg.Len())
}

func TestHome_FreshRegistryPerRender(t *testing.T) {
	snap := content.Snapshot{Projects: []*domain.Project{{Title: "A"}}}
	first, reg1 := renderHome(t, snap)
	second, reg2 := renderHome(t, snap)

	assert.Equal(t, first, second, "rendering is deterministic")
	assert.Equal(t, reg1.Len(), reg2.Len())
}

func TestHome_NilRegistry(t *testing.T) {
	site, err := config.LoadSite("")
	require.NoError(t, err)
	snap := content.Snapshot{Projects: []*domain.Project{{Title: "A"}}}

	var buf bytes.Buffer
	assert.NotPanics(t, func() {
		require.NoError(t, Home(HomeData{Site: site, Content: snap}, nil).Render(&buf))
	})

	out := buf.String()
	assert.Contains(t, out, `id="project-0"`)
	assert.NotContains(t, out, reveal.LibraryURL)
	assert.NotContains(t, out, "<script>")
}
