package app

import (
	"context"
	"testing"

	"github.com/divyank00/portfolio/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.FromEnv(func(string) string { return "" })
	cfg.HotReload = false
	return cfg
}

func TestNewWithFs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "featured/one/index.md", []byte("---\ntitle: One\ndate: 2021-01-01\n---\nBody.\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "images/me.png", []byte("png"), 0o644))

	a, err := NewWithFs(context.Background(), testConfig(), fsys)
	require.NoError(t, err)
	defer a.Close()

	snap := a.Content.Snapshot()
	require.Len(t, snap.Projects, 1)
	assert.Equal(t, "One", snap.Projects[0].Title)
	assert.NotNil(t, snap.Avatar)

	assert.NotEmpty(t, a.Site.Title)
	assert.NotNil(t, a.Renderer)
	assert.Same(t, fsys, a.Store.Fs())
}

func TestNewWithFs_BadSiteFile(t *testing.T) {
	cfg := testConfig()
	cfg.SiteFile = "does-not-exist.yaml"

	_, err := NewWithFs(context.Background(), cfg, afero.NewMemMapFs())
	assert.ErrorContains(t, err, "failed to load site config")
}

func TestClose_Twice(t *testing.T) {
	a, err := NewWithFs(context.Background(), testConfig(), afero.NewMemMapFs())
	require.NoError(t, err)
	assert.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}
