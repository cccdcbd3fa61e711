package layouts

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderMeta(t *testing.T, p MetaProps) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Meta(p).Render(context.Background(), &buf))
	return buf.String()
}

func TestMeta(t *testing.T) {
	out := renderMeta(t, MetaProps{
		Title:       `Tom & Jerry's <Site>`,
		Description: "Portfolio",
		Keywords:    "go, web",
		URL:         "https://example.com",
		ThemeColor:  "#0a192f",
	})

	assert.Contains(t, out, `<meta charset="utf-8">`)
	assert.Contains(t, out, `<title>Tom &amp; Jerry&#39;s &lt;Site&gt;</title>`)
	assert.Contains(t, out, `<meta name="description" content="Portfolio">`)
	assert.Contains(t, out, `<meta name="keywords" content="go, web">`)
	assert.Contains(t, out, `<meta name="theme-color" content="#0a192f">`)
	assert.Contains(t, out, `<meta property="og:url" content="https://example.com">`)
	assert.Contains(t, out, `<meta property="og:type" content="website">`)
	assert.Contains(t, out, `<link rel="canonical" href="https://example.com">`)
}

func TestMeta_SkipsEmptyValues(t *testing.T) {
	out := renderMeta(t, MetaProps{Title: "Only"})

	assert.Contains(t, out, "<title>Only</title>")
	assert.NotContains(t, out, `name="description"`)
	assert.NotContains(t, out, `name="keywords"`)
	assert.NotContains(t, out, `rel="canonical"`)
	assert.NotContains(t, out, `property="og:url"`)
}
