package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	project := filepath.Join(dir, "featured", "halite")
	require.NoError(t, os.MkdirAll(project, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "index.md"), []byte(`---
title: Halite
date: 2020-06-01
github: https://github.com/divyank00/halite
tech: [Kotlin, Firebase]
---
Salt tracking.
`), 0o644))
	return dir
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		contentDir, siteFile, outDir, cleanOut = "", "", "", false
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "portfolio-cli v"+version+"\n", run(t, "version"))
}

func TestProjectsCmd(t *testing.T) {
	out := run(t, "projects", "--content", writeContent(t))

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "2020-06-01")
	assert.Contains(t, out, "Halite")
	assert.Contains(t, out, "Kotlin, Firebase")
	assert.Contains(t, out, "https://github.com/divyank00/halite")
}

func TestProjectsCmd_Empty(t *testing.T) {
	out := run(t, "projects", "--content", t.TempDir())
	assert.Contains(t, out, "No featured projects found.")
}

func TestBuildCmd(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "stale.txt"), []byte("old"), 0o644))

	out := run(t, "build", "--content", writeContent(t), "--out", dest, "--clean")
	assert.Contains(t, out, "to "+dest)

	for _, name := range []string{"index.html", "projects.json", "static/css/site.css"} {
		assert.FileExists(t, filepath.Join(dest, filepath.FromSlash(name)))
	}
	assert.NoFileExists(t, filepath.Join(dest, "stale.txt"))

	html, err := os.ReadFile(filepath.Join(dest, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Halite")
}

func TestCheckCleanTarget(t *testing.T) {
	content := writeContent(t)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name    string
		dir     string
		wantErr string
	}{
		{name: "dot", dir: ".", wantErr: "working directory"},
		{name: "working directory", dir: cwd, wantErr: "working directory"},
		{name: "root", dir: string(filepath.Separator), wantErr: "filesystem root"},
		{name: "content itself", dir: content, wantErr: "content directory"},
		{name: "parent of content", dir: filepath.Dir(content), wantErr: "content directory"},
		{name: "inside content", dir: filepath.Join(content, "public"), wantErr: "content directory"},
		{name: "sibling", dir: filepath.Join(t.TempDir(), "public")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCleanTarget(tt.dir, content)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBuildCmd_RefusesToCleanContent(t *testing.T) {
	content := writeContent(t)

	rootCmd.SetArgs([]string{"build", "--content", content, "--out", content, "--clean"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		contentDir, siteFile, outDir, cleanOut = "", "", "", false
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	assert.ErrorContains(t, rootCmd.Execute(), "overlaps the content directory")
	assert.FileExists(t, filepath.Join(content, "featured", "halite", "index.md"))
}
