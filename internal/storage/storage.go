package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/divyank00/portfolio/internal/domain"
	"github.com/spf13/afero"
)

// AferoStore implements Store on any afero filesystem: the OS for real
// content and export directories, memory in tests.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// Fs exposes the underlying filesystem.
func (s *AferoStore) Fs() afero.Fs {
	return s.fs
}

// cleanPath rejects paths that would leave the store root.
func cleanPath(p string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	if cleaned == "/" || strings.Contains(p, "..") {
		return "", fmt.Errorf("%w: invalid path %q", domain.ErrNotFound, p)
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}

// Save writes the content of the reader to the given path, creating parent directories.
func (s *AferoStore) Save(ctx context.Context, p string, reader io.Reader) (int64, error) {
	name, err := cleanPath(p)
	if err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// Delete removes a file.
func (s *AferoStore) Delete(ctx context.Context, p string) error {
	name, err := cleanPath(p)
	if err != nil {
		return err
	}
	return s.fs.Remove(name)
}

// Get opens a regular file for reading. Missing files and directories report domain.ErrNotFound.
func (s *AferoStore) Get(ctx context.Context, p string) (io.ReadCloser, error) {
	name, err := cleanPath(p)
	if err != nil {
		return nil, err
	}
	info, err := s.fs.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, p)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrNotFound, p)
	}
	return s.fs.OpenFile(name, os.O_RDONLY, 0)
}
