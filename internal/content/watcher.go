package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/divyank00/portfolio/internal/pubsub"
	"github.com/fsnotify/fsnotify"
)

const (
	metaKeyPath = "path"
	metaKeyOp   = "op"
)

// Watcher publishes a content-change message for every file system event
// under the content directory. It is only started when hot reload is on.
type Watcher struct {
	dir string
	pub pubsub.Publisher

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for dir that publishes on pub.
func NewWatcher(dir string, pub pubsub.Publisher) *Watcher {
	return &Watcher{dir: dir, pub: pub}
}

// Start begins watching dir and every directory below it. A missing content
// directory is not an error; there is simply nothing to watch.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		slog.Debug("Content watcher already active")
		return nil
	}
	if _, err := os.Stat(w.dir); os.IsNotExist(err) {
		slog.Debug("Content directory does not exist, skipping watcher setup", "path", w.dir)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	err = filepath.WalkDir(w.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return fmt.Errorf("failed to add directories to watcher: %w", err)
	}

	w.watcher = watcher
	go w.loop(ctx, watcher)

	slog.Debug("Started content watcher", "directory", w.dir)
	return nil
}

// Close stops the watcher. It is safe to call when Start was never called.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			slog.Debug("Content watcher context cancelled")
			w.Close()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.handle(ctx, watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}

	// New project directories need watching too.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				slog.Error("Failed to watch new directory", "path", event.Name, "error", err)
			}
		}
	}

	rel, err := filepath.Rel(w.dir, event.Name)
	if err != nil {
		rel = event.Name
	}
	msg := pubsub.Message{
		Topic:   pubsub.TopicContentChanged,
		Payload: []byte(filepath.ToSlash(rel)),
		Metadata: map[string]string{
			metaKeyPath: filepath.ToSlash(rel),
			metaKeyOp:   event.Op.String(),
		},
	}
	if err := w.pub.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish content change", "path", rel, "error", err)
	}
}
