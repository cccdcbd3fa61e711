package content

import (
	"context"
	"log/slog"
	"sync"

	"github.com/divyank00/portfolio/internal/pubsub"
)

// Cache keeps the most recent Snapshot so requests never hit the source directly.
type Cache struct {
	src  Source
	mu   sync.RWMutex
	snap Snapshot
}

// NewCache creates an empty cache over src. Call Reload before serving.
func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// Reload queries the source and swaps in the new snapshot. On failure the
// previous snapshot stays in place.
func (c *Cache) Reload(ctx context.Context) error {
	snap, err := Load(ctx, c.src)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
	slog.Debug("Content snapshot loaded", "projects", len(snap.Projects), "avatar", snap.Avatar != nil)
	return nil
}

// Snapshot returns the current snapshot.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Listen reloads the cache every time a content change is published on sub.
func (c *Cache) Listen(ctx context.Context, sub pubsub.Subscriber) error {
	return sub.Subscribe(ctx, pubsub.TopicContentChanged, func(ctx context.Context, msg pubsub.Message) error {
		slog.Info("Content changed, reloading", "path", msg.Metadata[metaKeyPath], "op", msg.Metadata[metaKeyOp])
		return c.Reload(ctx)
	})
}
