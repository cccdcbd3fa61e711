// Package content holds the build-time data queries: the featured project
// collection and the avatar image, loaded from a content directory into an
// immutable Snapshot that the page components render from.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/divyank00/portfolio/internal/domain"
)

// Source answers the two queries the page needs.
type Source interface {
	// Projects returns featured projects, newest first. The slice may contain
	// nil entries; renderers filter them.
	Projects(ctx context.Context) ([]*domain.Project, error)
	// Avatar returns the profile picture, or nil when there is none.
	Avatar(ctx context.Context) (*domain.Image, error)
}

// Snapshot is a read-only view of the content at one point in time.
type Snapshot struct {
	Projects []*domain.Project
	Avatar   *domain.Image
	LoadedAt time.Time
}

// Load runs both queries against src.
func Load(ctx context.Context, src Source) (Snapshot, error) {
	projects, err := src.Projects(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading projects: %w", err)
	}
	avatar, err := src.Avatar(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading avatar: %w", err)
	}
	return Snapshot{Projects: projects, Avatar: avatar, LoadedAt: time.Now()}, nil
}
