package content

import (
	"context"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Source contributes fishing content. Reload is called on every registry rebuild
// and must return the source's complete contribution, not a delta.
type Source interface {
	Name() string
	Reload(ctx context.Context) (domain.FishingContent, error)
}

// StaticSource serves fixed content, mostly for tests and embedding hosts
type StaticSource struct {
	name    string
	content domain.FishingContent
}

// NewStaticSource wraps already built content
func NewStaticSource(name string, c domain.FishingContent) *StaticSource {
	if name == "" {
		name = SourceNameStatic
	}
	return &StaticSource{name: name, content: c}
}

func (s *StaticSource) Name() string { return s.name }

// Reload returns a copy of the content so callers cannot alias the source's slices
func (s *StaticSource) Reload(context.Context) (domain.FishingContent, error) {
	return domain.FishingContent{}.Merge(s.content), nil
}
