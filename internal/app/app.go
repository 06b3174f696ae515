package app

import (
	"context"
	"fmt"

	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/feed"
)

// ContentSource supplies the collections shipped with the binary.
type ContentSource func() ([]content.Collection, error)

type Repository interface {
	SaveCollections(ctx context.Context, collections []content.Collection) error
	ListCollections(ctx context.Context) ([]content.Collection, error)
	CountItems(ctx context.Context) (int, error)
}

type Service struct {
	source ContentSource
	repo   Repository
	agg    *feed.Aggregator
}

func NewService(source ContentSource, repo Repository, agg *feed.Aggregator) *Service {
	if agg == nil {
		agg = feed.NewAggregator()
	}
	return &Service{source: source, repo: repo, agg: agg}
}

// Seed replaces stored content with the bundled collections and returns
// the number of items written.
func (s *Service) Seed(ctx context.Context) (int, error) {
	collections, err := s.source()
	if err != nil {
		return 0, fmt.Errorf("load bundled content: %w", err)
	}
	if err := s.repo.SaveCollections(ctx, collections); err != nil {
		return 0, fmt.Errorf("save content to cache: %w", err)
	}
	return content.TotalItems(collections), nil
}

// EnsureSeeded seeds only when storage holds no items. The returned bool
// reports whether a seed happened.
func (s *Service) EnsureSeeded(ctx context.Context) (bool, error) {
	n, err := s.repo.CountItems(ctx)
	if err != nil {
		return false, fmt.Errorf("count cached content: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.Seed(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Collections(ctx context.Context) ([]content.Collection, error) {
	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content from cache: %w", err)
	}
	return collections, nil
}

// Regenerate reads every collection and returns a freshly shuffled feed.
func (s *Service) Regenerate(ctx context.Context) (feed.State, error) {
	collections, err := s.Collections(ctx)
	if err != nil {
		return feed.State{}, err
	}
	return s.agg.Regenerate(collections), nil
}

// Category returns the collection with the given label.
func (s *Service) Category(ctx context.Context, label string) (content.Collection, error) {
	collections, err := s.Collections(ctx)
	if err != nil {
		return content.Collection{}, err
	}
	for _, c := range collections {
		if c.Label == label {
			return c, nil
		}
	}
	return content.Collection{}, fmt.Errorf("unknown category %q", label)
}
