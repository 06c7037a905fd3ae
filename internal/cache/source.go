package cache

import (
	"context"

	"go.uber.org/zap"

	"github.com/rsilvagit/jobsheet/internal/scraper"
)

// Store is the subset of Cache used by Source.
type Store interface {
	Get(ctx context.Context, pageURL string) (string, bool)
	Set(ctx context.Context, pageURL, markup string) error
}

// Source serves pages from a Store and falls through to the wrapped source
// on a miss. Fetch failures are never cached.
type Source struct {
	next  scraper.Source
	store Store
	log   *zap.Logger
}

// NewSource wraps next with store. A nil logger falls back to the global zap logger.
func NewSource(next scraper.Source, store Store, log *zap.Logger) *Source {
	if log == nil {
		log = zap.L()
	}
	return &Source{next: next, store: store, log: log}
}

func (s *Source) Fetch(ctx context.Context, pageURL string) (string, error) {
	if markup, ok := s.store.Get(ctx, pageURL); ok {
		s.log.Debug("page cache hit", zap.String("url", pageURL))
		return markup, nil
	}

	markup, err := s.next.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	if err := s.store.Set(ctx, pageURL, markup); err != nil {
		s.log.Warn("page cache write failed", zap.String("url", pageURL), zap.Error(err))
	}
	return markup, nil
}
