package scraper

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/rsilvagit/jobsheet/internal/model"
)

// Source retrieves the markup of one listing page.
type Source interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Parser turns one page of markup into job records.
type Parser interface {
	Extract(r io.Reader) ([]model.JobRecord, error)
}

// Scraper walks a bounded range of listing pages and aggregates their records.
type Scraper struct {
	source Source
	parser Parser
	log    *zap.Logger
}

// New creates a Scraper. A nil logger falls back to the global zap logger.
func New(source Source, parser Parser, log *zap.Logger) *Scraper {
	if log == nil {
		log = zap.L()
	}
	return &Scraper{source: source, parser: parser, log: log}
}

// Run fetches pages 1..pages starting at startURL and returns their records in
// page-then-card order. A page that cannot be fetched ends the walk; what was
// collected up to that point is returned without error. A page that cannot be
// parsed contributes no records and the walk continues.
func (s *Scraper) Run(ctx context.Context, startURL string, pages int) ([]model.JobRecord, error) {
	if pages < 1 {
		return nil, eris.Errorf("scraper: page count must be positive, got %d", pages)
	}

	all := []model.JobRecord{}
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			s.log.Warn("scrape cancelled", zap.Int("page", page), zap.Error(err))
			break
		}

		pageURL, err := PageURL(startURL, page)
		if err != nil {
			s.log.Warn("invalid page URL", zap.Int("page", page), zap.Error(err))
			break
		}

		s.log.Info("fetching page", zap.Int("page", page), zap.String("url", pageURL))
		markup, err := s.source.Fetch(ctx, pageURL)
		if err != nil {
			s.log.Warn("error fetching page", zap.Int("page", page), zap.Error(err))
			break
		}

		jobs, err := s.parser.Extract(strings.NewReader(markup))
		if err != nil {
			s.log.Warn("error parsing page, skipping", zap.Int("page", page), zap.Error(err))
			continue
		}

		s.log.Info("found job cards", zap.Int("page", page), zap.Int("count", len(jobs)))
		all = append(all, jobs...)
	}

	return all, nil
}

// PageURL returns the address of the given 1-based page. Page 1 is startURL
// itself; later pages resolve "page-{k}/" against it, so
// https://internshala.com/jobs/ becomes https://internshala.com/jobs/page-2/.
func PageURL(startURL string, page int) (string, error) {
	if page <= 1 {
		return startURL, nil
	}
	base, err := url.Parse(startURL)
	if err != nil {
		return "", eris.Wrapf(err, "scraper: invalid start URL %q", startURL)
	}
	ref := &url.URL{Path: fmt.Sprintf("page-%d/", page)}
	return base.ResolveReference(ref).String(), nil
}
