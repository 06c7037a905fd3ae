package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/rsilvagit/jobsheet/internal/cache"
	"github.com/rsilvagit/jobsheet/internal/config"
	"github.com/rsilvagit/jobsheet/internal/extract"
	"github.com/rsilvagit/jobsheet/internal/httpclient"
	"github.com/rsilvagit/jobsheet/internal/output"
	"github.com/rsilvagit/jobsheet/internal/scraper"
)

// runScrape fetches the configured page range and saves what it finds.
// Collecting nothing is not an error: a warning is logged and no file is written.
func runScrape(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	client, err := httpclient.New(httpclient.Options{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   cfg.Fetch.Timeout(),
		ProxyURL:  cfg.Fetch.ProxyURL,
	})
	if err != nil {
		return err
	}

	var source scraper.Source = client
	if cfg.Cache.Enabled() {
		pages, err := cache.New(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL())
		if err != nil {
			log.Warn("page cache unavailable, fetching directly", zap.Error(err))
		} else {
			defer func() { _ = pages.Close() }()
			source = cache.NewSource(client, pages, log)
		}
	}

	ex, err := extract.New(cfg.Site.BaseURL)
	if err != nil {
		return err
	}

	jobs, err := scraper.New(source, ex, log).Run(ctx, cfg.Site.StartURL, cfg.Site.MaxPages)
	if err != nil {
		return eris.Wrap(err, "scrape")
	}
	log.Info("total jobs collected", zap.Int("count", len(jobs)))

	if len(jobs) == 0 {
		log.Warn("no jobs collected, the card selectors may need refining",
			zap.String("start_url", cfg.Site.StartURL))
		return nil
	}

	if cfg.Output.Print {
		if err := output.NewConsolePrinter(nil).WriteJobs(jobs); err != nil {
			log.Warn("printing results failed", zap.Error(err))
		}
	}

	xw := output.NewXLSXWriter(cfg.Output.Path)
	if err := xw.WriteJobs(jobs); err != nil {
		return err
	}
	log.Info("saved jobs", zap.Int("count", len(jobs)), zap.String("path", xw.Path()))
	return nil
}
