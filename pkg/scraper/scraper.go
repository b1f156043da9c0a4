// Package scraper orchestrates a profile scan: fetch the page, parse its
// embedded data, normalize it, and write the results to disk.
package scraper

import (
	"context"
	"fmt"
	"time"

	"igosint/internal/downloader"
	"igosint/pkg/config"
	"igosint/pkg/fetcher"
	"igosint/pkg/instagram"
	"igosint/pkg/logger"
	"igosint/pkg/parser"
	"igosint/pkg/profile"
	"igosint/pkg/storage"
)

// Scraper runs profile scans. One Scraper holds one Fetcher, so every scan it
// runs shares the same request pacing.
type Scraper struct {
	cfg     *config.Config
	fetcher *fetcher.Fetcher
	logger  logger.Logger
	now     func() time.Time

	// baseURL is swapped for a test server in tests.
	baseURL string
}

// Options controls one scan.
type Options struct {
	// Download saves profile and post media alongside the metadata.
	Download bool
	// Limit caps how many posts are extracted; 0 uses the configured limit.
	Limit int
}

// Result is the outcome of a completed scan.
type Result struct {
	Record    *profile.Record
	Posts     []profile.Post
	OutputDir string
}

// New creates a Scraper from configuration.
func New(cfg *config.Config, log logger.Logger) *Scraper {
	return &Scraper{
		cfg:     cfg,
		fetcher: fetcher.New(&cfg.Fetcher, log),
		logger:  log,
		now:     time.Now,
		baseURL: instagram.BaseURL,
	}
}

// Run scans one profile. The profile record always lands on disk when the
// scan gets far enough to have one; post metadata and media are skipped for
// private profiles.
func (s *Scraper) Run(ctx context.Context, username string, opts Options) (*Result, error) {
	username = instagram.NormalizeUsername(username)
	if !instagram.IsValidUsername(username) {
		return nil, fmt.Errorf("invalid username %q", username)
	}

	log := s.logger.WithField("username", username)
	log.Info("Starting profile scan")

	page, err := s.fetcher.Fetch(ctx, s.profileURL(username))
	if err != nil {
		return nil, fmt.Errorf("fetching profile page: %w", err)
	}

	raw, err := parser.Parse(page)
	if err != nil {
		return nil, fmt.Errorf("parsing profile page: %w", err)
	}

	rec := profile.Normalize(raw, username, s.now())

	dir, err := storage.AllocateDirectory(s.cfg.Output.BaseDirectory, username)
	if err != nil {
		return nil, fmt.Errorf("allocating output directory: %w", err)
	}
	store := storage.NewManager(dir)
	log = log.WithField("output_dir", dir)

	if err := store.WriteJSON("profile_data.json", rec); err != nil {
		return nil, fmt.Errorf("writing profile data: %w", err)
	}
	log.Info("Wrote profile data")

	result := &Result{Record: rec, OutputDir: dir}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.cfg.Download.PostLimit
	}

	if !rec.IsPrivate {
		result.Posts = profile.ExtractPosts(raw, limit, log)
		if err := store.WriteJSON("posts_metadata.json", result.Posts); err != nil {
			return nil, fmt.Errorf("writing post metadata: %w", err)
		}
		log.WithField("posts", len(result.Posts)).Info("Wrote post metadata")
	}

	if opts.Download {
		dl := downloader.New(s.fetcher, store, &s.cfg.Download, s.logger)
		if !dl.DownloadAll(ctx, rec, result.Posts) {
			log.Warn("Some media downloads were skipped or failed")
		}
	}

	log.Info("Profile scan complete")
	return result, nil
}

func (s *Scraper) profileURL(username string) string {
	return fmt.Sprintf("%s/%s/", s.baseURL, username)
}
