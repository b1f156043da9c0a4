// Package downloader saves profile and post media to the scan directory.
// Downloads run sequentially with a randomized pause between posts.
package downloader

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"igosint/pkg/config"
	"igosint/pkg/logger"
	"igosint/pkg/profile"
	"igosint/pkg/storage"
)

// Fetcher retrieves a single URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Downloader writes media files for one scan. A failed item is logged and
// skipped; it never aborts the remaining downloads.
type Downloader struct {
	fetcher Fetcher
	store   *storage.Manager
	cfg     *config.DownloadConfig
	rng     *rand.Rand
	sleep   func(time.Duration)
	logger  logger.Logger
}

// New creates a Downloader writing through store.
func New(f Fetcher, store *storage.Manager, cfg *config.DownloadConfig, log logger.Logger) *Downloader {
	return &Downloader{
		fetcher: f,
		store:   store,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:   time.Sleep,
		logger:  log,
	}
}

// DownloadAll saves the profile picture and the media of every post, in
// order. It reports whether every item succeeded. Private profiles are
// skipped entirely.
func (d *Downloader) DownloadAll(ctx context.Context, rec *profile.Record, posts []profile.Post) bool {
	if rec.IsPrivate {
		d.logger.WithField("username", rec.Username).
			Warn("Profile is private, skipping media downloads")
		return false
	}

	ok := d.downloadProfilePic(ctx, rec)

	for i, post := range posts {
		if i > 0 {
			d.sleep(d.postDelay())
		}
		if !d.downloadPost(ctx, &post) {
			ok = false
		}
	}
	return ok
}

// downloadProfilePic saves the profile picture as <username>_profile_pic.jpg.
func (d *Downloader) downloadProfilePic(ctx context.Context, rec *profile.Record) bool {
	if rec.ProfilePicURL == "" {
		d.logger.WithField("username", rec.Username).
			Warn("No profile picture URL, skipping")
		return false
	}

	data, err := d.fetcher.Fetch(ctx, rec.ProfilePicURL)
	if err != nil {
		d.logger.WithError(err).WithField("username", rec.Username).
			Error("Failed to download profile picture")
		return false
	}

	name := fmt.Sprintf("%s_profile_pic.jpg", rec.Username)
	if err := d.store.SaveFile(name, data); err != nil {
		d.logger.WithError(err).WithField("file", name).
			Error("Failed to save profile picture")
		return false
	}

	d.logger.WithField("file", name).Info("Saved profile picture")
	return true
}

// downloadPost saves one post's media under posts/.
func (d *Downloader) downloadPost(ctx context.Context, post *profile.Post) bool {
	log := d.logger.WithField("post_id", post.ID)

	if post.DisplayURL == "" {
		log.Warn("Post has no media URL, skipping")
		return false
	}

	data, err := d.fetcher.Fetch(ctx, post.DisplayURL)
	if err != nil {
		log.WithError(err).Error("Failed to download post media")
		return false
	}

	ext := "jpg"
	if post.IsVideo {
		ext = "mp4"
	}
	name := fmt.Sprintf("posts/%s.%s", post.ID, ext)
	if err := d.store.SaveFile(name, data); err != nil {
		log.WithError(err).WithField("file", name).Error("Failed to save post media")
		return false
	}

	log.WithField("file", name).Info("Saved post media")
	return true
}

// postDelay picks a pause in [MinPostDelay, MaxPostDelay).
func (d *Downloader) postDelay() time.Duration {
	span := d.cfg.MaxPostDelay - d.cfg.MinPostDelay
	if span <= 0 {
		return d.cfg.MinPostDelay
	}
	return d.cfg.MinPostDelay + time.Duration(d.rng.Int63n(int64(span)))
}
