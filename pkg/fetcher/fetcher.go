// Package fetcher performs the rate-limited, retried HTTP fetches every page
// and media download goes through.
package fetcher

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"igosint/pkg/config"
	"igosint/pkg/errors"
	"igosint/pkg/logger"
	"igosint/pkg/ratelimit"
	"igosint/pkg/retry"
)

// defaultUserAgents is the rotation pool. Every request picks one at random
// so consecutive fetches do not present an identical fingerprint.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36 Edg/119.0.2151.97",
}

// Fetcher retrieves URLs with a shared minimum spacing between requests and
// exponential backoff on transient failures. All fetches of one run share a
// single Fetcher so the spacing is global.
type Fetcher struct {
	client     *http.Client
	limiter    ratelimit.Limiter
	backoff    retry.BackoffStrategy
	userAgents []string
	maxRetries int
	rng        *rand.Rand
	logger     logger.Logger
}

// Options overrides individual collaborators, mainly for tests.
type Options struct {
	Client     *http.Client
	Limiter    ratelimit.Limiter
	Backoff    retry.BackoffStrategy
	UserAgents []string
	Rand       *rand.Rand
}

// New creates a Fetcher from configuration.
func New(cfg *config.FetcherConfig, log logger.Logger) *Fetcher {
	return NewWithOptions(cfg, log, Options{})
}

// NewWithOptions creates a Fetcher with explicit collaborators. Zero-value
// options fall back to the configured defaults.
func NewWithOptions(cfg *config.FetcherConfig, log logger.Logger, opts Options) *Fetcher {
	f := &Fetcher{
		client:     opts.Client,
		limiter:    opts.Limiter,
		backoff:    opts.Backoff,
		userAgents: opts.UserAgents,
		maxRetries: cfg.MaxRetries,
		rng:        opts.Rand,
		logger:     log,
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: cfg.RequestTimeout}
	}
	if f.limiter == nil {
		f.limiter = ratelimit.NewInterval(cfg.MinRequestInterval)
	}
	if f.backoff == nil {
		f.backoff = retry.FetchBackoff(cfg.BackoffBaseDelay)
	}
	if len(f.userAgents) == 0 {
		f.userAgents = defaultUserAgents
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return f
}

// Fetch retrieves url, honoring the global request spacing and retrying
// transient failures up to the configured retry count. After the retries are
// spent the returned error is an exhausted FetchError recording the total
// attempt count.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	op := func() error {
		f.limiter.Wait()
		b, err := f.attempt(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	err := retry.Do(op, &retry.Config{
		MaxAttempts: f.maxRetries + 1,
		Backoff:     f.backoff,
		RetryIf:     errors.IsRetryableError,
		Context:     ctx,
		Logger:      f.logger.WithField("url", url),
	})
	if err != nil {
		var exhausted *retry.ExhaustedError
		if stderrors.As(err, &exhausted) {
			fe := &errors.FetchError{
				Type:     errors.FetchErrorExhausted,
				URL:      url,
				Attempts: exhausted.Attempts,
				Err:      exhausted.Last,
			}
			var last *errors.FetchError
			if stderrors.As(exhausted.Last, &last) {
				fe.Code = last.Code
			}
			return nil, fe
		}
		return nil, err
	}
	return body, nil
}

// attempt performs a single request.
func (f *Fetcher) attempt(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errors.FetchError{
			Type: errors.FetchErrorInvalidRequest,
			URL:  url,
			Err:  err,
		}
	}
	f.applyHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &errors.FetchError{
			Type: errors.FetchErrorNetwork,
			URL:  url,
			Err:  err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errors.FetchError{
			Type: errors.FetchErrorServer,
			URL:  url,
			Code: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.FetchError{
			Type: errors.FetchErrorNetwork,
			URL:  url,
			Err:  fmt.Errorf("reading response body: %w", err),
		}
	}

	f.logger.DebugWithFields("fetched", map[string]interface{}{
		"url":    url,
		"status": resp.StatusCode,
		"bytes":  len(body),
	})
	return body, nil
}

// applyHeaders sets the browser-shaped header set with a user agent drawn
// from the pool.
func (f *Fetcher) applyHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgents[f.rng.Intn(len(f.userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("DNT", "1")
}
