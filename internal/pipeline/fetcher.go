package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ppiankov/citypop/internal/cache"
	"github.com/ppiankov/citypop/internal/logger"
	"github.com/ppiankov/citypop/internal/model"
	"github.com/ppiankov/citypop/internal/util"
)

var (
	// ErrUnexpectedStatus is returned for non-2xx responses
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrDisallowed is returned when robots.txt forbids the fetch
	ErrDisallowed = errors.New("disallowed by robots.txt")
)

// Fetcher fetches the source page. It issues a single GET; there is no retry.
type Fetcher struct {
	client    *resty.Client
	userAgent string
	maxBytes  int64
	cache     cache.Cache         // nil when caching is disabled
	robots    *util.RobotsChecker // nil when robots.txt is not consulted
	log       logger.Logger
}

// FetchResult contains the fetched HTML and metadata
type FetchResult struct {
	HTML       string
	StatusCode int
	FinalURL   string
	FromCache  bool
}

// NewFetcher creates a Fetcher from the source and cache configuration
func NewFetcher(src model.SourceConfig, cacheCfg model.CacheConfig, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.NewNop()
	}

	client := resty.New()
	client.SetTransport(newTransport(src.InsecureTLS, src.HTTPProxy, src.HTTPSProxy))
	client.SetTimeout(src.Timeout)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(3))
	client.SetHeader("User-Agent", src.UserAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")

	f := &Fetcher{
		client:    client,
		userAgent: src.UserAgent,
		maxBytes:  src.MaxBodyBytes,
		log:       log,
	}
	if cacheCfg.Enabled {
		f.cache = cache.NewLayeredCache(cacheCfg.MemoryTTL, cacheCfg.Dir, cacheCfg.DiskTTL)
	}
	if src.RespectRobots {
		f.robots = util.NewRobotsChecker(client, src.UserAgent)
	}
	return f
}

// Fetch retrieves the HTML at rawURL, consulting the cache and robots.txt when enabled
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	key := cache.PageKey(rawURL)
	if f.cache != nil {
		if page, found := f.cache.Get(key); found {
			f.log.Info("page served from cache",
				logger.String("url", rawURL),
				logger.String("fetched_at", page.FetchedAt.Format(time.RFC3339)))
			return &FetchResult{HTML: string(page.Body), StatusCode: http.StatusOK, FinalURL: page.FinalURL, FromCache: true}, nil
		}
	}

	if f.robots != nil {
		allowed, err := f.robots.Allowed(ctx, rawURL)
		if err != nil && !allowed {
			return nil, fmt.Errorf("robots.txt check: %w", err)
		}
		if err != nil {
			f.log.Warn("robots.txt check failed, continuing", logger.Error(err))
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %s", ErrDisallowed, rawURL)
		}
	}

	start := time.Now()
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status())
	}

	data, err := io.ReadAll(io.LimitReader(body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	finalURL := rawURL
	if resp.RawResponse != nil && resp.RawResponse.Request != nil {
		finalURL = resp.RawResponse.Request.URL.String()
	}

	f.log.Info("page fetched",
		logger.String("url", finalURL),
		logger.Int("status", resp.StatusCode()),
		logger.Int("bytes", len(data)),
		logger.Int64("elapsed_ms", time.Since(start).Milliseconds()))

	if f.cache != nil {
		page := &cache.Page{URL: rawURL, FinalURL: finalURL, Body: data, FetchedAt: time.Now()}
		if err := f.cache.Set(key, page, 0); err != nil {
			f.log.Warn("cache write failed", logger.Error(err))
		}
	}

	return &FetchResult{
		HTML:       string(data),
		StatusCode: resp.StatusCode(),
		FinalURL:   finalURL,
	}, nil
}
