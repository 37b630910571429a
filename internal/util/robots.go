package util

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/temoto/robotstxt"
)

// RobotsChecker checks robots.txt compliance for a single page fetch
type RobotsChecker struct {
	client    *resty.Client
	userAgent string
}

// NewRobotsChecker creates a robots.txt checker that shares the fetch client
func NewRobotsChecker(client *resty.Client, userAgent string) *RobotsChecker {
	return &RobotsChecker{
		client:    client,
		userAgent: userAgent,
	}
}

// Allowed reports whether rawURL may be fetched. When robots.txt cannot be
// retrieved the fetch is allowed and the retrieval error is returned for
// logging. An unparseable rawURL returns false with the parse error.
func (r *RobotsChecker) Allowed(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", r.userAgent).
		Get(robotsURL)
	if err != nil {
		return true, fmt.Errorf("fetch robots.txt: %w", err)
	}

	// 4xx allows everything, 5xx disallows everything
	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode(), resp.Body())
	if err != nil {
		return true, fmt.Errorf("parse robots.txt: %w", err)
	}

	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, NormalizeUserAgent(r.userAgent)), nil
}

// NormalizeUserAgent reduces a user agent to its product token for robots.txt matching
func NormalizeUserAgent(ua string) string {
	parts := strings.Fields(ua)
	if len(parts) > 0 {
		return strings.Split(parts[0], "/")[0]
	}
	return ua
}
