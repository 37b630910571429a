package pipeline

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"
)

// newTransport builds the HTTP transport for the fetch client.
// TLS certificates are verified unless insecure is set.
func newTransport(insecure bool, httpProxy, httpsProxy string) *http.Transport {
	return &http.Transport{
		Proxy:                 proxyFunc(httpProxy, httpsProxy),
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: insecure}, //nolint:gosec // opt-in via --insecure
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		IdleConnTimeout:       30 * time.Second,
	}
}

// proxyFunc returns a proxy selector for the configured proxies.
// With no proxy configured it falls back to environment variables.
func proxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
