// Package fetch retrieves upstream pages. A Fetcher makes exactly one attempt
// per call and reports failures as *scrapeerr.FetchError.
package fetch

import (
	"context"
	"net/http"
	"time"

	"cricketscrapper/logging"
	"cricketscrapper/scrapeerr"

	"github.com/valyala/bytebufferpool"
)

// Fetcher returns the raw markup behind url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// browserHeaders mimic a desktop Firefox navigation so the upstream serves
// the same markup a visitor sees.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (X11; Linux x86_64; rv:135.0) Gecko/20100101 Firefox/135.0",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Accept-Encoding":           "gzip, deflate, br, zstd",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Sec-Fetch-User":            "?1",
	"Pragma":                    "no-cache",
	"Cache-Control":             "no-cache",
}

// Client fetches over plain HTTP.
type Client struct {
	http   *http.Client
	logger *logging.Logger
}

// NewClient returns a client whose every request is bounded by timeout.
func NewClient(timeout time.Duration, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// WithHTTPClient swaps the underlying client, mostly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &scrapeerr.FetchError{URL: url, Err: err}
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream unreachable", "url", url, "error", err)
		return "", &scrapeerr.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream error status", "url", url, "status", resp.StatusCode)
		return "", &scrapeerr.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := decodeBody(resp.Header.Get("Content-Encoding"), resp.Body)
	if err != nil {
		return "", &scrapeerr.FetchError{URL: url, Err: err}
	}
	defer body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(body); err != nil {
		return "", &scrapeerr.FetchError{URL: url, Err: err}
	}

	c.logger.Debug("fetched", "url", url, "status", resp.StatusCode, "bytes", buf.Len(), "elapsed", time.Since(started))
	return buf.String(), nil
}
