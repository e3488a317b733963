package fetch

import (
	"context"
	"time"

	"cricketscrapper/scrapeerr"
)

// PageLoader renders a page in a real browser. *browser.Launcher satisfies it.
type PageLoader interface {
	FetchHTML(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error)
}

// BrowserFetcher fetches through a rendering browser instead of plain HTTP.
type BrowserFetcher struct {
	loader  PageLoader
	timeout time.Duration
}

func NewBrowserFetcher(loader PageLoader, timeout time.Duration) *BrowserFetcher {
	return &BrowserFetcher{loader: loader, timeout: timeout}
}

func (b *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := b.loader.FetchHTML(ctx, url, "", b.timeout)
	if err != nil {
		return "", &scrapeerr.FetchError{URL: url, Err: err}
	}
	return html, nil
}
