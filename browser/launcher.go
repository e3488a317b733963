// Package browser drives headless Chrome for pages that only render their
// content after scripts run.
package browser

import (
	"context"
	"fmt"
	"time"

	"cricketscrapper/logging"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cockroachdb/errors"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"

// Launcher starts a fresh browser for every FetchHTML call and tears it down
// afterwards. Nothing is shared between calls.
type Launcher struct {
	opts   []chromedp.ExecAllocatorOption
	settle time.Duration
	logger *logging.Logger
}

// NewLauncher builds a launcher with the default headless flags. extra
// options are appended and win over the defaults.
func NewLauncher(logger *logging.Logger, extra ...chromedp.ExecAllocatorOption) *Launcher {
	if logger == nil {
		logger = logging.Default()
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(defaultUserAgent),
	)
	opts = append(opts, extra...)

	return &Launcher{
		opts:   opts,
		settle: time.Second,
		logger: logger,
	}
}

// WithSettle sets how long to wait after navigation before reading the page.
func (l *Launcher) WithSettle(d time.Duration) *Launcher {
	l.settle = d
	return l
}

// FetchHTML navigates to url, waits for waitSelector when it is set, and
// returns the outer HTML of the document. timeout bounds the whole call,
// browser start included.
func (l *Launcher) FetchHTML(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, l.opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...any) {
		l.logger.Debug(fmt.Sprintf(format, args...), "component", "chromedp")
	}))
	defer browserCancel()

	chromedp.ListenTarget(browserCtx, func(ev any) {
		if _, ok := ev.(*page.EventLoadEventFired); ok {
			l.logger.Debug("browser page loaded", "url", url)
		}
	})

	started := time.Now()
	var html string
	actions := []chromedp.Action{chromedp.Navigate(url)}
	if waitSelector != "" {
		actions = append(actions, chromedp.WaitVisible(waitSelector, chromedp.ByQuery))
	}
	if l.settle > 0 {
		actions = append(actions, chromedp.Sleep(l.settle))
	}
	actions = append(actions, chromedp.OuterHTML("html", &html, chromedp.ByQuery))

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return "", errors.Wrapf(err, "browser load %s", url)
	}

	l.logger.Debug("browser fetch done", "url", url, "bytes", len(html), "elapsed", time.Since(started))
	return html, nil
}
