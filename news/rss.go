package news

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cricketscrapper/logging"
	"cricketscrapper/utils"

	"github.com/cockroachdb/errors"
	"github.com/mmcdole/gofeed"
)

// RSSSearcher queries the Google News RSS search feed. It needs no browser.
type RSSSearcher struct {
	parser  *gofeed.Parser
	baseURL string
	logger  *logging.Logger
}

func NewRSSSearcher(timeout time.Duration, logger *logging.Logger) *RSSSearcher {
	if logger == nil {
		logger = logging.Default()
	}
	fp := gofeed.NewParser()
	fp.Client = &http.Client{Timeout: timeout}
	return &RSSSearcher{parser: fp, baseURL: googleNewsBase, logger: logger}
}

// WithBaseURL points the searcher at another feed host.
func (r *RSSSearcher) WithBaseURL(base string) *RSSSearcher {
	r.baseURL = base
	return r
}

// FeedURL is the RSS counterpart of SearchURL.
func FeedURL(base string, q Query) string {
	v := url.Values{}
	v.Set("q", q.Term+" when:"+string(q.Timeframe))
	v.Set("hl", q.Region.Hl)
	v.Set("gl", q.Region.Gl)
	v.Set("ceid", q.Region.Ceid)
	return strings.TrimRight(base, "/") + "/rss/search?" + v.Encode()
}

func (r *RSSSearcher) Search(ctx context.Context, q Query) ([]Article, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	feed, err := r.parser.ParseURLWithContext(FeedURL(r.baseURL, q), ctx)
	if err != nil {
		return nil, errors.Wrap(err, "news feed")
	}

	articles := FeedToArticles(feed)
	r.logger.Info("news feed search", "term", q.Term, "timeframe", q.Timeframe, "articles", len(articles))
	return articles, nil
}

// FeedToArticles converts feed items. Google News titles carry the publisher
// as a " - Source" suffix, which is split off into Source.
func FeedToArticles(feed *gofeed.Feed) []Article {
	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		title, source := item.Title, ""
		if i := strings.LastIndex(item.Title, " - "); i > 0 {
			title, source = item.Title[:i], item.Title[i+3:]
		}

		article := Article{
			Title:       strings.TrimSpace(title),
			URL:         item.Link,
			Source:      strings.TrimSpace(source),
			Favicon:     utils.GetFavicon(item.Link),
			ArticleType: "regular",
		}
		if item.PublishedParsed != nil {
			article.PublishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
		} else {
			article.PublishedAt = item.Published
		}
		if item.Image != nil {
			article.Image = item.Image.URL
		}
		articles = append(articles, article)
	}
	return articles
}
