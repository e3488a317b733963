package news

import (
	"context"
	"net/url"
	"strings"
	"time"

	"cricketscrapper/logging"
	"cricketscrapper/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

const googleNewsBase = "https://news.google.com"

// PageLoader renders a page in a real browser. *browser.Launcher satisfies it.
type PageLoader interface {
	FetchHTML(ctx context.Context, url, waitSelector string, timeout time.Duration) (string, error)
}

// BrowserSearcher loads the Google News search page in a headless browser and
// reads the article cards.
type BrowserSearcher struct {
	loader  PageLoader
	baseURL string
	timeout time.Duration
	logger  *logging.Logger
}

func NewBrowserSearcher(loader PageLoader, timeout time.Duration, logger *logging.Logger) *BrowserSearcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &BrowserSearcher{loader: loader, baseURL: googleNewsBase, timeout: timeout, logger: logger}
}

// SearchURL builds the search page address, e.g.
// https://news.google.com/search?q=india+vs+australia+when%3A1d&hl=en-US&gl=US&ceid=US%3Aen
func SearchURL(base string, q Query) string {
	v := url.Values{}
	v.Set("q", q.Term+" when:"+string(q.Timeframe))
	v.Set("hl", q.Region.Hl)
	v.Set("gl", q.Region.Gl)
	v.Set("ceid", q.Region.Ceid)
	return strings.TrimRight(base, "/") + "/search?" + v.Encode()
}

func (b *BrowserSearcher) Search(ctx context.Context, q Query) ([]Article, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	target := SearchURL(b.baseURL, q)
	html, err := b.loader.FetchHTML(ctx, target, "", b.timeout)
	if err != nil {
		return nil, errors.Wrap(err, "news search page")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse news search page")
	}

	articles := ParseArticles(doc, b.baseURL)
	b.logger.Info("news search", "term", q.Term, "timeframe", q.Timeframe, "articles", len(articles))
	return articles, nil
}

// ParseArticles reads every article card of a search results page. Cards
// without a title or a link are dropped. Relative links and images are
// resolved against base.
func ParseArticles(doc *goquery.Document, base string) []Article {
	articles := make([]Article, 0)
	doc.Find("article").Each(func(_ int, card *goquery.Selection) {
		title, kind := articleTitle(card)
		link := utils.ResolveURL(base, articleLink(card))
		if title == "" || link == "" {
			return
		}

		timeNode := card.Find("time").First()
		publishedAt, _ := timeNode.Attr("datetime")
		source := strings.TrimSpace(card.Find("div[data-n-tid]").First().Text())

		favicon := utils.ResolveURL(base, firstAttr(card.Find("img.qEdqNd"), "src"))
		if favicon == "" {
			favicon = utils.GetFavicon(link)
		}

		articles = append(articles, Article{
			Title:       title,
			Subtitle:    strings.TrimSpace(card.Find(".Da10Tb").First().Text()),
			URL:         link,
			Image:       utils.ResolveURL(base, articleImage(card)),
			Source:      source,
			Favicon:     favicon,
			PublishedAt: publishedAt,
			ArticleType: kind,
		})
	})
	return articles
}

// articleTitle reports the card title and its layout kind.
func articleTitle(card *goquery.Selection) (string, string) {
	if t := strings.TrimSpace(card.Find("h4").First().Text()); t != "" {
		return t, "regular"
	}
	if t := strings.TrimSpace(card.Find("a.JtKRv").First().Text()); t != "" {
		return t, "regular"
	}
	if t := strings.TrimSpace(card.Find("div > div + div > div a").First().Text()); t != "" {
		return t, "topicFeatured"
	}
	if t := strings.TrimSpace(card.Find("div > a").First().Text()); t != "" {
		return t, "topicSmall"
	}
	return "", ""
}

func articleLink(card *goquery.Selection) string {
	for _, sel := range []string{`a[href^="./article"]`, `a[href^="./read"]`} {
		if href := firstAttr(card.Find(sel), "href"); href != "" {
			return href
		}
	}
	return ""
}

// articleImage prefers the largest srcset candidate.
func articleImage(card *goquery.Selection) string {
	img := card.Find("figure img").First()
	if srcset := firstAttr(img, "srcset"); srcset != "" {
		fields := strings.Fields(srcset)
		if len(fields) >= 2 {
			return fields[len(fields)-2]
		}
	}
	return firstAttr(img, "src")
}

func firstAttr(sel *goquery.Selection, name string) string {
	v, _ := sel.First().Attr(name)
	return strings.TrimSpace(v)
}
