// Package news looks up recent articles for a search term. Backends sit
// behind Searcher so match extraction never depends on them.
package news

import (
	"context"
	"strings"

	"cricketscrapper/config"

	"github.com/cockroachdb/errors"
)

// Article is one news search result.
type Article struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	Source      string `json:"source,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	ArticleType string `json:"articleType,omitempty"`
}

// Timeframe restricts results to a recent window.
type Timeframe string

const (
	LastHour    Timeframe = "1h"
	Last12Hours Timeframe = "12h"
	LastDay     Timeframe = "1d"
	LastWeek    Timeframe = "7d"
	LastYear    Timeframe = "1y"
)

// GeneralTerm is the search term for the all-cricket news feed.
const GeneralTerm = "Cricket News"

func (t Timeframe) Valid() bool {
	switch t {
	case LastHour, Last12Hours, LastDay, LastWeek, LastYear:
		return true
	}
	return false
}

type Query struct {
	Term      string
	Timeframe Timeframe
	Region    config.RegionConfig
}

func (q Query) validate() error {
	if strings.TrimSpace(q.Term) == "" {
		return errors.New("news query: empty search term")
	}
	if !q.Timeframe.Valid() {
		return errors.Newf("news query: unsupported timeframe %q", q.Timeframe)
	}
	return nil
}

// Searcher returns the articles matching a query. Either every article is
// returned or an error; there are no partial results.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]Article, error)
}

// SlugToPhrase turns a match slug such as "india-vs-australia-1st-test" into
// a search phrase.
func SlugToPhrase(slug string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return strings.Join(strings.Fields(replaced), " ")
}
