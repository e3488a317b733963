// Package scraper runs the fetch, parse and extract pipeline for each
// upstream page type.
package scraper

import (
	"net/url"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// PageType names one upstream page layout. Several record kinds can be read
// from the same page type.
type PageType string

const (
	PageMatches   PageType = "matches"
	PageLiveScore PageType = "live-score"
	PageScorecard PageType = "scorecard"
	PageSquads    PageType = "squads"
)

// Registry maps page types to upstream path templates. Templates use {id}
// and {slug} placeholders.
type Registry struct {
	paths map[PageType]string
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{paths: make(map[PageType]string)}
}

// DefaultRegistry holds the Cricbuzz paths.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(PageMatches, "/")
	r.Register(PageLiveScore, "/live-cricket-scores/{id}/{slug}")
	r.Register(PageScorecard, "/live-cricket-scorecard/{id}/{slug}")
	r.Register(PageSquads, "/cricket-match-squads/{id}/{slug}")
	return r
}

// Register adds or replaces the template for a page type.
func (r *Registry) Register(page PageType, template string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths[page] = template
}

// URL resolves the template of page against base, escaping id and slug.
func (r *Registry) URL(base string, page PageType, id, slug string) (string, error) {
	r.mu.RLock()
	template, ok := r.paths[page]
	r.mu.RUnlock()
	if !ok {
		return "", errors.Newf("no path registered for page type %q", page)
	}

	path := strings.NewReplacer(
		"{id}", url.PathEscape(id),
		"{slug}", url.PathEscape(slug),
	).Replace(template)

	return strings.TrimRight(base, "/") + path, nil
}
