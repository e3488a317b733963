// Package dom parses fetched markup once and exposes total, never-failing
// selection helpers on top of goquery. Absent matches surface as empty
// selections and empty strings; only Parse can fail.
package dom

import (
	"io"
	"strings"

	"cricketscrapper/scrapeerr"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/cockroachdb/errors"
)

// Document is a parsed page.
type Document struct {
	doc *goquery.Document
}

// Parse reads markup from r. Empty input is rejected as unparseable.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, &scrapeerr.ParseError{Err: errors.New("nil reader")}
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &scrapeerr.ParseError{Err: err}
	}
	return ParseString(string(raw))
}

// ParseString parses markup held in memory.
func ParseString(markup string) (*Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, &scrapeerr.ParseError{Err: errors.New("empty document")}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, &scrapeerr.ParseError{Err: err}
	}
	return &Document{doc: doc}, nil
}

// FromGoquery wraps an already parsed goquery document.
func FromGoquery(doc *goquery.Document) *Document {
	return &Document{doc: doc}
}

// Root returns the whole document as a selection.
func (d *Document) Root() Selection {
	if d == nil || d.doc == nil {
		return Selection{}
	}
	return Selection{sel: d.doc.Selection}
}

// Select evaluates selector against the whole document.
func (d *Document) Select(selector string) Selection {
	return d.Root().Select(selector)
}

// ValidSelector reports whether selector compiles as a CSS selector group.
func ValidSelector(selector string) error {
	if strings.TrimSpace(selector) == "" {
		return errors.New("empty selector")
	}
	if _, err := cascadia.ParseGroup(selector); err != nil {
		return errors.Wrapf(err, "invalid selector %q", selector)
	}
	return nil
}
