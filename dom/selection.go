package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selection is an ordered set of nodes in document order. The zero value is
// an empty selection and every method is safe to call on it.
type Selection struct {
	sel *goquery.Selection
}

func (s Selection) valid() bool {
	return s.sel != nil && s.sel.Length() > 0
}

// Len is the number of nodes in the selection.
func (s Selection) Len() int {
	if s.sel == nil {
		return 0
	}
	return s.sel.Length()
}

// Exists reports whether the selection holds at least one node.
func (s Selection) Exists() bool {
	return s.valid()
}

// Select evaluates selector within the subtrees of the selected nodes only.
func (s Selection) Select(selector string) Selection {
	if !s.valid() {
		return Selection{}
	}
	return Selection{sel: s.sel.Find(selector)}
}

// Children keeps the direct children of the selected nodes matching selector.
func (s Selection) Children(selector string) Selection {
	if !s.valid() {
		return Selection{}
	}
	return Selection{sel: s.sel.ChildrenFiltered(selector)}
}

// Nth returns the i-th node (0-based). Out of range yields an empty selection.
func (s Selection) Nth(i int) Selection {
	if !s.valid() || i < 0 || i >= s.sel.Length() {
		return Selection{}
	}
	return Selection{sel: s.sel.Eq(i)}
}

// First is Nth(0).
func (s Selection) First() Selection {
	return s.Nth(0)
}

// Each calls fn for every node in document order.
func (s Selection) Each(fn func(i int, node Selection)) {
	if !s.valid() {
		return
	}
	s.sel.Each(func(i int, node *goquery.Selection) {
		fn(i, Selection{sel: node})
	})
}

// Text concatenates the text of all descendants of all nodes, trimmed.
func (s Selection) Text() string {
	if !s.valid() {
		return ""
	}
	return strings.TrimSpace(s.sel.Text())
}

// Attr returns the attribute of the first node, or "" when absent.
func (s Selection) Attr(name string) string {
	if !s.valid() {
		return ""
	}
	return s.sel.AttrOr(name, "")
}
