// Package extract holds the small field rules page extractors are composed
// from. Every rule is total: missing input yields "" or false.
package extract

import (
	"strings"

	"cricketscrapper/dom"

	"github.com/cockroachdb/errors"
)

// Text is the trimmed text of the nodes matching selector under node.
func Text(node dom.Selection, selector string) string {
	return node.Select(selector).Text()
}

// Positional is the text of the k-th (0-based) match of selector under node.
func Positional(node dom.Selection, selector string, k int) string {
	return node.Select(selector).Nth(k).Text()
}

// Segment splits text on sep and returns the k-th segment trimmed, or "" when
// there are not enough segments.
func Segment(text, sep string, k int) string {
	if sep == "" || k < 0 {
		return ""
	}
	parts := strings.Split(text, sep)
	if k >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[k])
}

// SplitTrimmed splits text on sep, trims every segment and drops empty ones.
// The result is never nil.
func SplitTrimmed(text, sep string) []string {
	out := []string{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	for _, part := range strings.Split(text, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Present reports whether a marker element exists under node.
func Present(node dom.Selection, selector string) bool {
	return node.Select(selector).Exists()
}

// PairSpec locates a label and its value inside one container.
type PairSpec struct {
	Label      string
	Value      string
	LabelIndex int
	ValueIndex int
}

// Pairs walks containers in document order and accumulates label -> value.
// A later label overwrites an earlier one; rows with an empty label are skipped.
func Pairs(containers dom.Selection, spec PairSpec) map[string]string {
	out := make(map[string]string)
	containers.Each(func(_ int, node dom.Selection) {
		label := Positional(node, spec.Label, spec.LabelIndex)
		if label == "" {
			return
		}
		out[label] = Positional(node, spec.Value, spec.ValueIndex)
	})
	return out
}

// PathSegments splits a reference path on "/" and returns the segments at
// positions i and j. A path without enough segments is an error.
func PathSegments(path string, i, j int) (string, string, error) {
	parts := strings.Split(path, "/")
	need := max(i, j) + 1
	if len(parts) < need {
		return "", "", errors.Newf("path %q has %d segments, want at least %d", path, len(parts), need)
	}
	return parts[i], parts[j], nil
}
