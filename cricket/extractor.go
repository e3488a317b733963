// Package cricket turns parsed Cricbuzz pages into typed records. Each page
// type has a schema (selectors) and a stateless extractor method: select the
// repeating containers, read fields from each in document order, drop rows
// whose identity field is empty, and keep the rest in the order found.
package cricket

import (
	"cricketscrapper/dom"
	"cricketscrapper/logging"
)

// Extractor holds read-only schemas and a logger. Methods keep no state
// between calls, so the same document always yields the same records.
type Extractor struct {
	schemas Schemas
	logger  *logging.Logger
}

func NewExtractor(schemas Schemas, logger *logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Extractor{schemas: schemas, logger: logger}
}

func (e *Extractor) Schemas() Schemas {
	return e.schemas
}

func (e *Extractor) skipped(page string, index int, reason string) {
	e.logger.Debug("row skipped", "page", page, "index", index, "reason", reason)
}

// rows is the common container loop: build one record per node, keep it
// when ok is true.
func rows[T any](e *Extractor, page string, containers dom.Selection, build func(node dom.Selection) (T, bool)) []T {
	out := make([]T, 0, containers.Len())
	containers.Each(func(i int, node dom.Selection) {
		record, ok := build(node)
		if !ok {
			e.skipped(page, i, "missing required field")
			return
		}
		out = append(out, record)
	})
	return out
}
