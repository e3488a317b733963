package cricket

import (
	"cricketscrapper/dom"
	"cricketscrapper/extract"
)

// MatchInfo collects the label/value rows of the scorecard info table.
func (e *Extractor) MatchInfo(doc *dom.Document) MatchInfo {
	s := e.schemas.MatchInfo
	info := extract.Pairs(doc.Select(s.Rows), extract.PairSpec{Label: s.Label, Value: s.Value})
	if len(info) == 0 {
		e.logger.Debug("no match info rows", "page", s.Page())
	}
	return MatchInfo{MatchInfo: info}
}

// MatchFacts reads the facts block of the squads page and projects the known
// labels into a fixed shape. Labels are compared verbatim.
func (e *Extractor) MatchFacts(doc *dom.Document) MatchFacts {
	s := e.schemas.MatchFacts
	facts := extract.Pairs(doc.Select(s.Rows), extract.PairSpec{Label: s.Item, Value: s.Item, ValueIndex: 1})
	return ProjectFacts(facts, s.Labels)
}

// ProjectFacts picks the fixed fields out of a label -> value mapping.
// Anything not matching a label exactly is dropped.
func ProjectFacts(facts map[string]string, labels FactLabels) MatchFacts {
	lookup := func(label string) *string {
		v, ok := facts[label]
		if !ok {
			return nil
		}
		return &v
	}
	return MatchFacts{
		Match:        lookup(labels.Match),
		Date:         lookup(labels.Date),
		Toss:         lookup(labels.Toss),
		Time:         lookup(labels.Time),
		Venue:        lookup(labels.Venue),
		Umpires:      lookup(labels.Umpires),
		ThirdUmpire:  lookup(labels.ThirdUmpire),
		MatchReferee: lookup(labels.MatchReferee),
	}
}
