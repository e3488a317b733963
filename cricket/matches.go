package cricket

import (
	"cricketscrapper/dom"
	"cricketscrapper/extract"
	"cricketscrapper/scrapeerr"
)

// Matches reads the home page match carousel. A card is kept when either team
// name is present; a kept card whose link cannot be split into id and slug
// fails the whole page.
func (e *Extractor) Matches(doc *dom.Document) ([]MatchSummary, error) {
	s := e.schemas.Matches
	page := s.Page()

	out := make([]MatchSummary, 0)
	var failure error
	doc.Select(s.Cards).Each(func(i int, card dom.Selection) {
		if failure != nil {
			return
		}

		team1 := teamLine(card.Select(s.Team1Block), s)
		team2 := teamLine(card.Select(s.Team2Block), s)
		if team1.Name == "" && team2.Name == "" {
			e.skipped(page, i, "no team blocks")
			return
		}

		href := card.Select(s.Link).First().Attr("href")
		id, slug, err := extract.PathSegments(href, s.IDSegment, s.SlugSegment)
		if err != nil {
			failure = scrapeerr.NewExtraction(page, "card %d: %v", i, err)
			return
		}

		header := extract.Text(card, s.Header)
		out = append(out, MatchSummary{
			Tournament: extract.Segment(header, s.HeaderSeparator, 0),
			Format:     extract.Segment(header, s.HeaderSeparator, 1),
			MatchID:    id,
			MatchSlug:  slug,
			Team1:      team1,
			Team2:      team2,
			Status:     extract.Text(card, s.Status),
		})
	})
	if failure != nil {
		return nil, failure
	}
	return out, nil
}

func teamLine(block dom.Selection, s MatchListSchema) TeamLine {
	return TeamLine{
		Name:  extract.Positional(block, s.TeamName, 0),
		Score: extract.Positional(block, s.TeamScore, s.TeamScoreIndex),
	}
}
