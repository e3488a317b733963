package cricket

import (
	"cricketscrapper/dom"
	"cricketscrapper/extract"
)

// LiveScore reads the headline and the current batters and bowlers.
func (e *Extractor) LiveScore(doc *dom.Document) LiveScoreSnapshot {
	s := e.schemas.LiveScore
	page := s.Page()
	headline := doc.Select(s.Headline)
	panels := doc.Select(s.Panels)

	batsmen := rows(e, page, panels.Nth(s.BattersPanel).Select(s.Rows), func(row dom.Selection) (BattingLine, bool) {
		cols := statColumns(row, s.StatColumns)
		line := BattingLine{
			Name:       extract.Text(row, s.Name),
			Runs:       cols[0],
			Balls:      cols[1],
			Fours:      cols[2],
			Sixes:      cols[3],
			StrikeRate: cols[4],
		}
		return line, line.Name != ""
	})

	bowlers := rows(e, page, panels.Nth(s.BowlersPanel).Select(s.Rows), func(row dom.Selection) (BowlingLine, bool) {
		cols := statColumns(row, s.StatColumns)
		line := BowlingLine{
			Name:    extract.Text(row, s.Name),
			Overs:   cols[0],
			Maidens: cols[1],
			Runs:    cols[2],
			Wickets: cols[3],
			Economy: cols[4],
		}
		return line, line.Name != ""
	})

	return LiveScoreSnapshot{
		Batting: headline.Select(s.BattingTeam).Text(),
		Bowling: headline.Select(s.BowlingTeam).Text(),
		Batsmen: batsmen,
		Bowlers: bowlers,
	}
}

// statColumns reads each column selector under row. The result always has
// five entries so short schemas cannot index out of range.
func statColumns(row dom.Selection, columns []string) [5]string {
	var out [5]string
	for i := 0; i < len(columns) && i < len(out); i++ {
		out[i] = extract.Text(row, columns[i])
	}
	return out
}
