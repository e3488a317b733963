package cricket

import (
	"strings"

	"cricketscrapper/dom"
	"cricketscrapper/extract"
)

// BattingScorecard reads every batting row of the scorecard page, plus the
// extras and total summaries and the did-not-bat list.
func (e *Extractor) BattingScorecard(doc *dom.Document) InningsRecord {
	s := e.schemas.BattingScorecard

	innings := rows(e, s.Page(), doc.Select(s.Rows), func(row dom.Selection) (ScorecardBatter, bool) {
		line := ScorecardBatter{
			Batsman:       extract.Text(row, s.Batsman),
			DismissalInfo: extract.Text(row, s.Dismissal),
			Runs:          extract.Positional(row, s.Runs, 0),
			Balls:         extract.Positional(row, s.Stat, 1),
			Fours:         extract.Positional(row, s.Stat, 2),
			Sixes:         extract.Positional(row, s.Stat, 3),
			StrikeRate:    extract.Positional(row, s.Stat, 4),
		}
		return line, line.Batsman != ""
	})

	root := doc.Root()
	labels := doc.Select(s.SummaryLabel)
	return InningsRecord{
		InningsData: innings,
		Extras:      [2]string{labels.Nth(0).Text(), extract.Text(root, s.ExtrasValue)},
		Total:       [2]string{labels.Nth(1).Text(), extract.Text(root, s.TotalValue)},
		YetToBat:    extract.SplitTrimmed(doc.Select(s.YetToBat).Children(s.YetToBatNames).Text(), s.YetToBatSep),
	}
}

// Wickets parses fall-of-wicket entries. An entry missing its delimiters is
// skipped; the rest of the page is still returned.
func (e *Extractor) Wickets(doc *dom.Document) WicketList {
	s := e.schemas.Wickets

	wickets := rows(e, s.Page(), doc.Select(s.Entries), func(entry dom.Selection) (Wicket, bool) {
		return ParseWicket(entry.Text(), s)
	})
	return WicketList{Wickets: wickets}
}

// ParseWicket splits "<score> (<player>, <balls>)". ok is false when the open
// delimiter or the separator is missing. Only the segment right after the
// player is kept as balls.
func ParseWicket(text string, s WicketsSchema) (Wicket, bool) {
	score, rest, found := strings.Cut(text, s.Open)
	if !found {
		return Wicket{}, false
	}
	parts := strings.Split(rest, s.Separator)
	if len(parts) < 2 {
		return Wicket{}, false
	}
	player, balls := parts[0], parts[1]
	if s.Close != "" {
		balls = strings.Replace(balls, s.Close, "", 1)
	}
	return Wicket{
		Score:      strings.TrimSpace(score),
		Player:     strings.TrimSpace(player),
		BallsFaced: strings.TrimSpace(balls),
	}, true
}

// BowlingScorecard reads bowling rows; rows without a bowler link are not
// bowling rows and are dropped.
func (e *Extractor) BowlingScorecard(doc *dom.Document) BowlerList {
	s := e.schemas.BowlingScorecard

	bowlers := rows(e, s.Page(), doc.Select(s.Rows), func(row dom.Selection) (ScorecardBowler, bool) {
		var cols [7]string
		for i := 0; i < len(s.Columns) && i < len(cols); i++ {
			cols[i] = extract.Text(row, s.Columns[i])
		}
		line := ScorecardBowler{
			Name:    extract.Text(row, s.Name),
			Overs:   cols[0],
			Maidens: cols[1],
			Runs:    cols[2],
			Wickets: cols[3],
			NoBalls: cols[4],
			Wides:   cols[5],
			Economy: cols[6],
		}
		return line, line.Name != ""
	})
	return BowlerList{Bowlers: bowlers}
}
