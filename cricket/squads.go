package cricket

import (
	"cricketscrapper/dom"
	"cricketscrapper/extract"
)

// Squads reads the playing XI, the bench and the support staff. Entries
// without a name are dropped in every group.
func (e *Extractor) Squads(doc *dom.Document) SquadRoster {
	s := e.schemas.Squads
	page := s.Page()

	playing := rows(e, page, doc.Select(s.PlayingXI), func(node dom.Selection) (PlayerEntry, bool) {
		sub := extract.Present(node, s.SubstituteMarker)
		entry := PlayerEntry{
			Name:         extract.Text(node, s.PlayerName),
			Role:         extract.Positional(node, s.Role, 0),
			IsSubstitute: &sub,
		}
		return entry, entry.Name != ""
	})

	bench := rows(e, page, doc.Select(s.Bench), func(node dom.Selection) (PlayerEntry, bool) {
		return player(node, s.BenchName, s.Role)
	})

	staff := rows(e, page, doc.Select(s.Staff), func(node dom.Selection) (PlayerEntry, bool) {
		return player(node, s.StaffName, s.Role)
	})

	if len(playing)+len(bench)+len(staff) == 0 {
		e.logger.Warn("squads page yielded no players", "page", page)
	}

	return SquadRoster{PlayingXI: playing, Bench: bench, SupportStaff: staff}
}

func player(node dom.Selection, nameSel, roleSel string) (PlayerEntry, bool) {
	entry := PlayerEntry{
		Name: extract.Positional(node, nameSel, 0),
		Role: extract.Positional(node, roleSel, 0),
	}
	return entry, entry.Name != ""
}
