package cricket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemasValidate(t *testing.T) {
	require.NoError(t, DefaultSchemas().Validate())
}

func TestSchemasValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Schemas)
		want   string
	}{
		{
			name:   "broken selector",
			mutate: func(s *Schemas) { s.Matches.Cards = "ul[" },
			want:   "schema matches.cards",
		},
		{
			name:   "empty selector",
			mutate: func(s *Schemas) { s.MatchInfo.Value = "" },
			want:   "schema match-info.value",
		},
		{
			name:   "short stat columns",
			mutate: func(s *Schemas) { s.LiveScore.StatColumns = s.LiveScore.StatColumns[:3] },
			want:   "schema live-score.stat_columns",
		},
		{
			name:   "wicket separator",
			mutate: func(s *Schemas) { s.Wickets.Separator = "" },
			want:   "scorecard-wickets",
		},
		{
			name:   "yet to bat separator",
			mutate: func(s *Schemas) { s.BattingScorecard.YetToBatSep = "" },
			want:   "scorecard-batting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchemas()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSchemasPages(t *testing.T) {
	pages := make([]string, 0)
	for _, p := range DefaultSchemas().All() {
		pages = append(pages, p.Page())
	}
	assert.Equal(t, []string{
		"matches", "live-score", "scorecard-batting", "scorecard-wickets",
		"scorecard-bowling", "match-info", "squads", "match-facts",
	}, pages)
}
