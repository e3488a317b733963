package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryURL(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		page PageType
		id   string
		slug string
		want string
	}{
		{PageMatches, "", "", "https://www.cricbuzz.com/"},
		{PageLiveScore, "12345", "india-vs-australia", "https://www.cricbuzz.com/live-cricket-scores/12345/india-vs-australia"},
		{PageScorecard, "12345", "india-vs-australia", "https://www.cricbuzz.com/live-cricket-scorecard/12345/india-vs-australia"},
		{PageSquads, "99", "eng-vs-nz", "https://www.cricbuzz.com/cricket-match-squads/99/eng-vs-nz"},
	}

	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			got, err := r.URL("https://www.cricbuzz.com/", tt.page, tt.id, tt.slug)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistryEscapesSegments(t *testing.T) {
	got, err := DefaultRegistry().URL("http://upstream", PageLiveScore, "1/2", "a b")
	require.NoError(t, err)
	assert.Equal(t, "http://upstream/live-cricket-scores/1%2F2/a%20b", got)
}

func TestRegistryUnknownPage(t *testing.T) {
	_, err := NewRegistry().URL("http://upstream", PageMatches, "", "")
	assert.Error(t, err)
}
