package scraper

import (
	"context"
	"net/http"
	"testing"

	"cricketscrapper/cricket"
	"cricketscrapper/logging"
	"cricketscrapper/scrapeerr"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	pages map[string]string
	err   error
	calls []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	if f.err != nil {
		return "", f.err
	}
	return f.pages[url], nil
}

const base = "http://cricbuzz.test"

func newTestService(f *stubFetcher) *Service {
	return NewService(f, DefaultRegistry(), cricket.NewExtractor(cricket.DefaultSchemas(), logging.NewNop()), base, logging.NewNop())
}

const homePage = `<html><body><ul class="cb-col cb-col-100 videos-carousal-wrapper cb-mtch-crd-rt-itm">
<li class="cb-view-all-ga cb-match-card cb-bg-white"><a href="/live-cricket-scores/555/pak-vs-sl-3rd-t20i">
<div class="cb-mtch-crd-hdr">Sri Lanka tour of Pakistan • 3rd T20I</div>
<div class="cb-hmscg-tm-bat-scr"><div class="cb-col-50"><span class="text-normal">PAK</span></div><div class="cb-col-50">180/4</div></div>
<div class="cb-hmscg-tm-bwl-scr"><div class="cb-col-50"><span class="text-normal">SL</span></div><div class="cb-col-50"></div></div>
<div class="cb-mtch-crd-state">Innings Break</div></a></li>
</ul></body></html>`

const scorecardPage = `<html><body>
<div class="cb-col cb-col-100 cb-scrd-itms"><div class="cb-col cb-col-25"><a>Babar Azam</a></div><div class="cb-col cb-col-33"><span>b Hasaranga</span></div><div class="cb-col cb-col-8 text-right text-bold">71</div><div class="cb-col cb-col-8 text-right">48</div><div class="cb-col cb-col-8 text-right">7</div><div class="cb-col cb-col-8 text-right">2</div><div class="cb-col cb-col-8 text-right">147.92</div></div>
<div class="cb-col cb-col-100 cb-col-rt cb-font-13"><span>60-1 (Rizwan, 7.3 ov)</span></div>
<div class="cb-col cb-col-100 cb-mtch-info-itm"><div class="cb-col-27">Venue</div><div class="cb-col-73">Gaddafi Stadium</div></div>
</body></html>`

func TestServiceMatches(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{base + "/": homePage}}

	matches, err := newTestService(f).Matches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "555", matches[0].MatchID)
	assert.Equal(t, "pak-vs-sl-3rd-t20i", matches[0].MatchSlug)
	assert.Equal(t, "3rd T20I", matches[0].Format)
	assert.Equal(t, []string{base + "/"}, f.calls)
}

func TestServiceScorecardPages(t *testing.T) {
	url := base + "/live-cricket-scorecard/555/pak-vs-sl-3rd-t20i"
	f := &stubFetcher{pages: map[string]string{url: scorecardPage}}
	svc := newTestService(f)
	ctx := context.Background()

	batting, err := svc.BattingScorecard(ctx, "555", "pak-vs-sl-3rd-t20i")
	require.NoError(t, err)
	require.Len(t, batting.InningsData, 1)
	assert.Equal(t, "Babar Azam", batting.InningsData[0].Batsman)
	assert.Equal(t, "147.92", batting.InningsData[0].StrikeRate)

	wickets, err := svc.Wickets(ctx, "555", "pak-vs-sl-3rd-t20i")
	require.NoError(t, err)
	assert.Equal(t, []cricket.Wicket{{Score: "60-1", Player: "Rizwan", BallsFaced: "7.3 ov"}}, wickets.Wickets)

	info, err := svc.MatchInfo(ctx, "555", "pak-vs-sl-3rd-t20i")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Venue": "Gaddafi Stadium"}, info.MatchInfo)

	bowlers, err := svc.BowlingScorecard(ctx, "555", "pak-vs-sl-3rd-t20i")
	require.NoError(t, err)
	assert.Empty(t, bowlers.Bowlers)

	assert.Len(t, f.calls, 4)
	for _, c := range f.calls {
		assert.Equal(t, url, c)
	}
}

func TestServicePropagatesFetchStatus(t *testing.T) {
	f := &stubFetcher{err: &scrapeerr.FetchError{URL: base, StatusCode: http.StatusForbidden}}

	_, err := newTestService(f).LiveScore(context.Background(), "1", "a-vs-b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scrapeerr.ErrFetch))
	assert.Equal(t, http.StatusForbidden, scrapeerr.StatusCode(err))
	assert.Equal(t, "Request failed with status code 403", err.Error())
}

func TestServiceEmptyBodyIsParseError(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{}}

	_, err := newTestService(f).Squads(context.Background(), "1", "a-vs-b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scrapeerr.ErrParse))
	assert.Equal(t, http.StatusInternalServerError, scrapeerr.StatusCode(err))
}

func TestServiceEmptyPageIsNotAnError(t *testing.T) {
	url := base + "/cricket-match-squads/1/a-vs-b"
	f := &stubFetcher{pages: map[string]string{url: "<html><body><p>match abandoned</p></body></html>"}}

	facts, err := newTestService(f).MatchFacts(context.Background(), "1", "a-vs-b")
	require.NoError(t, err)
	assert.Equal(t, cricket.MatchFacts{}, facts)
}
