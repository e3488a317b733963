package scraper

import (
	"context"
	"time"

	"cricketscrapper/cricket"
	"cricketscrapper/dom"
	"cricketscrapper/fetch"
	"cricketscrapper/logging"

	"github.com/cockroachdb/errors"
)

// Service fetches one upstream page per call and extracts a single record
// kind from it. It keeps no per-request state.
type Service struct {
	fetcher   fetch.Fetcher
	registry  *Registry
	extractor *cricket.Extractor
	baseURL   string
	logger    *logging.Logger
}

func NewService(fetcher fetch.Fetcher, registry *Registry, extractor *cricket.Extractor, baseURL string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		fetcher:   fetcher,
		registry:  registry,
		extractor: extractor,
		baseURL:   baseURL,
		logger:    logger,
	}
}

func (s *Service) document(ctx context.Context, page PageType, id, slug string) (*dom.Document, error) {
	target, err := s.registry.URL(s.baseURL, page, id, slug)
	if err != nil {
		return nil, err
	}

	html, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	doc, err := dom.ParseString(html)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return doc, nil
}

// scrape runs fetch, parse and extract for one record kind and logs the
// outcome. A page with zero records is not an error.
func scrape[T any](ctx context.Context, s *Service, page PageType, record, id, slug string,
	extract func(*dom.Document) (T, error), count func(T) int) (T, error) {
	var zero T
	started := time.Now()

	doc, err := s.document(ctx, page, id, slug)
	if err != nil {
		s.logger.Error("scrape failed", "record", record, "matchId", id, "error", err)
		return zero, err
	}

	out, err := extract(doc)
	if err != nil {
		s.logger.Error("extraction failed", "record", record, "matchId", id, "error", err)
		return zero, err
	}

	n := count(out)
	if n == 0 {
		s.logger.Warn("page yielded no records", "record", record, "matchId", id)
	}
	s.logger.Info("scraped", "record", record, "matchId", id, "records", n, "elapsed", time.Since(started))
	return out, nil
}

func total[T any](f func(*dom.Document) T) func(*dom.Document) (T, error) {
	return func(doc *dom.Document) (T, error) {
		return f(doc), nil
	}
}

func (s *Service) Matches(ctx context.Context) ([]cricket.MatchSummary, error) {
	return scrape(ctx, s, PageMatches, "matches", "", "",
		s.extractor.Matches,
		func(m []cricket.MatchSummary) int { return len(m) })
}

func (s *Service) LiveScore(ctx context.Context, id, slug string) (cricket.LiveScoreSnapshot, error) {
	return scrape(ctx, s, PageLiveScore, "live-score", id, slug,
		total(s.extractor.LiveScore),
		func(l cricket.LiveScoreSnapshot) int { return len(l.Batsmen) + len(l.Bowlers) })
}

func (s *Service) BattingScorecard(ctx context.Context, id, slug string) (cricket.InningsRecord, error) {
	return scrape(ctx, s, PageScorecard, "scorecard-batting", id, slug,
		total(s.extractor.BattingScorecard),
		func(r cricket.InningsRecord) int { return len(r.InningsData) })
}

func (s *Service) Wickets(ctx context.Context, id, slug string) (cricket.WicketList, error) {
	return scrape(ctx, s, PageScorecard, "scorecard-wickets", id, slug,
		total(s.extractor.Wickets),
		func(w cricket.WicketList) int { return len(w.Wickets) })
}

func (s *Service) BowlingScorecard(ctx context.Context, id, slug string) (cricket.BowlerList, error) {
	return scrape(ctx, s, PageScorecard, "scorecard-bowling", id, slug,
		total(s.extractor.BowlingScorecard),
		func(b cricket.BowlerList) int { return len(b.Bowlers) })
}

func (s *Service) MatchInfo(ctx context.Context, id, slug string) (cricket.MatchInfo, error) {
	return scrape(ctx, s, PageScorecard, "match-info", id, slug,
		total(s.extractor.MatchInfo),
		func(m cricket.MatchInfo) int { return len(m.MatchInfo) })
}

func (s *Service) Squads(ctx context.Context, id, slug string) (cricket.SquadRoster, error) {
	return scrape(ctx, s, PageSquads, "squads", id, slug,
		total(s.extractor.Squads),
		func(r cricket.SquadRoster) int { return len(r.PlayingXI) + len(r.Bench) + len(r.SupportStaff) })
}

func (s *Service) MatchFacts(ctx context.Context, id, slug string) (cricket.MatchFacts, error) {
	return scrape(ctx, s, PageSquads, "match-facts", id, slug,
		total(s.extractor.MatchFacts),
		func(f cricket.MatchFacts) int {
			if f == (cricket.MatchFacts{}) {
				return 0
			}
			return 1
		})
}
