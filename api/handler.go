// Package api exposes the scraping pipeline and the news lookup over HTTP.
package api

import (
	"context"
	"net/http"
	"regexp"

	"cricketscrapper/config"
	"cricketscrapper/cricket"
	"cricketscrapper/logging"
	"cricketscrapper/news"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

const livenessMessage = "Hello! Thank you for checking out. I am working !!"

// MatchService is the scraping pipeline as seen by the handlers.
type MatchService interface {
	Matches(ctx context.Context) ([]cricket.MatchSummary, error)
	LiveScore(ctx context.Context, id, slug string) (cricket.LiveScoreSnapshot, error)
	BattingScorecard(ctx context.Context, id, slug string) (cricket.InningsRecord, error)
	Wickets(ctx context.Context, id, slug string) (cricket.WicketList, error)
	BowlingScorecard(ctx context.Context, id, slug string) (cricket.BowlerList, error)
	MatchInfo(ctx context.Context, id, slug string) (cricket.MatchInfo, error)
	Squads(ctx context.Context, id, slug string) (cricket.SquadRoster, error)
	MatchFacts(ctx context.Context, id, slug string) (cricket.MatchFacts, error)
}

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:[-_][A-Za-z0-9]+)*$`)

type matchParams struct {
	MatchID   string `validate:"required,numeric,max=20"`
	MatchSlug string `validate:"required,max=200,slug"`
}

type slugParams struct {
	MatchSlug string `validate:"required,max=200,slug"`
}

type Handler struct {
	matches   MatchService
	news      news.Searcher
	region    config.RegionConfig
	validator *validator.Validate
	logger    *logging.Logger
}

func NewHandler(matches MatchService, searcher news.Searcher, region config.RegionConfig, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return &Handler{
		matches:   matches,
		news:      searcher,
		region:    region,
		validator: v,
		logger:    logger,
	}
}

func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, livenessMessage)
}

func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	out, err := h.matches.Matches(r.Context())
	if err != nil {
		h.fail(w, r, upstreamFailure, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) LiveScore(w http.ResponseWriter, r *http.Request) {
	serveMatch(h, w, r, upstreamFailure, h.matches.LiveScore)
}

func (h *Handler) BattingScorecard(w http.ResponseWriter, r *http.Request) {
	serveMatch(h, w, r, upstreamFailure, h.matches.BattingScorecard)
}

func (h *Handler) Wickets(w http.ResponseWriter, r *http.Request) {
	serveMatch(h, w, r, upstreamFailure, h.matches.Wickets)
}

func (h *Handler) BowlingScorecard(w http.ResponseWriter, r *http.Request) {
	serveMatch(h, w, r, upstreamFailure, h.matches.BowlingScorecard)
}

func (h *Handler) MatchInfo(w http.ResponseWriter, r *http.Request) {
	serveMatch(h, w, r, upstreamFailure, h.matches.MatchInfo)
}

func (h *Handler) Squads(w http.ResponseWriter, r *http.Request) {
	serveMatch(h, w, r, squadsFailure, h.matches.Squads)
}

func (h *Handler) MatchFacts(w http.ResponseWriter, r *http.Request) {
	serveMatch(h, w, r, factsFailure, h.matches.MatchFacts)
}

// MatchNews searches the last day of news for the match slug turned into a
// phrase.
func (h *Handler) MatchNews(w http.ResponseWriter, r *http.Request) {
	params := slugParams{MatchSlug: mux.Vars(r)["matchSlug"]}
	if err := h.validator.StructCtx(r.Context(), params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid matchSlug")
		return
	}
	h.searchNews(w, r, news.Query{
		Term:      news.SlugToPhrase(params.MatchSlug),
		Timeframe: news.LastDay,
		Region:    h.region,
	})
}

// AllNews searches the last twelve hours of general cricket news.
func (h *Handler) AllNews(w http.ResponseWriter, r *http.Request) {
	h.searchNews(w, r, news.Query{
		Term:      news.GeneralTerm,
		Timeframe: news.Last12Hours,
		Region:    h.region,
	})
}

func (h *Handler) searchNews(w http.ResponseWriter, r *http.Request, q news.Query) {
	articles, err := h.news.Search(r.Context(), q)
	if err != nil {
		h.fail(w, r, newsFailure, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, f failure, err error) {
	status, message := f.resolve(err)
	h.logger.Error("request failed",
		"path", r.URL.Path,
		"status", status,
		"request_id", requestID(r),
		"error", err,
	)
	writeError(w, status, message)
}

// serveMatch validates the match path parameters, runs op and writes its
// record or the route's failure.
func serveMatch[T any](h *Handler, w http.ResponseWriter, r *http.Request, f failure,
	op func(ctx context.Context, id, slug string) (T, error)) {
	vars := mux.Vars(r)
	params := matchParams{MatchID: vars["matchId"], MatchSlug: vars["matchSlug"]}
	if err := h.validator.StructCtx(r.Context(), params); err != nil {
		writeError(w, http.StatusBadRequest, invalidParamMessage(err))
		return
	}

	out, err := op(r.Context(), params.MatchID, params.MatchSlug)
	if err != nil {
		h.fail(w, r, f, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func invalidParamMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "MatchID":
			return "invalid matchId"
		case "MatchSlug":
			return "invalid matchSlug"
		}
	}
	return "invalid path parameters"
}
