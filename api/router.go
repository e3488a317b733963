package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cricketscrapper/logging"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// NewRouter registers every route on a fresh mux router.
func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", h.Liveness).Methods(http.MethodGet)
	router.HandleFunc("/matches", h.Matches).Methods(http.MethodGet)
	router.HandleFunc("/live-cricket-score/{matchId}/{matchSlug}", h.LiveScore).Methods(http.MethodGet)
	router.HandleFunc("/live-cricket-scorecard-batter/{matchId}/{matchSlug}", h.BattingScorecard).Methods(http.MethodGet)
	router.HandleFunc("/live-cricket-scorecard-wickets/{matchId}/{matchSlug}", h.Wickets).Methods(http.MethodGet)
	router.HandleFunc("/live-cricket-scorecard-bowler/{matchId}/{matchSlug}", h.BowlingScorecard).Methods(http.MethodGet)
	router.HandleFunc("/live-cricket-match-info/{matchId}/{matchSlug}", h.MatchInfo).Methods(http.MethodGet)
	router.HandleFunc("/live-cricket-match-squad/{matchId}/{matchSlug}", h.Squads).Methods(http.MethodGet)
	router.HandleFunc("/live-cricket-match-info-online/{matchId}/{matchSlug}", h.MatchFacts).Methods(http.MethodGet)
	router.HandleFunc("/fetch-news/{matchSlug}", h.MatchNews).Methods(http.MethodGet)
	router.HandleFunc("/api/fetch-news-all", h.AllNews).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(h.NotFound)
	return router
}

// Wrap adds request ids, access logging, panic recovery and CORS around next.
func Wrap(next http.Handler, allowedOrigins []string, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger: logger}),
		handlers.PrintRecoveryStack(false),
	)
	access := handlers.CustomLoggingHandler(io.Discard, recovery(cors(next)), accessLog(logger))

	return withRequestID(access)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return r.Header.Get(requestIDHeader)
}

// accessLog writes one structured line per request through logger instead of
// the writer gorilla hands it.
func accessLog(logger *logging.Logger) handlers.LogFormatter {
	return func(_ io.Writer, p handlers.LogFormatterParams) {
		logger.Info("http request",
			"method", p.Request.Method,
			"path", p.URL.Path,
			"status", p.StatusCode,
			"bytes", p.Size,
			"duration_ms", time.Since(p.TimeStamp).Milliseconds(),
			"request_id", requestID(p.Request),
		)
	}
}

type recoveryLogger struct {
	logger *logging.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("panic recovered", "panic", fmt.Sprint(v...))
}
