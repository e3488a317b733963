package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cricketscrapper/api"
	"cricketscrapper/browser"
	"cricketscrapper/cache"
	"cricketscrapper/config"
	"cricketscrapper/cricket"
	"cricketscrapper/fetch"
	"cricketscrapper/logging"
	"cricketscrapper/news"
	"cricketscrapper/scraper"

	"github.com/cockroachdb/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	handler, cleanup, err := build(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server is running", "port", cfg.Port, "fetch_mode", cfg.FetchMode, "news_backend", cfg.NewsBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return
	}
	logger.Info("http server stopped")
}

// build wires the pipeline, the news backend and the HTTP layer from cfg.
func build(cfg config.Config, logger *logging.Logger) (http.Handler, func(), error) {
	schemas, err := cfg.Schemas()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load page schemas")
	}

	launcher := browser.NewLauncher(logger)

	var fetcher fetch.Fetcher = fetch.NewClient(cfg.FetchTimeout, logger)
	if cfg.FetchMode == config.FetchModeBrowser {
		fetcher = fetch.NewBrowserFetcher(launcher, cfg.FetchTimeout)
	}

	service := scraper.NewService(
		fetcher,
		scraper.DefaultRegistry(),
		cricket.NewExtractor(schemas, logger),
		cfg.CricbuzzBaseURL,
		logger,
	)

	var searcher news.Searcher
	switch cfg.NewsBackend {
	case config.NewsBackendRSS:
		searcher = news.NewRSSSearcher(cfg.NewsTimeout, logger)
	default:
		searcher = news.NewBrowserSearcher(launcher, cfg.NewsTimeout, logger)
	}

	cleanup := func() {}
	if cfg.NewsCacheEnabled() {
		store := cache.New(cfg.RedisAddr, logger)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := store.Ping(pingCtx); err != nil {
			logger.Warn("redis unreachable, news cache will fall through", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		searcher = news.NewCachedSearcher(searcher, store, cfg.NewsCacheTTL)
		cleanup = func() { _ = store.Close() }
	}

	h := api.NewHandler(service, searcher, cfg.NewsRegion, logger)
	return api.Wrap(api.NewRouter(h), cfg.CORSAllowedOrigins, logger), cleanup, nil
}
