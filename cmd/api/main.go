package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "github.com/boatbie14/funch-hotel-backend-v2/internal/adapters/http_server"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/adapters/observability"
	redisad "github.com/boatbie14/funch-hotel-backend-v2/internal/adapters/redis"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/app"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/shared"
	mysqlrepo "github.com/boatbie14/funch-hotel-backend-v2/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	stores := domain.Stores{
		Geo:     repo,
		Hotels:  repo,
		Rooms:   repo,
		Options: repo,
		Prices:  repo,
		Seo:     repo,
		Images:  repo,
		Pages:   repo,
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(context.Background()); err != nil {
		// reads fall through to MySQL while redis is away
		log.Warn().Err(err).Msg("redis unreachable, running without cache hits")
	}

	h := &server.Handlers{
		Rooms:  app.NewRoomService(stores, cache, log.Logger),
		Hotels: app.NewHotelService(stores, cache, log.Logger),
		Geo:    app.NewGeoService(stores, cache, log.Logger),
		Pages:  app.NewPageService(stores, cache, log.Logger),
		Seo:    app.NewSeoService(stores, log.Logger),
		Images: app.NewImageService(stores, log.Logger),
		Q:      app.NewQueryService(stores, cache, cfg.CacheTTL),
	}

	// http
	srv := server.New(cfg.RateRPS, cfg.RateBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
