package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "local_travel/internal/adapters/http_server"
	"local_travel/internal/adapters/observability"
	redisad "local_travel/internal/adapters/redis"
	"local_travel/internal/app"
	"local_travel/internal/shared"
	mysqlrepo "local_travel/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

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

	// repositories
	destinations := mysqlrepo.NewDestinationRepo(db)
	reviews := mysqlrepo.NewReviewRepo(db)
	users := mysqlrepo.NewUserRepo(db)

	// redis-backed adapters
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := redisad.NewSessions(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	notes := redisad.NewNotifications(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionTTL)

	// services
	auth := app.NewAuthService(users, sessions, notes, cfg.SessionTTL)
	catalog := app.NewCatalogService(destinations, reviews, users, cache, cfg.CacheTTL)
	reviewSvc := app.NewReviewService(reviews, destinations, users, cache)
	collections := app.NewCollectionService(users, destinations, reviews)
	notifications := app.NewNotificationService(notes)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Auth:          auth,
		Catalog:       catalog,
		Reviews:       reviewSvc,
		Collections:   collections,
		Notifications: notifications,
		AuthRPS:       cfg.AuthRPS,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
