package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"local_travel/internal/adapters/observability"
	"local_travel/internal/domain"
	"local_travel/internal/shared"
	mysqlrepo "local_travel/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("destinations", len(shared.SeedDestinations)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.NewDestinationRepo(db)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, d := range shared.SeedDestinations {
		d := d

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(dest domain.Destination) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := repo.Put(ctx, dest); err != nil {
				log.Warn().Str("id", dest.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("id", dest.ID).Msg("seed ok")
		}(d)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
