package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-saas/agg-svc/internal/service"
	"restaurant-saas/agg-svc/internal/storage"
	"restaurant-saas/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.With().Str("service", "agg-svc").Logger()

	settings, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(settings.Postgres)
	defer db.Close()

	rdb := config.MustInitRedis(settings.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(settings.Kafka.Broker, settings.Kafka.OrdersTopic, settings.Kafka.GroupID)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb))
	if err := consumer.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("consumer failed")
	}
	log.Info().Msg("aggregation service stopped")
}
