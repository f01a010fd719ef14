package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-saas/config"
	httpapi "restaurant-saas/order-svc/internal/api/http"
	"restaurant-saas/order-svc/internal/auth"
	"restaurant-saas/order-svc/internal/realtime"
	"restaurant-saas/order-svc/internal/service"
	"restaurant-saas/order-svc/internal/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.With().Str("service", "order-svc").Logger()

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

	kafkaWriter := config.NewKafkaWriter(settings.Kafka.Broker, settings.Kafka.OrdersTopic)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	codec := service.NewTokenCodec(settings.TokenTTL)
	hub := realtime.NewHub(rdb)
	carts := storage.NewRedisCartStore(rdb, settings.CartTTL)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	authClient := auth.NewClient(settings.AuthURL, settings.AuthServiceKey, &http.Client{Timeout: 10 * time.Second})

	handler := &httpapi.Handler{
		Restaurants: service.NewRestaurantService(repo, repo, repo, codec),
		Menu:        service.NewMenuService(repo),
		Tables:      service.NewTableService(repo, codec, service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL}),
		Carts:       service.NewCartService(carts, repo, codec),
		Orders:      service.NewOrderService(repo, repo, repo, codec, carts, hub, publisher),
		Views:       service.NewViewService(repo, repo, hub),
		Staff:       service.NewStaffService(repo, authClient, settings.PublicBaseURL, settings.LoginPath),
		Analytics:   service.NewAnalyticsService(storage.NewRedisAnalytics(rdb), repo),
		Auth:        auth.NewResolver(authClient, repo),
		LoginPath:   settings.LoginPath,
	}

	server := httpapi.NewServer(settings.HTTPAddr, httpapi.NewRouter(handler, log.Logger))
	server.BaseContext = func(net.Listener) context.Context { return ctx }

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("addr", settings.HTTPAddr).Msg("order service starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
