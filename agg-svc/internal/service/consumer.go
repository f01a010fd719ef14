package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"restaurant-saas/agg-svc/internal/domain"
	"restaurant-saas/agg-svc/internal/storage"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const readRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start consumes order events until ctx ends. Offsets are committed after
// each message is handled, whether or not it counted.
func (c *Consumer) Start(ctx context.Context) error {
	log.Info().Msg("starting order event consumer")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error().Err(err).Msg("failed to read message")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(readRetryDelay):
			}
			continue
		}

		c.handle(ctx, message)

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error().Err(err).Int64("offset", message.Offset).Msg("failed to commit message")
		}
	}
}

func (c *Consumer) handle(ctx context.Context, message kafka.Message) {
	var event domain.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		log.Warn().Err(err).Int64("offset", message.Offset).Msg("skipping malformed order event")
		return
	}
	if err := c.Process(ctx, event); err != nil {
		log.Error().Err(err).
			Str("order_id", event.OrderID).
			Str("restaurant_id", event.RestaurantID).
			Msg("failed to aggregate order")
	}
}

// Process folds a completed order into the restaurant analytics. Other
// events are ignored.
func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) error {
	if !event.Completed() {
		return nil
	}
	if event.OrderID == "" || event.RestaurantID == "" {
		return errors.New("order event without order or restaurant id")
	}

	lines, err := c.Store.OrderLines(ctx, event.OrderID)
	if err != nil {
		return err
	}

	err = c.Store.RecordCompletion(ctx, event, lines)
	if errors.Is(err, storage.ErrAlreadyRecorded) {
		log.Debug().Str("order_id", event.OrderID).Msg("order already aggregated")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("order_id", event.OrderID).
		Str("restaurant_id", event.RestaurantID).
		Float64("total", event.Total).
		Int("items", len(lines)).
		Msg("order aggregated")
	return nil
}
