package service

import (
	"context"

	"restaurant-saas/agg-svc/internal/domain"
	"restaurant-saas/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	OrderLines(ctx context.Context, orderID string) ([]domain.ItemLine, error)
	RecordCompletion(ctx context.Context, event domain.OrderEvent, lines []domain.ItemLine) error
}

// MessageReader is the part of *kafka.Reader the consumer drives.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	Process(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
