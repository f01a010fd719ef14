package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Hub fans order changes out to every open view of a restaurant over redis
// pub/sub, so all order-svc replicas see each other's writes.
type Hub struct {
	Client *redis.Client
}

func NewHub(client *redis.Client) *Hub {
	return &Hub{Client: client}
}

func Channel(restaurantID string) string {
	return "orders:" + restaurantID
}

func (h *Hub) NotifyChange(ctx context.Context, event domain.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return h.Client.Publish(ctx, Channel(event.RestaurantID), payload).Err()
}

// Subscribe opens a feed for one restaurant. It returns once redis has
// confirmed the subscription, so no change published afterwards is missed.
func (h *Hub) Subscribe(ctx context.Context, restaurantID string) (domain.Subscription, error) {
	pubsub := h.Client.Subscribe(ctx, Channel(restaurantID))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan domain.ChangeEvent, 16),
		done:   make(chan struct{}),
	}
	go sub.run(pubsub.Channel())
	return sub, nil
}

type Subscription struct {
	pubsub *redis.PubSub
	events chan domain.ChangeEvent
	done   chan struct{}
	once   sync.Once
	err    error
}

func (s *Subscription) Events() <-chan domain.ChangeEvent {
	return s.events
}

// Close releases the redis subscription. Further calls are no-ops.
func (s *Subscription) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.err = s.pubsub.Close()
	})
	return s.err
}

func (s *Subscription) run(messages <-chan *redis.Message) {
	defer close(s.events)
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var event domain.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Warn().Err(err).Str("channel", msg.Channel).Msg("dropping malformed change event")
				continue
			}
			select {
			case s.events <- event:
			case <-s.done:
				return
			}
		}
	}
}
