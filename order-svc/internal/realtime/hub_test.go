package realtime

import (
	"context"
	"testing"
	"time"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHub(t *testing.T) *Hub {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewHub(client)
}

func receive(t *testing.T, events <-chan domain.ChangeEvent) domain.ChangeEvent {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "feed closed")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("no change event received")
		return domain.ChangeEvent{}
	}
}

func TestHub_DeliversToOwnRestaurantOnly(t *testing.T) {
	hub := newHub(t)
	ctx := context.Background()

	r1, err := hub.Subscribe(ctx, "r1")
	require.NoError(t, err)
	defer r1.Close()
	r2, err := hub.Subscribe(ctx, "r2")
	require.NoError(t, err)
	defer r2.Close()

	require.NoError(t, hub.NotifyChange(ctx, domain.ChangeEvent{
		RestaurantID: "r1", Collection: domain.CollectionOrders, Action: domain.ActionInsert, OrderID: "o1",
	}))

	event := receive(t, r1.Events())
	assert.Equal(t, "o1", event.OrderID)
	assert.Equal(t, domain.ActionInsert, event.Action)

	select {
	case event := <-r2.Events():
		t.Fatalf("unexpected event for r2: %+v", event)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHub_SkipsMalformedPayloads(t *testing.T) {
	hub := newHub(t)
	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, "r1")
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, hub.Client.Publish(ctx, Channel("r1"), "not json").Err())
	require.NoError(t, hub.NotifyChange(ctx, domain.ChangeEvent{RestaurantID: "r1", Action: domain.ActionDelete, OrderID: "o2"}))

	assert.Equal(t, "o2", receive(t, sub.Events()).OrderID)
}

func TestHub_CloseEndsFeed(t *testing.T) {
	hub := newHub(t)

	sub, err := hub.Subscribe(context.Background(), "r1")
	require.NoError(t, err)
	require.NoError(t, sub.Close())
	assert.NoError(t, sub.Close())

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.Events():
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
