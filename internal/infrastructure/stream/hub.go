// Package stream fans roster change signals out to in-process subscribers.
// Changes travel between API instances over a Redis pub/sub channel keyed by
// owner and roster kind; the hub holds a single pattern subscription and
// multiplexes it to local watchers.
package stream

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

const (
	channelPattern = "roster:*"
	signalBuffer   = 1
)

// Hub implements ports.ChangeNotifier on top of Redis pub/sub.
type Hub struct {
	rdb *redis.Client
	log zerolog.Logger

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan struct{}
}

// NewHub creates a Hub wrapping the given Redis client.
func NewHub(rdb *redis.Client, log zerolog.Logger) *Hub {
	return &Hub{
		rdb:  rdb,
		log:  log,
		subs: make(map[string]map[int]chan struct{}),
	}
}

// Start launches the pattern-subscription loop. It stops when ctx is
// cancelled; all registered subscriber channels are closed on exit so no
// signal is ever delivered to a torn-down watcher.
func (h *Hub) Start(ctx context.Context) {
	pubsub := h.rdb.PSubscribe(ctx, channelPattern)
	go func() {
		defer h.closeAll()
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				h.broadcast(msg.Channel)
			}
		}
	}()
}

// Publish announces a change on the (ownerCode, kind) channel.
func (h *Hub) Publish(ctx context.Context, ownerCode string, kind domain.RosterKind) error {
	if err := h.rdb.Publish(ctx, channelKey(ownerCode, kind), "1").Err(); err != nil {
		return fmt.Errorf("publish roster change: %w", err)
	}
	return nil
}

// Subscribe registers a local watcher for (ownerCode, kind). The returned
// cancel func unregisters it; after cancel returns, the signal channel is
// closed and receives nothing further.
func (h *Hub) Subscribe(_ context.Context, ownerCode string, kind domain.RosterKind) (<-chan struct{}, func(), error) {
	key := channelKey(ownerCode, kind)
	ch := make(chan struct{}, signalBuffer)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.subs[key] == nil {
		h.subs[key] = make(map[int]chan struct{})
	}
	h.subs[key][id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if group, ok := h.subs[key]; ok {
			if c, ok := group[id]; ok {
				delete(group, id)
				close(c)
			}
			if len(group) == 0 {
				delete(h.subs, key)
			}
		}
	}
	return ch, cancel, nil
}

// broadcast signals every local subscriber of the channel. Sends are
// non-blocking: a subscriber with a pending signal coalesces, since the
// consumer reloads the full list anyway.
func (h *Hub) broadcast(channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[channel] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, group := range h.subs {
		for id, ch := range group {
			delete(group, id)
			close(ch)
		}
		delete(h.subs, key)
	}
}

func channelKey(ownerCode string, kind domain.RosterKind) string {
	return fmt.Sprintf("roster:%s:%s", ownerCode, kind)
}
