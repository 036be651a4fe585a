package stream

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

// These tests exercise the local fan-out registry; the Redis leg is covered
// by the pattern-subscription loop in Start, which only forwards channel
// names into broadcast.

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	h := NewHub(nil, zerolog.Nop())

	ch, cancel, err := h.Subscribe(context.Background(), "67890", domain.RosterPatients)
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	defer cancel()

	h.broadcast("roster:67890:patients")

	select {
	case <-ch:
	default:
		t.Fatalf("expected a pending signal after broadcast")
	}
}

func TestHub_BroadcastIsScopedToChannel(t *testing.T) {
	h := NewHub(nil, zerolog.Nop())

	ch, cancel, _ := h.Subscribe(context.Background(), "67890", domain.RosterStaff)
	defer cancel()

	h.broadcast("roster:67890:patients")
	h.broadcast("roster:12345:staff")

	select {
	case <-ch:
		t.Fatalf("signal leaked across channels")
	default:
	}
}

func TestHub_BroadcastCoalesces(t *testing.T) {
	h := NewHub(nil, zerolog.Nop())

	ch, cancel, _ := h.Subscribe(context.Background(), "67890", domain.RosterPatients)
	defer cancel()

	// A subscriber with a pending signal must not block further broadcasts.
	h.broadcast("roster:67890:patients")
	h.broadcast("roster:67890:patients")
	h.broadcast("roster:67890:patients")

	<-ch
	select {
	case <-ch:
		t.Fatalf("signals should coalesce to one")
	default:
	}
}

func TestHub_CancelClosesAndUnregisters(t *testing.T) {
	h := NewHub(nil, zerolog.Nop())

	ch, cancel, _ := h.Subscribe(context.Background(), "67890", domain.RosterPatients)
	cancel()
	cancel() // idempotent

	if _, ok := <-ch; ok {
		t.Fatalf("channel should be closed after cancel")
	}

	// Broadcasting after cancel must not panic or deliver.
	h.broadcast("roster:67890:patients")
}
