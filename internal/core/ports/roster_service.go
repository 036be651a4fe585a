package ports

import (
	"context"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

// RosterEntryInput carries the writable fields of a roster record. Which
// fields are meaningful depends on the kind (patients vs staff).
type RosterEntryInput struct {
	Name      string
	Cedula    string
	Role      string
	Specialty string
	Phone     string
	Birthdate string
	Gender    string
}

// RosterService is the per-user, per-kind CRUD surface with real-time
// snapshot subscriptions. Every successful write publishes a change so that
// watchers receive a fresh full-list snapshot.
type RosterService interface {
	List(ctx context.Context, ownerCode string, kind domain.RosterKind) ([]domain.RosterEntry, error)
	Create(ctx context.Context, ownerCode string, kind domain.RosterKind, input RosterEntryInput) (*domain.RosterEntry, error)
	Update(ctx context.Context, ownerCode string, kind domain.RosterKind, id string, input RosterEntryInput) (*domain.RosterEntry, error)
	Delete(ctx context.Context, ownerCode string, kind domain.RosterKind, id string) error
	// Watch subscribes to full-list snapshots for (ownerCode, kind). The
	// returned channel receives one snapshot immediately and one per change
	// until cancel is called or ctx is done; cancel must always be called so
	// no snapshot is ever delivered to a torn-down consumer.
	Watch(ctx context.Context, ownerCode string, kind domain.RosterKind) (<-chan domain.RosterSnapshot, func(), error)
}

// RosterRepository defines persistence for roster entries.
type RosterRepository interface {
	List(ctx context.Context, ownerCode string, kind domain.RosterKind) ([]domain.RosterEntry, error)
	Insert(ctx context.Context, entry *domain.RosterEntry) error
	Update(ctx context.Context, entry *domain.RosterEntry) error
	Delete(ctx context.Context, ownerCode string, kind domain.RosterKind, id string) error
	FindByID(ctx context.Context, ownerCode string, kind domain.RosterKind, id string) (*domain.RosterEntry, error)
}

// ChangeNotifier propagates roster change events between API instances.
// Subscribe delivers a signal per published change on the same channel key;
// the returned cancel func unregisters the subscription.
type ChangeNotifier interface {
	Publish(ctx context.Context, ownerCode string, kind domain.RosterKind) error
	Subscribe(ctx context.Context, ownerCode string, kind domain.RosterKind) (<-chan struct{}, func(), error)
}
