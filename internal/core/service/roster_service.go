package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hygia-health/hygia-api/internal/api/metrics"
	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// RosterService implements the per-user patient/staff roster with real-time
// snapshot subscriptions. Writes go to the repository and then publish a
// change signal; watchers respond to signals by reloading the full list, so
// every delivered snapshot is a complete replacement of the previous one.
type RosterService struct {
	repo     ports.RosterRepository
	notifier ports.ChangeNotifier
	logger   zerolog.Logger
}

func NewRosterService(repo ports.RosterRepository, notifier ports.ChangeNotifier, logger zerolog.Logger) *RosterService {
	return &RosterService{repo: repo, notifier: notifier, logger: logger}
}

func (s *RosterService) List(ctx context.Context, ownerCode string, kind domain.RosterKind) ([]domain.RosterEntry, error) {
	return s.repo.List(ctx, ownerCode, kind)
}

func (s *RosterService) Create(ctx context.Context, ownerCode string, kind domain.RosterKind, input ports.RosterEntryInput) (*domain.RosterEntry, error) {
	now := time.Now().UTC()
	entry := &domain.RosterEntry{
		ID:        uuid.NewString(),
		OwnerCode: ownerCode,
		Kind:      kind,
		Name:      input.Name,
		Cedula:    input.Cedula,
		Role:      input.Role,
		Specialty: input.Specialty,
		Phone:     input.Phone,
		Birthdate: input.Birthdate,
		Gender:    input.Gender,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	metrics.RosterWritesTotal.WithLabelValues(string(kind), "create").Inc()
	s.publish(ctx, ownerCode, kind)
	return entry, nil
}

func (s *RosterService) Update(ctx context.Context, ownerCode string, kind domain.RosterKind, id string, input ports.RosterEntryInput) (*domain.RosterEntry, error) {
	entry, err := s.repo.FindByID(ctx, ownerCode, kind, id)
	if err != nil {
		return nil, err
	}

	entry.Name = input.Name
	entry.Cedula = input.Cedula
	entry.Role = input.Role
	entry.Specialty = input.Specialty
	entry.Phone = input.Phone
	entry.Birthdate = input.Birthdate
	entry.Gender = input.Gender
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	metrics.RosterWritesTotal.WithLabelValues(string(kind), "update").Inc()
	s.publish(ctx, ownerCode, kind)
	return entry, nil
}

func (s *RosterService) Delete(ctx context.Context, ownerCode string, kind domain.RosterKind, id string) error {
	if err := s.repo.Delete(ctx, ownerCode, kind, id); err != nil {
		return err
	}
	metrics.RosterWritesTotal.WithLabelValues(string(kind), "delete").Inc()
	s.publish(ctx, ownerCode, kind)
	return nil
}

// Watch delivers one snapshot immediately, then one per change signal.
// The forwarding goroutine exits when cancel is called or ctx is done, and
// the snapshot channel is closed so consumers never block on a dead watch.
func (s *RosterService) Watch(ctx context.Context, ownerCode string, kind domain.RosterKind) (<-chan domain.RosterSnapshot, func(), error) {
	signals, unsubscribe, err := s.notifier.Subscribe(ctx, ownerCode, kind)
	if err != nil {
		return nil, nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	out := make(chan domain.RosterSnapshot, 1)

	metrics.RosterWatchers.Inc()
	go func() {
		defer func() {
			unsubscribe()
			close(out)
			metrics.RosterWatchers.Dec()
		}()

		if !s.emit(watchCtx, out, ownerCode, kind) {
			return
		}
		for {
			select {
			case <-watchCtx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				if !s.emit(watchCtx, out, ownerCode, kind) {
					return
				}
			}
		}
	}()

	return out, cancel, nil
}

// emit loads the current full list and sends it as a snapshot. Reports false
// when the watch has been torn down.
func (s *RosterService) emit(ctx context.Context, out chan<- domain.RosterSnapshot, ownerCode string, kind domain.RosterKind) bool {
	entries, err := s.repo.List(ctx, ownerCode, kind)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		s.logger.Error().Err(err).Str("owner", ownerCode).Str("kind", string(kind)).Msg("snapshot load failed")
		return true
	}

	snapshot := domain.RosterSnapshot{OwnerCode: ownerCode, Kind: kind, Entries: entries}
	select {
	case <-ctx.Done():
		return false
	case out <- snapshot:
		metrics.RosterSnapshotsTotal.WithLabelValues(string(kind)).Inc()
		return true
	}
}

func (s *RosterService) publish(ctx context.Context, ownerCode string, kind domain.RosterKind) {
	if err := s.notifier.Publish(ctx, ownerCode, kind); err != nil {
		// Non-fatal: the write itself succeeded, only live watchers lag.
		s.logger.Warn().Err(err).Str("owner", ownerCode).Str("kind", string(kind)).Msg("change publish failed")
	}
}
