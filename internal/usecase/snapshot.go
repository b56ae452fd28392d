package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/erfanansari/reservation-app/internal/domain/schedule"
	"github.com/erfanansari/reservation-app/internal/pkg/errs"

	"github.com/google/uuid"
)

// SnapshotEntry is the persisted shape of one reservation: the same
// {name, duration} pair the wire format uses.
type SnapshotEntry struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// SnapshotRepository is the key-value collaborator that persists day
// ledgers. Keys are ISO dates (YYYY-MM-DD); values are ordered entry lists.
// Save is fire-and-forget from the ledger's perspective: a failure is
// reported upward but never rolls back an in-memory acceptance.
type SnapshotRepository interface {
	Save(ctx context.Context, day string, entries []SnapshotEntry) error
	LoadAll(ctx context.Context) (map[string][]SnapshotEntry, error)
}

func entriesFromReservations(reservations []*schedule.Reservation) []SnapshotEntry {
	entries := make([]SnapshotEntry, 0, len(reservations))
	for _, r := range reservations {
		entries = append(entries, SnapshotEntry{
			Name:     r.Requester(),
			Duration: r.Span().String(),
		})
	}
	return entries
}

func reservationsFromEntries(entries []SnapshotEntry) ([]*schedule.Reservation, error) {
	reservations := make([]*schedule.Reservation, 0, len(entries))
	for _, e := range entries {
		span, err := schedule.ParseSpan(e.Duration)
		if err != nil {
			return nil, errs.Wrap(err, "corrupt snapshot entry for "+e.Name)
		}
		reservations = append(reservations, schedule.ReconstructReservation(uuid.New(), e.Name, span, time.Time{}))
	}
	return reservations, nil
}

// LoadStore builds the process-wide store from persisted state. Persistence
// being unavailable is not fatal: the service starts empty and keeps serving
// from memory.
func LoadStore(ctx context.Context, repo SnapshotRepository, logger *slog.Logger) *schedule.Store {
	store := schedule.NewStore()
	if repo == nil {
		return store
	}

	snapshots, err := repo.LoadAll(ctx)
	if err != nil {
		logger.Error("failed to load reservation snapshots, starting empty", "error", err)
		return store
	}

	for key, entries := range snapshots {
		day, err := schedule.ParseDay(key)
		if err != nil {
			logger.Error("skipping snapshot with invalid day key", "key", key)
			continue
		}
		reservations, err := reservationsFromEntries(entries)
		if err != nil {
			logger.Error("skipping corrupt snapshot", "day", key, "error", err)
			continue
		}
		store.Restore(day, reservations)
	}

	logger.Info("reservation snapshots loaded", "days", len(snapshots))
	return store
}
