package snapshot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/erfanansari/reservation-app/internal/infra"
	"github.com/erfanansari/reservation-app/internal/pkg/config"
	"github.com/erfanansari/reservation-app/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createSnapshotTable = `
CREATE TABLE IF NOT EXISTS day_snapshots (
    day     text PRIMARY KEY,
    entries jsonb NOT NULL
)`

// NewPostgresPool connects, verifies the connection and makes sure the
// snapshot table exists.
func NewPostgresPool(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to open database", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, infra.WrapRepoErr("failed to ping database", err)
	}

	if _, err := pool.Exec(ctx, createSnapshotTable); err != nil {
		pool.Close()
		return nil, nil, infra.WrapRepoErr("failed to ensure snapshot table", err)
	}

	cleanup := func() {
		pool.Close()
	}
	return pool, cleanup, nil
}

// PostgresStore keeps one row per day: the date key and the JSON entry list,
// upserted whole after each accepted reservation.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Save(ctx context.Context, day string, entries []usecase.SnapshotEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return infra.WrapRepoErr("failed to encode snapshot for "+day, err, infra.KindCorrupt)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO day_snapshots (day, entries) VALUES ($1, $2)
		 ON CONFLICT (day) DO UPDATE SET entries = EXCLUDED.entries`,
		day, payload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save snapshot for "+day, err)
	}
	return nil
}

func (s *PostgresStore) LoadAll(ctx context.Context) (map[string][]usecase.SnapshotEntry, error) {
	rows, err := s.pool.Query(ctx, `SELECT day, entries FROM day_snapshots`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query snapshots", err)
	}
	defer rows.Close()

	snapshots := make(map[string][]usecase.SnapshotEntry)
	for rows.Next() {
		var day string
		var payload []byte
		if err := rows.Scan(&day, &payload); err != nil {
			return nil, infra.WrapRepoErr("failed to scan snapshot row", err)
		}

		var entries []usecase.SnapshotEntry
		if err := json.Unmarshal(payload, &entries); err != nil {
			return nil, infra.WrapRepoErr("failed to decode snapshot "+day, err, infra.KindCorrupt)
		}
		snapshots[day] = entries
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate snapshot rows", err)
	}

	return snapshots, nil
}
