package snapshot

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/erfanansari/reservation-app/internal/infra"
	"github.com/erfanansari/reservation-app/internal/pkg/config"
	"github.com/erfanansari/reservation-app/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const dayKeyPrefix = "schedule:day:"

// NewRedisClient returns a configured and pinged Redis client plus its
// cleanup func.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, infra.WrapRepoErr("failed to connect to redis", err)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// RedisStore persists each day ledger as one key holding the JSON entry
// list, overwritten whole after every accepted reservation.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, day string, entries []usecase.SnapshotEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return infra.WrapRepoErr("failed to encode snapshot for "+day, err, infra.KindCorrupt)
	}

	if err := s.client.Set(ctx, dayKeyPrefix+day, payload, 0).Err(); err != nil {
		return infra.WrapRepoErr("failed to save snapshot for "+day, err)
	}
	return nil
}

func (s *RedisStore) LoadAll(ctx context.Context) (map[string][]usecase.SnapshotEntry, error) {
	snapshots := make(map[string][]usecase.SnapshotEntry)

	iter := s.client.Scan(ctx, 0, dayKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		raw, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, infra.WrapRepoErr("failed to read snapshot "+key, err)
		}

		var entries []usecase.SnapshotEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, infra.WrapRepoErr("failed to decode snapshot "+key, err, infra.KindCorrupt)
		}
		snapshots[strings.TrimPrefix(key, dayKeyPrefix)] = entries
	}
	if err := iter.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to scan snapshots", err)
	}

	return snapshots, nil
}
