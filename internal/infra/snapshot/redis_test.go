//go:build unit

package snapshot_test

import (
	"context"
	"testing"

	"github.com/erfanansari/reservation-app/internal/infra"
	"github.com/erfanansari/reservation-app/internal/infra/snapshot"
	"github.com/erfanansari/reservation-app/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*snapshot.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return snapshot.NewRedisStore(client), mr
}

func TestRedisStoreSaveAndLoadAll(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	nov9 := []usecase.SnapshotEntry{
		{Name: "John Doe", Duration: "1"},
		{Name: "Jane Doe", Duration: "2"},
	}
	nov24 := []usecase.SnapshotEntry{
		{Name: "John Doe", Duration: "next workday"},
	}

	require.NoError(t, store.Save(ctx, "2022-11-09", nov9))
	require.NoError(t, store.Save(ctx, "2022-11-24", nov24))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]usecase.SnapshotEntry{
		"2022-11-09": nov9,
		"2022-11-24": nov24,
	}, loaded)
}

func TestRedisStoreOverwritesWholeDay(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "2022-11-09", []usecase.SnapshotEntry{
		{Name: "John Doe", Duration: "1"},
	}))
	require.NoError(t, store.Save(ctx, "2022-11-09", []usecase.SnapshotEntry{
		{Name: "John Doe", Duration: "1"},
		{Name: "Jane Doe", Duration: "2"},
	}))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded["2022-11-09"], 2)
	assert.Equal(t, "Jane Doe", loaded["2022-11-09"][1].Name)
}

func TestRedisStoreIgnoresForeignKeys(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	mr.Set("session:abc", "unrelated")
	require.NoError(t, store.Save(ctx, "2022-11-09", []usecase.SnapshotEntry{
		{Name: "John Doe", Duration: "1"},
	}))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	store, mr := newRedisStore(t)

	mr.Set("schedule:day:2022-11-09", "{not json")

	_, err := store.LoadAll(context.Background())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindCorrupt))
}
