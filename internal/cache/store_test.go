package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causentia/backend/pkg/config"
	"github.com/causentia/backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()

	store, err := New(t.TempDir(), ttl, testLogger())
	require.NoError(t, err)
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t, time.Hour)

	type payload struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}

	require.NoError(t, store.Set("country_VE", payload{Name: "Venezuela", Score: 87.5}))

	var got payload
	found, err := store.Get("country_VE", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Venezuela", got.Name)
	assert.Equal(t, 87.5, got.Score)
}

func TestStore_MissingKey(t *testing.T) {
	store := newTestStore(t, time.Hour)

	var got map[string]string
	found, err := store.Get("nope", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_TTLExpiry(t *testing.T) {
	store := newTestStore(t, time.Hour)

	base := time.Now()
	store.now = func() time.Time { return base }

	require.NoError(t, store.Set("snapshot", map[string]int{"n": 1}))

	var got map[string]int
	found, err := store.Get("snapshot", &got)
	require.NoError(t, err)
	assert.True(t, found, "fresh entry should hit")

	// Just inside the TTL
	store.now = func() time.Time { return base.Add(59 * time.Minute) }
	found, err = store.Get("snapshot", &got)
	require.NoError(t, err)
	assert.True(t, found)

	// Past the TTL the entry is stale
	store.now = func() time.Time { return base.Add(time.Hour + time.Second) }
	found, err = store.Get("snapshot", &got)
	require.NoError(t, err)
	assert.False(t, found, "expired entry should miss")
}

func TestStore_CorruptEntryIsMiss(t *testing.T) {
	store := newTestStore(t, time.Hour)

	require.NoError(t, os.WriteFile(store.path("bad"), []byte("{not json"), 0o644))

	var got map[string]int
	found, err := store.Get("bad", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// The next Set overwrites the corrupt entry
	require.NoError(t, store.Set("bad", map[string]int{"n": 2}))
	found, err = store.Get("bad", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, got["n"])
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t, time.Hour)

	require.NoError(t, store.Set("a", 1))
	require.NoError(t, store.Set("b", 2))

	require.NoError(t, store.Clear())

	var got int
	found, err := store.Get("a", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// The directory survives a clear
	require.NoError(t, store.Set("c", 3))
	found, err = store.Get("c", &got)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestStore_GetOrSet(t *testing.T) {
	store := newTestStore(t, time.Hour)

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return map[string]float64{"vix": 22.5}, nil
	}

	var got map[string]float64
	require.NoError(t, store.GetOrSet("fred_vix", &got, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 22.5, got["vix"])

	// Second read is served from the cache
	got = nil
	require.NoError(t, store.GetOrSet("fred_vix", &got, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 22.5, got["vix"])
}

func TestStore_PathSanitization(t *testing.T) {
	store := newTestStore(t, time.Hour)

	require.NoError(t, store.Set("../escape/attempt", 1))

	// The entry lands inside the cache dir under a sanitized name
	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(entries[0].Name()), entries[0].Name())

	var got int
	found, err := store.Get("../escape/attempt", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, got)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store := newTestStore(t, time.Hour)

	require.NoError(t, store.Set("wb_FP.CPI.TOTL.ZG_5", "inflation"))
	require.NoError(t, store.Set("wb_NY.GDP.MKTP.KD.ZG_5", "growth"))

	var got string
	found, err := store.Get("wb_FP.CPI.TOTL.ZG_5", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "inflation", got)
}
