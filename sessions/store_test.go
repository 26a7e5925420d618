package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoquest/insight-api/models"
)

func newSession(id string, ttl time.Duration) *models.QuizSession {
	now := time.Now()
	return &models.QuizSession{
		ID:        id,
		TraderID:  "trader-1",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	store := NewStore()
	store.Put(newSession("a", time.Hour))

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)

	store.Delete("a")
	_, ok = store.Get("a")
	assert.False(t, ok)
}

func TestStore_TakeIsSingleShot(t *testing.T) {
	store := NewStore()
	store.Put(newSession("a", time.Hour))

	got, ok := store.Take("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)

	_, ok = store.Take("a")
	assert.False(t, ok)
	_, ok = store.Get("a")
	assert.False(t, ok)
}

func TestStore_TakeExpired(t *testing.T) {
	store := NewStore()
	store.Put(newSession("stale", -time.Minute))

	_, ok := store.Take("stale")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestStore_ExpiredSessionDroppedOnAccess(t *testing.T) {
	store := NewStore()
	store.Put(newSession("stale", -time.Minute))

	_, ok := store.Get("stale")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestStore_CleanupExpired(t *testing.T) {
	store := NewStore()
	store.Put(newSession("live", time.Hour))
	store.Put(newSession("stale-1", -time.Minute))
	store.Put(newSession("stale-2", -time.Hour))

	cleaned := store.CleanupExpired()
	assert.Equal(t, 2, cleaned)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get("live")
	assert.True(t, ok)
}
