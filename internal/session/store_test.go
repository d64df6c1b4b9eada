package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunway-travel/vacation-booking/models"
)

func newTestStore(now time.Time) (*Store, *time.Time) {
	clock := now
	s := NewStore()
	s.now = func() time.Time { return clock }
	return s, &clock
}

func TestStore_SetAndGet(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestStore(now)

	user := models.SessionUser{ID: 7, Name: "Alice", Role: models.RoleUser}
	s.Set("token-a", user)

	state, held := s.Get()
	require.True(t, held)
	assert.Equal(t, "token-a", state.Token)
	assert.Equal(t, user, state.User)
	assert.Equal(t, now, state.ValidatedAt)
}

func TestStore_EmptyByDefault(t *testing.T) {
	s := NewStore()

	_, held := s.Get()
	assert.False(t, held)
	assert.Empty(t, s.Token())
}

func TestStore_Touch_RefreshesTimestamp(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	s, clock := newTestStore(now)

	s.Set("token-a", models.SessionUser{ID: 7})

	*clock = now.Add(45 * time.Second)
	s.Touch()

	state, held := s.Get()
	require.True(t, held)
	assert.Equal(t, now.Add(45*time.Second), state.ValidatedAt)
	assert.Equal(t, "token-a", state.Token, "touch must not change the credential")
}

func TestStore_Touch_NoSessionIsNoOp(t *testing.T) {
	s, _ := newTestStore(time.Now())

	s.Touch()

	_, held := s.Get()
	assert.False(t, held)
}

func TestStore_Clear(t *testing.T) {
	s, _ := newTestStore(time.Now())
	s.Set("token-a", models.SessionUser{ID: 7})

	s.Clear()

	state, held := s.Get()
	assert.False(t, held)
	assert.Empty(t, state.Token)
	assert.Empty(t, s.Token())
}

func TestStore_SetReplacesPreviousSession(t *testing.T) {
	s, _ := newTestStore(time.Now())
	s.Set("token-a", models.SessionUser{ID: 7})
	s.Set("token-b", models.SessionUser{ID: 8})

	state, held := s.Get()
	require.True(t, held)
	assert.Equal(t, "token-b", state.Token)
	assert.Equal(t, int64(8), state.User.ID)
}
