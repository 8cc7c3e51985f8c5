package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"members-portal/internal/domain"
)

func newTestManager() (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	return NewManager(store, "portal_session", time.Hour), store
}

func TestManager_LoadWithoutCookie(t *testing.T) {
	mgr, _ := newTestManager()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, id, err := mgr.Load(req)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.False(t, sess.Authenticated)
}

func TestManager_SaveThenLoad(t *testing.T) {
	mgr, _ := newTestManager()
	ctx := context.Background()

	rec := httptest.NewRecorder()
	sess := domain.NewSession()
	sess.Authenticate(&domain.User{Username: "alice", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, mgr.Save(ctx, rec, "sid-1", sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "portal_session", cookies[0].Name)
	assert.Equal(t, "sid-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	loaded, id, err := mgr.Load(req)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", id)
	assert.True(t, loaded.Authenticated)
	assert.Equal(t, "alice", loaded.Username)
	assert.Equal(t, domain.RoleAdmin, loaded.Role)
}

func TestManager_LoadExpiredEntryIsAnonymous(t *testing.T) {
	mgr, store := newTestManager()
	ctx := context.Background()

	// Store TTL still live, but the entry's own expiry has passed.
	sess := &domain.Session{Authenticated: true, Username: "alice", ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, store.Put(ctx, "sid-1", sess, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "sid-1"})

	loaded, id, err := mgr.Load(req)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", id)
	assert.False(t, loaded.Authenticated)
}

func TestManager_Destroy(t *testing.T) {
	mgr, store := newTestManager()
	ctx := context.Background()

	sess := domain.NewSession()
	sess.Authenticate(&domain.User{Username: "alice", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, store.Put(ctx, "sid-1", sess, time.Hour))

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Destroy(ctx, rec, "sid-1"))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestManager_TouchRefreshesTTL(t *testing.T) {
	mgr, store := newTestManager()
	ctx := context.Background()

	sess := domain.NewSession()
	sess.Authenticate(&domain.User{Username: "alice", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, store.Put(ctx, "sid-1", sess, time.Millisecond))

	require.NoError(t, mgr.Touch(ctx, "sid-1", sess))
	time.Sleep(5 * time.Millisecond)

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
}
