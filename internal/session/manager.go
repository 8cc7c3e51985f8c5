package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"members-portal/internal/domain"
)

const DefaultCookieName = "portal_session"

// Manager ties the opaque session ID cookie to a Store entry. All session
// attributes stay server-side; the client only ever sees the ID.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
}

func NewManager(store Store, cookieName string, ttl time.Duration) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if ttl <= 0 {
		ttl = domain.SessionTTL
	}
	return &Manager{store: store, cookieName: cookieName, ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Load resolves the request's session cookie to a store entry. A missing
// cookie, a dead ID or an entry past its own expiry all yield a fresh
// anonymous session under a new ID. The cookie for a fresh ID is only sent
// once Save is called.
func (m *Manager) Load(r *http.Request) (*domain.Session, string, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return domain.NewSession(), uuid.NewString(), nil
	}

	sess, err := m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		return domain.NewSession(), uuid.NewString(), err
	}
	if sess == nil || sess.IsExpired() {
		return domain.NewSession(), cookie.Value, nil
	}
	return sess, cookie.Value, nil
}

// Save writes the entry to the store and (re)issues the cookie.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, id string, sess *domain.Session) error {
	if err := m.store.Put(ctx, id, sess, m.ttl); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Touch re-arms the store TTL for a live session without changing its
// attributes. The store persists and refreshes on each request.
func (m *Manager) Touch(ctx context.Context, id string, sess *domain.Session) error {
	return m.store.Put(ctx, id, sess, m.ttl)
}

// Destroy removes the entry and expires the client cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, id string) error {
	err := m.store.Delete(ctx, id)
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return err
}
