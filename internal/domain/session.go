package domain

import "time"

// SessionTTL is how long an issued session stays valid. The store TTL and
// the entry's own ExpiresAt both derive from it.
const SessionTTL = time.Hour

// Session is the server-side attribute bag keyed by the opaque session ID
// the client carries in its cookie. Username and Role are copied from the
// user record at login and are NOT re-synced afterwards: a role change in
// the store only takes effect for guarded routes after a fresh login.
type Session struct {
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username"`
	Role          Role      `json:"role"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// NewSession returns an anonymous, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Authenticate fills the session from a verified user record and stamps
// the expiry ttl from now.
func (s *Session) Authenticate(u *User, ttl time.Duration) {
	s.Authenticated = true
	s.Username = u.Username
	s.Role = u.Role
	s.ExpiresAt = time.Now().Add(ttl)
}

func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// IsValid reports whether the session passes the session-validity guard.
func (s *Session) IsValid() bool {
	return s.Authenticated && !s.IsExpired()
}

func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
