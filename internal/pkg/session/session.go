package session

import (
	"context"
	"sync"
	"time"
)

// Session is the in-memory record behind one bearer token.
//
// The user snapshot (id, username, role) is frozen at issuance; changing a
// user's role never affects tokens that are already out.
type Session struct {
	// Token is the opaque bearer value handed to the client.
	Token string
	// UserID is the authenticated user identifier.
	UserID int64
	// Username is the authenticated user login name.
	Username string
	// Role is the authorization level captured at issuance.
	Role string
	// ExpiresAt is the instant the token stops resolving.
	ExpiresAt time.Time
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type sessionContextKey struct{}

// GetAuth returns the session stored in the context, if any.
func GetAuth(ctx context.Context) *Session {
	s, ok := ctx.Value(sessionContextKey{}).(Session)
	if !ok {
		return nil
	}

	return &s
}

// SetAuth stores a resolved session in the context.
func SetAuth(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// Registry maps opaque tokens to live sessions.
//
// It is authoritative and process-local: nothing is persisted or replicated,
// so a restart invalidates every outstanding token. Expired entries are
// removed when a lookup observes them.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	clock    clocker
	token    generator
}

// NewRegistry builds a Registry issuing tokens valid for ttl.
func NewRegistry(ttl time.Duration, clock clocker, token generator) *Registry {
	return &Registry{
		sessions: make(map[string]Session),
		ttl:      ttl,
		clock:    clock,
		token:    token,
	}
}

// Issue mints a new token bound to the given user snapshot.
func (r *Registry) Issue(userID int64, username, role string) Session {
	s := Session{
		Token:     r.token.Generate(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		ExpiresAt: r.clock.Now().Add(r.ttl),
	}

	r.mu.Lock()
	r.sessions[s.Token] = s
	r.mu.Unlock()

	return s
}

// Lookup resolves a token to its session.
//
// An expired entry is dropped and reported as a miss.
func (r *Registry) Lookup(token string) (Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return Session{}, false
	}

	if r.clock.Now().After(s.ExpiresAt) {
		r.mu.Lock()
		// Re-check under the write lock; a concurrent Issue could have
		// replaced the entry in the meantime.
		if cur, ok := r.sessions[token]; ok && r.clock.Now().After(cur.ExpiresAt) {
			delete(r.sessions, token)
		}
		r.mu.Unlock()
		return Session{}, false
	}

	return s, true
}

// Revoke removes a token ahead of its expiry.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}
