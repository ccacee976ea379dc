package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/selection"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "vlsi_admin_session"

// Session is one authenticated admin visit. Everything on it is ephemeral
// and vanishes with the process, including the media selection.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time

	// MediaSelection tracks the media library bulk-action selection for
	// this visit. It persists across re-filtering but not across sessions.
	MediaSelection *selection.Tracker
}

// SessionStore keeps sessions in memory keyed by token.
type SessionStore struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore creates a store issuing sessions valid for ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create issues a new session for the given email.
func (s *SessionStore) Create(email string) *Session {
	now := time.Now()
	sess := &Session{
		Token:          uuid.NewString(),
		Email:          email,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.ttl),
		MediaSelection: selection.NewTracker(),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for token if it exists and has not expired.
// Expired sessions are dropped on access.
func (s *SessionStore) Get(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, false
	}
	return sess, true
}

// Delete removes a session, e.g. on logout.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
