// Package auth gates the admin area behind a single configured credential
// pair and issues in-memory sessions for authenticated visitors.
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
)

// ErrInvalidCredentials is the field-agnostic rejection: it never reveals
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrLoginInFlight is returned when a submission overlaps a pending check
// for the same email.
var ErrLoginInFlight = errors.New("login already in progress")

// Credentials is the accepted email/password pair.
type Credentials struct {
	Email    string
	Password string
}

// Gate checks submitted credentials against the configured pair. It is a
// placeholder for a real authentication service: the Submit contract
// (credentials in, success or generic failure out) is meant to stay stable
// when the constant comparison is replaced by real verification.
type Gate struct {
	creds Credentials

	mu    sync.Mutex
	flows map[string]*Flow
}

// NewGate creates a gate accepting exactly the given pair.
func NewGate(creds Credentials) *Gate {
	return &Gate{
		creds: creds,
		flows: make(map[string]*Flow),
	}
}

// Authenticate compares the submitted pair against the accepted one.
// Both fields are always compared so the timing does not reveal which
// one mismatched.
func (g *Gate) Authenticate(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(g.creds.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.creds.Password))
	if emailOK&passwordOK != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// Submit runs one full login attempt through the flow state machine keyed by
// the submitted email: a second submission while the first is still pending
// fails with ErrLoginInFlight instead of racing it.
func (g *Gate) Submit(email, password string) error {
	flow := g.flowFor(email)
	if err := flow.Begin(); err != nil {
		return err
	}

	err := g.Authenticate(email, password)
	flow.Resolve(err)

	// The map only tracks in-flight attempts. The email is caller-supplied,
	// so a resolved flow is forgotten whatever the outcome; keeping rejected
	// ones around would let failed logins grow the map without bound.
	g.mu.Lock()
	delete(g.flows, email)
	g.mu.Unlock()
	return err
}

func (g *Gate) flowFor(email string) *Flow {
	g.mu.Lock()
	defer g.mu.Unlock()

	flow, ok := g.flows[email]
	if !ok {
		flow = NewFlow()
		g.flows[email] = flow
	}
	return flow
}
