package auth

import "sync"

// State is the position of a login attempt in its lifecycle.
type State int

const (
	// StateIdle accepts a new submission.
	StateIdle State = iota
	// StateSubmitting blocks further submissions until the check resolves.
	StateSubmitting
	// StateRejected behaves like Idle but carries the rejection message.
	StateRejected
	// StateAuthenticated is terminal; the visitor navigates away.
	StateAuthenticated
)

// Flow is the login state machine:
//
//	Idle → Submitting → {Authenticated | Rejected}
//
// Rejected accepts a new submission like Idle does. Submitting rejects
// overlapping Begin calls, which is the double-submission guard.
type Flow struct {
	mu      sync.Mutex
	state   State
	lastErr error
}

// NewFlow returns a flow in the Idle state.
func NewFlow() *Flow {
	return &Flow{state: StateIdle}
}

// Begin transitions to Submitting. It fails with ErrLoginInFlight when a
// check is already pending or the flow has already authenticated.
func (f *Flow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateIdle, StateRejected:
		f.state = StateSubmitting
		f.lastErr = nil
		return nil
	default:
		return ErrLoginInFlight
	}
}

// Resolve completes the pending check: nil moves to Authenticated, anything
// else to Rejected. Resolve without a pending Begin is ignored.
func (f *Flow) Resolve(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSubmitting {
		return
	}
	if err != nil {
		f.state = StateRejected
		f.lastErr = err
		return
	}
	f.state = StateAuthenticated
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the rejection error, or nil outside StateRejected.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}
