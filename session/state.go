package session

import "github.com/mygbu/authcore/domain"

// Phase is the session lifecycle position derived from State.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticating  Phase = "authenticating"
	PhaseAuthenticated   Phase = "authenticated"
	PhaseFailed          Phase = "failed"
)

// State is the observable session snapshot. Invariant: Authenticated
// implies User and Profile are both set and Profile.Type matches
// User.UserType. Subscribers must treat snapshots as read-only; only
// the Manager mutates session state.
type State struct {
	Authenticated bool
	Loading       bool
	User          *domain.User
	Profile       *domain.Profile
	Err           *Error
}

// Phase derives the lifecycle phase from the snapshot.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseAuthenticating
	case s.Authenticated:
		return PhaseAuthenticated
	case s.Err != nil:
		return PhaseFailed
	default:
		return PhaseUnauthenticated
	}
}

// Empty reports whether the snapshot is the zero, signed-out state.
func (s State) Empty() bool {
	return !s.Authenticated && !s.Loading && s.User == nil && s.Profile == nil && s.Err == nil
}
