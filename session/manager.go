package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mygbu/authcore/domain"
	"github.com/mygbu/authcore/secrets"
	"github.com/mygbu/authcore/transport"
)

// PasswordResetRequester starts the backend's password reset flow. The
// transport client satisfies this; tests substitute stubs.
type PasswordResetRequester interface {
	RequestPasswordReset(ctx context.Context, req transport.ResetRequest) (*transport.ResetResponse, error)
}

// Manager owns the session lifecycle: login, logout, status recovery
// and password reset. It is the sole writer of session state; any
// number of presentation consumers observe it via Subscribe.
type Manager struct {
	client   transport.AuthClient
	resetter PasswordResetRequester
	store    *secrets.BestEffort
	logger   *slog.Logger
	limiter  *rate.Limiter

	mu      sync.Mutex
	state   State
	gen     uint64
	subs    map[int]chan State
	nextSub int
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithLoginLimit replaces the default client-side login throttle
// (5 attempts per minute). A zero limit disables throttling.
func WithLoginLimit(limit rate.Limit, burst int) Option {
	return func(m *Manager) {
		if limit == 0 {
			m.limiter = nil
			return
		}
		m.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithPasswordResetRequester overrides the reset collaborator, which
// defaults to the transport client.
func WithPasswordResetRequester(r PasswordResetRequester) Option {
	return func(m *Manager) { m.resetter = r }
}

// NewManager creates a session manager over the given transport client
// and secret store. The initial state is empty Unauthenticated.
func NewManager(client transport.AuthClient, store secrets.Store, opts ...Option) *Manager {
	m := &Manager{
		client:   client,
		resetter: client,
		logger:   slog.Default(),
		// Backend auth endpoints allow 5 attempts per minute.
		limiter: rate.NewLimiter(rate.Every(12*time.Second), 5),
		subs:    make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.store = secrets.NewBestEffort(store, m.logger)
	return m
}

// State returns the current session snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers an observer. The channel immediately carries the
// current snapshot, then the latest state after every transition
// (intermediate states may be coalesced). The returned cancel func
// unregisters and closes the channel.
func (m *Manager) Subscribe() (<-chan State, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan State, 1)
	ch <- m.state

	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if c, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Login authenticates identifier/password for the given role. While a
// login or status check is in flight, further calls fail with
// OperationInProgress and neither touch state nor reach the transport.
func (m *Manager) Login(ctx context.Context, identifier, password string, ut domain.UserType) error {
	if !ut.Valid() {
		return &Error{Kind: KindSchemaMismatch, Message: "unknown user type " + string(ut)}
	}

	m.mu.Lock()
	if m.state.Loading {
		m.mu.Unlock()
		return operationInProgress()
	}
	if m.limiter != nil && !m.limiter.Allow() {
		m.mu.Unlock()
		return rateLimited()
	}
	start := m.gen
	m.state.Loading = true
	m.state.Err = nil
	m.publishLocked()
	m.mu.Unlock()

	resp, err := m.client.Login(ctx, transport.NewLoginRequest(identifier, password, ut))
	if err != nil {
		return m.fail(start, fromTransport(err))
	}
	if !resp.Success {
		return m.fail(start, authRejected(resp.Message))
	}

	return m.completeAuth(ctx, resp, ut, start)
}

// Logout clears the session in one observable transition, then removes
// the stored token. Logout is irreversible: an in-flight login or
// status check that lands afterwards is discarded rather than
// resurrecting the session.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.gen++
	m.state = State{}
	m.publishLocked()
	m.mu.Unlock()

	m.store.Delete(ctx, secrets.TokenKey)
	m.logger.Info("session logged out")
}

// CheckStatus attempts silent session recovery from the stored token.
// With no stored token it returns immediately without a transport call.
// A token that fails validation (locally stale or rejected by the
// backend) is deleted, leaving the session unauthenticated; a second
// call then short-circuits the same way.
func (m *Manager) CheckStatus(ctx context.Context) error {
	// Claim the in-flight slot before the store read, so a concurrent
	// Login or CheckStatus fails fast instead of racing a second call.
	m.mu.Lock()
	if m.state.Loading {
		m.mu.Unlock()
		return operationInProgress()
	}
	start := m.gen
	m.state.Loading = true
	m.state.Err = nil
	m.publishLocked()
	m.mu.Unlock()

	token, ok := m.store.Get(ctx, secrets.TokenKey)
	if !ok {
		m.mu.Lock()
		m.state.Loading = false
		m.publishLocked()
		m.mu.Unlock()
		return nil
	}

	if tokenStale(token, time.Now()) {
		m.store.Delete(ctx, secrets.TokenKey)
		m.logger.Info("stored token past expiry, discarded without validation")
		m.resetEmpty()
		return nil
	}

	resp, err := m.client.ValidateToken(ctx, token)
	if err != nil {
		m.store.Delete(ctx, secrets.TokenKey)
		return m.failReset(start, fromTransport(err))
	}
	if !resp.Success {
		m.store.Delete(ctx, secrets.TokenKey)
		return m.failReset(start, authRejected(resp.Message))
	}

	if resp.User == nil {
		m.store.Delete(ctx, secrets.TokenKey)
		return m.failReset(start, malformedResponse("validate response missing user", nil))
	}
	if err := m.completeAuth(ctx, resp, resp.User.UserType, start); err != nil {
		m.store.Delete(ctx, secrets.TokenKey)
		return err
	}
	return nil
}

// ResetPassword delegates to the reset collaborator. The manager holds
// no state for this flow beyond surfacing a failure as the session's
// last error.
func (m *Manager) ResetPassword(ctx context.Context, identifier string, ut domain.UserType) error {
	if !ut.Valid() {
		return &Error{Kind: KindSchemaMismatch, Message: "unknown user type " + string(ut)}
	}

	resp, err := m.resetter.RequestPasswordReset(ctx, transport.NewResetRequest(identifier, ut))
	if err != nil {
		return m.surface(fromTransport(err))
	}
	if !resp.Success {
		return m.surface(resetRejected(resp.Message))
	}

	m.mu.Lock()
	m.state.Err = nil
	m.publishLocked()
	m.mu.Unlock()

	m.logger.Info("password reset requested", "user_type", ut)
	return nil
}

// completeAuth enforces the response contract and flips the session to
// authenticated. The token is persisted before the flip so an
// authenticated state is never observable without a durably stored
// credential. A logout since the operation started (start != gen) wins:
// the result is discarded and the token removed again.
func (m *Manager) completeAuth(ctx context.Context, resp *transport.LoginResponse, want domain.UserType, start uint64) error {
	if resp.User == nil || resp.User.UserType != want {
		return m.fail(start, malformedResponse("response user missing or role mismatch", nil))
	}

	profile, err := domain.ResolveProfile(want, resp.Student, resp.Faculty, resp.Admin)
	if err != nil {
		return m.fail(start, malformedResponse("response profile violates role contract", err))
	}

	if resp.Token != nil && *resp.Token != "" {
		m.store.Save(ctx, secrets.TokenKey, *resp.Token)
	}

	m.mu.Lock()
	if m.gen != start {
		m.mu.Unlock()
		m.store.Delete(ctx, secrets.TokenKey)
		m.logger.Info("authentication discarded, session logged out mid-flight")
		return nil
	}
	m.state = State{
		Authenticated: true,
		User:          resp.User,
		Profile:       &profile,
	}
	m.publishLocked()
	m.mu.Unlock()

	m.logger.Info("session authenticated", "user_id", resp.User.ID, "user_type", resp.User.UserType)
	return nil
}

// fail ends the in-flight operation, surfacing e while leaving the
// prior session fields untouched. After a mid-flight logout the state
// stays cleared; only the error return survives.
func (m *Manager) fail(start uint64, e *Error) error {
	m.mu.Lock()
	if m.gen == start {
		m.state.Loading = false
		m.state.Err = e
		m.publishLocked()
	}
	m.mu.Unlock()

	m.logger.Warn("auth operation failed", "kind", e.Kind, "message", e.Message)
	return e
}

// failReset ends the in-flight operation with the whole session cleared
// back to unauthenticated, keeping only the error.
func (m *Manager) failReset(start uint64, e *Error) error {
	m.mu.Lock()
	if m.gen == start {
		m.state = State{Err: e}
		m.publishLocked()
	}
	m.mu.Unlock()

	m.logger.Warn("session recovery failed", "kind", e.Kind, "message", e.Message)
	return e
}

// resetEmpty clears the session with no error recorded.
func (m *Manager) resetEmpty() {
	m.mu.Lock()
	m.state = State{}
	m.publishLocked()
	m.mu.Unlock()
}

// surface records e as the last error without touching other fields.
func (m *Manager) surface(e *Error) error {
	m.mu.Lock()
	m.state.Err = e
	m.publishLocked()
	m.mu.Unlock()
	return e
}

// publishLocked pushes the current state to every subscriber with
// latest-wins semantics. Callers hold m.mu.
func (m *Manager) publishLocked() {
	for _, ch := range m.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- m.state:
		default:
		}
	}
}
