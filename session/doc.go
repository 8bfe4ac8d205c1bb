/*
Package session owns the MyGBU authentication lifecycle: login, logout,
silent status recovery and password reset, over an observable session
state consumed by the presentation layer.

# Usage

	store := keyring.NewStore("")
	client := transport.NewClient("https://erp.gbu.ac.in/api", logger)
	manager := session.NewManager(client, store, session.WithLogger(logger))

	// Recover a previous session at startup, if a token survives.
	_ = manager.CheckStatus(ctx)

	// Interactive login.
	err := manager.Login(ctx, "GBU2021001", password, domain.UserTypeStudent)

# Observing state

Presentation layers subscribe and render; they never mutate:

	states, cancel := manager.Subscribe()
	defer cancel()
	for st := range states {
		render(st)
	}

The channel carries the latest snapshot after every transition; slow
consumers see coalesced intermediate states, never stale ones.

# Errors

Every failure is a *session.Error with a Kind from the fixed taxonomy
(transport kinds, AuthRejected, MalformedResponse, SchemaMismatch,
OperationInProgress, RateLimited, ResetRejected) and a human-readable
message. Nothing in this package panics on backend behavior.

# Concurrency

The Manager is safe for concurrent use. It is the single writer of
session state; Login and CheckStatus are reentrancy-guarded, so a call
issued while another is in flight fails fast with OperationInProgress
instead of racing a second request. Logout always wins: a login or
status check still in flight when Logout runs has its result discarded
when it lands, and the token it may have persisted is removed again.
*/
package session
