package router

import (
	"context"
	"sync"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/session"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"go.uber.org/fx"
)

// GuardState is the guard's three-way state machine. Resolution runs exactly
// once per boot; there is no retry or timeout.
type GuardState int

const (
	GuardLoading GuardState = iota
	GuardUnauthenticated
	GuardAuthenticated
)

func (s GuardState) String() string {
	switch s {
	case GuardLoading:
		return "loading"
	case GuardUnauthenticated:
		return "unauthenticated"
	default:
		return "authenticated"
	}
}

// Decision tells the host what to render for a navigation attempt.
type Decision struct {
	State GuardState
	// Allowed means render the requested route.
	Allowed bool
	// Redirect is set when the guard sends the user elsewhere.
	Redirect *Match
	// PendingTarget is the originally requested location, preserved so the
	// login flow can return to it.
	PendingTarget *Match
}

type Guard struct {
	mu       sync.Mutex
	state    GuardState
	pending  *Match
	sessions *session.Store
	auth     api.Auth
	logger   logger.Logger
}

type GuardOpts struct {
	fx.In

	Sessions *session.Store
	Client   api.Client
	Logger   logger.Logger
}

func NewGuard(opts GuardOpts) *Guard {
	return &Guard{
		state:    GuardLoading,
		sessions: opts.Sessions,
		auth:     opts.Client.Auth(),
		logger:   opts.Logger,
	}
}

// Resolve validates any restored session against the backend and settles the
// guard state. Called once at boot.
func (g *Guard) Resolve(ctx context.Context) GuardState {
	current := g.sessions.Current()
	if current == nil {
		g.setState(GuardUnauthenticated)
		return GuardUnauthenticated
	}

	user, err := g.auth.Me(ctx)
	if err != nil {
		g.logger.Warn("Session check failed, clearing stored session", "error", err)
		g.sessions.Clear()
		g.setState(GuardUnauthenticated)
		return GuardUnauthenticated
	}

	g.sessions.Set(domain.Session{User: *user, Token: current.Token, ExpiresAt: current.ExpiresAt})
	g.setState(GuardAuthenticated)
	return GuardAuthenticated
}

// Check gates one navigation attempt against the current state.
func (g *Guard) Check(target Match) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == GuardLoading {
		return Decision{State: GuardLoading}
	}

	if !target.Route.Protected {
		return Decision{State: g.state, Allowed: true}
	}

	if g.state == GuardUnauthenticated {
		g.pending = &target
		login := Resolve("/login")
		return Decision{State: g.state, Redirect: &login, PendingTarget: &target}
	}

	if target.Route.AdminOnly && !g.sessions.IsAdmin() {
		home := Home
		return Decision{State: g.state, Redirect: &home}
	}

	return Decision{State: g.state, Allowed: true}
}

// ConsumePending pops the location preserved before a login redirect, if any.
func (g *Guard) ConsumePending() *Match {
	g.mu.Lock()
	defer g.mu.Unlock()

	target := g.pending
	g.pending = nil
	return target
}

// OnLogin flips the guard after a successful login.
func (g *Guard) OnLogin() {
	g.setState(GuardAuthenticated)
}

// OnLogout drops back to unauthenticated.
func (g *Guard) OnLogout() {
	g.setState(GuardUnauthenticated)
}

func (g *Guard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Guard) setState(state GuardState) {
	g.mu.Lock()
	g.state = state
	g.mu.Unlock()
}
