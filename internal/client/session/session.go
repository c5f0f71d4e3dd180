// Package session owns authentication state for the admin console: the
// persisted bearer token, the resolved identity, and the gate protecting
// administrative commands.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/nmorozs/quizadmin/internal/client/api"
	"github.com/nmorozs/quizadmin/internal/client/models"
	"github.com/nmorozs/quizadmin/internal/common"
	"github.com/nmorozs/quizadmin/internal/logging"
)

// State is the session lifecycle state. Loading is always transient;
// Authenticated and Unauthenticated are the terminal display states.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// TokenHolder carries the in-memory bearer token shared between the session
// and the API client. It satisfies api.TokenSource.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *TokenHolder) set(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

var _ api.TokenSource = (*TokenHolder)(nil)

// Session resolves and guards the current identity. The role check is made
// in the resolution path itself, so every entry point (initial token pickup
// and fresh login alike) enforces the administrative role identically.
//
// Identity resolution failures are never retried: any failure, including a
// rejected token and a plain network error, collapses to logout. The two are
// not distinguished to the operator; the log line carries the cause.
type Session struct {
	client api.Client
	store  TokenStore
	holder *TokenHolder
	logger logging.Logger

	mu    sync.Mutex
	state State
	user  *models.User
}

func New(client api.Client, store TokenStore, holder *TokenHolder, logger logging.Logger) *Session {
	return &Session{
		client: client,
		store:  store,
		holder: holder,
		logger: logger,
		state:  StateUninitialized,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the resolved identity, or nil when unauthenticated.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether an identity is committed. It holds exactly
// when CurrentUser is non-nil.
func (s *Session) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// Initialize picks up a previously persisted token, if any, and resolves it.
// With no stored token the session ends Unauthenticated without a backend
// call. A token that fails resolution or lacks the administrative role is
// wiped. Initialize always leaves the session in a terminal state.
func (s *Session) Initialize(ctx context.Context) {
	s.setState(StateLoading)

	token, err := s.store.Load()
	if err != nil {
		s.logger.Error(ctx, "loading stored token", "error", err.Error())
		s.setState(StateUnauthenticated)
		return
	}
	if token == "" {
		s.setState(StateUnauthenticated)
		return
	}

	s.holder.set(token)
	if err := s.resolveAdmin(ctx); err != nil {
		s.logger.Warn(ctx, "stored token rejected, logging out", "error", err.Error())
		s.Logout(ctx)
	}
}

// Login persists the token and resolves the identity behind it. A token
// that does not resolve to an administrator is rejected and wiped.
func (s *Session) Login(ctx context.Context, token string) error {
	s.setState(StateLoading)

	s.holder.set(token)
	if err := s.store.Save(token); err != nil {
		s.holder.set("")
		s.setState(StateUnauthenticated)
		return fmt.Errorf("persisting token: %w", err)
	}

	if err := s.resolveAdmin(ctx); err != nil {
		s.Logout(ctx)
		return err
	}
	return nil
}

// LoginWithCredentials exchanges credentials for a token and logs in with it.
func (s *Session) LoginWithCredentials(ctx context.Context, email, password string) error {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	return s.Login(ctx, token)
}

// Logout clears the persisted token and the resolved identity. It never
// fails; a store error is logged and the in-memory state is cleared anyway.
func (s *Session) Logout(ctx context.Context) {
	if err := s.store.Clear(); err != nil {
		s.logger.Error(ctx, "clearing token store", "error", err.Error())
	}
	s.holder.set("")

	s.mu.Lock()
	s.user = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()
}

// RequireAdmin is the gate in front of protected commands. It returns the
// authenticated administrator, or common.ErrUnauthorized.
func (s *Session) RequireAdmin() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || !s.user.HasRole(models.RoleSuperAdmin) {
		return nil, common.ErrUnauthorized
	}
	return s.user, nil
}

// resolveAdmin fetches the identity for the current token and commits it if
// it carries the administrative role.
func (s *Session) resolveAdmin(ctx context.Context) error {
	user, err := s.client.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("resolving identity: %w", err)
	}
	if !user.HasRole(models.RoleSuperAdmin) {
		return fmt.Errorf("%w: missing %s role", common.ErrUnauthorized, models.RoleSuperAdmin)
	}

	s.mu.Lock()
	s.user = user
	s.state = StateAuthenticated
	s.mu.Unlock()
	return nil
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
