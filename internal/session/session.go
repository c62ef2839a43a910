// Package session owns the authenticated-user state. It is the only writer
// of the persisted token; every other component reads through Current or
// reacts through Subscribe.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

// persisted is the on-disk shape under the fixed token path, the local
// storage analog of the browser client.
type persisted struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type Store struct {
	mu        sync.RWMutex
	current   *domain.Session
	subs      []chan struct{}
	tokenPath string
	logger    logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *Store {
	s := &Store{
		tokenPath: opts.Config.Session.TokenPath,
		logger:    opts.Logger,
	}

	if err := s.load(); err != nil {
		opts.Logger.Warn("No persisted session restored", "error", err)
	}

	return s
}

// Current returns the session snapshot, or nil when unauthenticated.
func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token implements the REST client's token source. Empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Subscribe returns a channel that receives a signal on every session
// change. Slow subscribers miss intermediate signals, never the latest.
func (s *Store) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// Set installs a session and persists its token.
func (s *Store) Set(session domain.Session) {
	if session.ExpiresAt.IsZero() {
		session.ExpiresAt = tokenExpiry(session.Token)
	}

	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()

	if err := s.persist(session); err != nil {
		s.logger.Warn("Failed to persist session token", "error", err)
	}

	s.notify()
}

// Clear drops the session and removes the persisted token. Used by logout
// and by expired-session handling at page level.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove persisted session token", "error", err)
	}

	s.notify()
}

func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Store) persist(session domain.Session) error {
	payload, err := json.Marshal(persisted{Token: session.Token, User: session.User})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.tokenPath, payload, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("failed to decode session file: %w", err)
	}

	if p.Token == "" {
		return fmt.Errorf("session file has no token")
	}

	restored := domain.Session{
		User:      p.User,
		Token:     p.Token,
		ExpiresAt: tokenExpiry(p.Token),
	}

	if restored.Expired(time.Now()) {
		s.logger.Info("Discarding expired persisted session")
		if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove expired session file", "error", err)
		}
		return fmt.Errorf("persisted token expired")
	}

	s.current = &restored
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature.
// Verification is the backend's job; the client only wants to know when to
// stop presenting a token that can no longer work.
func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
