package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

func newStore(t *testing.T, path string) *Store {
	t.Helper()
	cfg := &config.Config{}
	cfg.Session.TokenPath = path
	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
}

// unsignedToken builds a syntactically valid JWT carrying only an exp claim.
// The store never verifies signatures, it only reads expiry.
func unsignedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"exp": exp.Unix()})
	require.NoError(t, err)

	return fmt.Sprintf("%s.%s.sig", header, base64.RawURLEncoding.EncodeToString(payload))
}

func TestSetPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	store := newStore(t, path)
	store.Set(domain.Session{
		User:  domain.User{ID: "u-1", Username: "ava", Role: domain.RoleAdmin},
		Token: unsignedToken(t, time.Now().Add(time.Hour)),
	})

	reloaded := newStore(t, path)
	current := reloaded.Current()
	require.NotNil(t, current)
	require.Equal(t, "ava", current.User.Username)
	require.True(t, reloaded.IsAdmin())
}

func TestExpiredPersistedTokenIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	store := newStore(t, path)
	store.Set(domain.Session{
		User:  domain.User{ID: "u-1", Username: "ava"},
		Token: unsignedToken(t, time.Now().Add(-time.Hour)),
	})

	reloaded := newStore(t, path)
	require.Nil(t, reloaded.Current())
}

func TestClearRemovesSessionAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	store := newStore(t, path)
	store.Set(domain.Session{User: domain.User{ID: "u-1", Username: "ava"}, Token: "opaque"})
	store.Clear()

	require.Nil(t, store.Current())
	require.Empty(t, store.Token())
	require.Nil(t, newStore(t, path).Current())
}

func TestOpaqueTokenNeverSelfExpires(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	store := newStore(t, path)
	store.Set(domain.Session{User: domain.User{ID: "u-1", Username: "ava"}, Token: "not-a-jwt"})

	reloaded := newStore(t, path)
	require.NotNil(t, reloaded.Current())
}

func TestSubscribeSignalsOnChange(t *testing.T) {
	store := newStore(t, filepath.Join(t.TempDir(), "session"))
	sub := store.Subscribe()

	store.Set(domain.Session{User: domain.User{ID: "u-1", Username: "ava"}, Token: "opaque"})

	select {
	case <-sub:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after Set")
	}

	store.Clear()
	select {
	case <-sub:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal after Clear")
	}
}

func TestCapabilitiesFollowRole(t *testing.T) {
	store := newStore(t, filepath.Join(t.TempDir(), "session"))

	require.False(t, store.Can(CapViewStoryAnalytics))

	store.Set(domain.Session{User: domain.User{ID: "u-1", Username: "ava", Role: domain.RoleUser}, Token: "opaque"})
	require.False(t, store.Can(CapViewStoryAnalytics))
	require.False(t, store.IsAdmin())

	store.Set(domain.Session{User: domain.User{ID: "u-2", Username: "root", Role: domain.RoleAdmin}, Token: "opaque"})
	require.True(t, store.Can(CapViewStoryAnalytics))
	require.True(t, store.Can(CapManageTournaments))
	require.True(t, store.IsAdmin())
}
