package router

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fanhubapp/fanhub-client/internal/api/mocks"
	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/session"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

func guardFixture(t *testing.T, ctrl *gomock.Controller) (*Guard, *session.Store, *mocks.MockAuth) {
	t.Helper()

	auth := mocks.NewMockAuth(ctrl)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Auth().Return(auth).AnyTimes()

	cfg := &config.Config{}
	cfg.Session.TokenPath = filepath.Join(t.TempDir(), "session")
	store := session.New(session.Opts{Config: cfg, Logger: logger.New(logger.Opts{})})

	guard := NewGuard(GuardOpts{
		Sessions: store,
		Client:   client,
		Logger:   logger.New(logger.Opts{}),
	})
	return guard, store, auth
}

func TestResolveWithoutStoredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _, _ := guardFixture(t, ctrl)

	require.Equal(t, GuardUnauthenticated, guard.Resolve(context.Background()))
}

func TestResolveValidatesStoredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, store, auth := guardFixture(t, ctrl)
	store.Set(domain.Session{User: domain.User{ID: "u-1", Username: "ava"}, Token: "opaque"})

	auth.EXPECT().Me(gomock.Any()).Return(&domain.User{ID: "u-1", Username: "ava", Role: domain.RoleAdmin}, nil)

	require.Equal(t, GuardAuthenticated, guard.Resolve(context.Background()))
	// The freshly fetched user replaces the persisted copy.
	require.Equal(t, domain.RoleAdmin, store.Current().User.Role)
}

func TestResolveClearsRejectedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, store, auth := guardFixture(t, ctrl)
	store.Set(domain.Session{User: domain.User{ID: "u-1", Username: "ava"}, Token: "stale"})

	auth.EXPECT().Me(gomock.Any()).Return(nil, fmt.Errorf("401"))

	require.Equal(t, GuardUnauthenticated, guard.Resolve(context.Background()))
	require.Nil(t, store.Current())
}

func TestCheckDuringLoadingBlocksEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _, _ := guardFixture(t, ctrl)

	decision := guard.Check(Resolve("/gallery"))
	require.Equal(t, GuardLoading, decision.State)
	require.False(t, decision.Allowed)
	require.Nil(t, decision.Redirect)
}

func TestCheckRedirectsToLoginAndPreservesTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _, _ := guardFixture(t, ctrl)
	require.Equal(t, GuardUnauthenticated, guard.Resolve(context.Background()))

	decision := guard.Check(Resolve("/story/s-7"))
	require.NotNil(t, decision.Redirect)
	require.Equal(t, "login", decision.Redirect.Route.Name)
	require.NotNil(t, decision.PendingTarget)
	require.Equal(t, "s-7", decision.PendingTarget.Params["id"])

	pending := guard.ConsumePending()
	require.NotNil(t, pending)
	require.Equal(t, "story", pending.Route.Name)
	require.Nil(t, guard.ConsumePending())
}

func TestCheckAllowsPublicRoutesWhileSignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _, _ := guardFixture(t, ctrl)
	guard.Resolve(context.Background())

	decision := guard.Check(Resolve("/login"))
	require.True(t, decision.Allowed)
}

func TestAdminRouteBouncesNonAdminsHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, store, _ := guardFixture(t, ctrl)
	store.Set(domain.Session{User: domain.User{ID: "u-1", Username: "ava", Role: domain.RoleUser}, Token: "opaque"})
	guard.OnLogin()

	decision := guard.Check(Resolve("/admin"))
	require.NotNil(t, decision.Redirect)
	require.Equal(t, "home", decision.Redirect.Route.Name)
}

func TestAdminRouteAllowsAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, store, _ := guardFixture(t, ctrl)
	store.Set(domain.Session{User: domain.User{ID: "u-1", Username: "root", Role: domain.RoleAdmin}, Token: "opaque"})
	guard.OnLogin()

	require.True(t, guard.Check(Resolve("/admin")).Allowed)
}
