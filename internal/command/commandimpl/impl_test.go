package commandimpl

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fanhubapp/fanhub-client/internal/api/mocks"
	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/ratelimit"
	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"github.com/fanhubapp/fanhub-client/internal/router"
	"github.com/fanhubapp/fanhub-client/internal/session"
	"github.com/fanhubapp/fanhub-client/internal/ui"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

type noopWarmer struct{}

func (noopWarmer) WarmStory(domain.Story) {}
func (noopWarmer) Release()               {}

type noopNotifications struct{}

func (noopNotifications) SchedulePolling(context.Context) error { return nil }
func (noopNotifications) Unread() int                           { return 0 }
func (noopNotifications) Subscribe() <-chan int                 { return nil }

type fakeHistory struct {
	seen    map[string]bool
	entries map[string][]*viewhistory.Entry
}

func (f *fakeHistory) Record(context.Context, viewhistory.Entry) error { return nil }
func (f *fakeHistory) SeenStoryIDs(context.Context) (map[string]bool, error) {
	return f.seen, nil
}
func (f *fakeHistory) ListByStory(_ context.Context, storyID string) ([]*viewhistory.Entry, error) {
	if entries := f.entries[storyID]; len(entries) > 0 {
		return entries, nil
	}
	return nil, viewhistory.ErrNotFound
}
func (f *fakeHistory) CleanupOldRecords(context.Context, time.Duration) (int64, error) {
	return 0, nil
}

type fixture struct {
	cmd    *CommandImpl
	client *mocks.MockClient
	auth   *mocks.MockAuth
	out    *bytes.Buffer
}

func newFixture(t *testing.T, ctrl *gomock.Controller, input string) *fixture {
	t.Helper()

	client := mocks.NewMockClient(ctrl)
	auth := mocks.NewMockAuth(ctrl)
	client.EXPECT().Auth().Return(auth).AnyTimes()

	log := logger.New(logger.Opts{})

	cfg := &config.Config{}
	cfg.Session.TokenPath = filepath.Join(t.TempDir(), "session")
	sessions := session.New(session.Opts{Config: cfg, Logger: log})

	guard := router.NewGuard(router.GuardOpts{
		Sessions: sessions,
		Client:   client,
		Logger:   log,
	})

	out := &bytes.Buffer{}
	cmd := &CommandImpl{
		API:           client,
		Session:       sessions,
		Guard:         guard,
		History:       &fakeHistory{seen: map[string]bool{}},
		Notifications: noopNotifications{},
		Prefetch:      noopWarmer{},
		Logger:        log,
		In:            strings.NewReader(input),
		Out:           out,
		Presenter:     ui.NewPresenter(),
		validate:      validator.New(),
		limiter:       ratelimit.NewInMemoryLimiter(1, time.Second, 3),
	}

	return &fixture{cmd: cmd, client: client, auth: auth, out: out}
}

func TestLoginSignsInAndFlipsGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl, "login ava secret123\n")
	fx.auth.EXPECT().Login(gomock.Any(), "ava", "secret123").Return(&domain.Session{
		User:  domain.User{ID: "u-1", Username: "ava"},
		Token: "opaque",
	}, nil)

	require.NoError(t, fx.cmd.HandleCommands(context.Background()))

	require.Contains(t, fx.out.String(), "signed in as @ava")
	require.Equal(t, router.GuardAuthenticated, fx.cmd.Guard.State())
	require.NotNil(t, fx.cmd.Session.Current())
}

func TestLoginRejectsShortPasswordWithoutAPICall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl, "login ava pw\n")

	require.NoError(t, fx.cmd.HandleCommands(context.Background()))
	require.Contains(t, fx.out.String(), "invalid credentials")
}

func TestProtectedCommandRequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl, "stories\n")

	require.NoError(t, fx.cmd.HandleCommands(context.Background()))
	require.Contains(t, fx.out.String(), "sign in first")
}

func TestStoryRailShowsSeenMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl, "login ava secret123\nstories\n")
	fx.auth.EXPECT().Login(gomock.Any(), "ava", "secret123").Return(&domain.Session{
		User:  domain.User{ID: "u-1", Username: "ava"},
		Token: "opaque",
	}, nil)

	stories := mocks.NewMockStories(ctrl)
	fx.client.EXPECT().Stories().Return(stories).AnyTimes()
	stories.EXPECT().List(gomock.Any()).Return([]domain.Story{
		{ID: "s-1", Author: domain.User{Username: "ben"}, MediaURL: "https://cdn/x.jpg"},
	}, nil)

	require.NoError(t, fx.cmd.HandleCommands(context.Background()))
	require.Contains(t, fx.out.String(), "s-1")
	require.Contains(t, fx.out.String(), "@ben")
}

func TestHistoryCommandListsLocalViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl, "login ava secret123\nhistory s-1\n")
	fx.auth.EXPECT().Login(gomock.Any(), "ava", "secret123").Return(&domain.Session{
		User:  domain.User{ID: "u-1", Username: "ava"},
		Token: "opaque",
	}, nil)

	history := fx.cmd.History.(*fakeHistory)
	history.entries = map[string][]*viewhistory.Entry{
		"s-1": {
			{StoryID: "s-1", ItemIndex: 1, Author: "ben", Completed: false, ViewedAt: time.Now()},
			{StoryID: "s-1", ItemIndex: 0, Author: "ben", Completed: true, ViewedAt: time.Now().Add(-time.Hour)},
		},
	}

	require.NoError(t, fx.cmd.HandleCommands(context.Background()))
	require.Contains(t, fx.out.String(), "2 local views of s-1")
	require.Contains(t, fx.out.String(), "completed")
	require.Contains(t, fx.out.String(), "interrupted")
}

func TestHistoryCommandWithNoRecordedViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl, "login ava secret123\nhistory s-404\n")
	fx.auth.EXPECT().Login(gomock.Any(), "ava", "secret123").Return(&domain.Session{
		User:  domain.User{ID: "u-1", Username: "ava"},
		Token: "opaque",
	}, nil)

	require.NoError(t, fx.cmd.HandleCommands(context.Background()))
	require.Contains(t, fx.out.String(), "no local views recorded for s-404")
}

func TestUnknownCommandIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newFixture(t, ctrl, "frobnicate\n")

	require.NoError(t, fx.cmd.HandleCommands(context.Background()))
	require.Contains(t, fx.out.String(), "unknown command")
}
