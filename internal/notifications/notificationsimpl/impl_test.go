package notificationsimpl

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fanhubapp/fanhub-client/internal/api/mocks"
	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/realtime"
	"github.com/fanhubapp/fanhub-client/internal/session"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

type fakeRealtime struct {
	events chan realtime.Event
}

func (f *fakeRealtime) Start(context.Context) error { return nil }
func (f *fakeRealtime) Send(realtime.Event) error   { return nil }
func (f *fakeRealtime) Close() error                { return nil }
func (f *fakeRealtime) Subscribe() (<-chan realtime.Event, func()) {
	return f.events, func() {}
}

func testSession(t *testing.T) *session.Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.TokenPath = filepath.Join(t.TempDir(), "session")

	store := session.New(session.Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
	store.Set(domain.Session{
		User:  domain.User{ID: "u-1", Username: "ava"},
		Token: "opaque-token",
	})
	return store
}

func TestRefreshOnStartAndOnPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var count atomic.Int64
	count.Store(3)

	notif := mocks.NewMockNotifications(ctrl)
	notif.EXPECT().UnreadCount(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		return int(count.Load()), nil
	}).AnyTimes()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Notifications().Return(notif).AnyTimes()

	rt := &fakeRealtime{events: make(chan realtime.Event, 1)}

	impl := &Impl{
		API:      client,
		Session:  testSession(t),
		Realtime: rt,
		Logger:   logger.New(logger.Opts{}),
		Interval: time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, impl.SchedulePolling(ctx))

	require.Eventually(t, func() bool {
		return impl.Unread() == 3
	}, 2*time.Second, 10*time.Millisecond)

	count.Store(5)
	rt.events <- realtime.Event{Type: realtime.EventNotification}

	require.Eventually(t, func() bool {
		return impl.Unread() == 5
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSignedOutCountIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Session.TokenPath = filepath.Join(t.TempDir(), "session")
	store := session.New(session.Opts{Config: cfg, Logger: logger.New(logger.Opts{})})

	impl := &Impl{
		API:      client,
		Session:  store,
		Realtime: &fakeRealtime{events: make(chan realtime.Event)},
		Logger:   logger.New(logger.Opts{}),
		Interval: time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, impl.SchedulePolling(ctx))

	sub := impl.Subscribe()
	select {
	case got := <-sub:
		require.Zero(t, got)
	case <-time.After(2 * time.Second):
		// The immediate poll may have run before Subscribe; the stored
		// value still has to be zero.
	}
	require.Zero(t, impl.Unread())
}
