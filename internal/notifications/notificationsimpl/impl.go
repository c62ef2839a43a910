package notificationsimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/notifications"
	"github.com/fanhubapp/fanhub-client/internal/realtime"
	"github.com/fanhubapp/fanhub-client/internal/session"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

const refreshTimeout = 10 * time.Second

type Impl struct {
	API      api.Client
	Session  *session.Store
	Realtime realtime.Client
	Logger   logger.Logger
	Interval time.Duration

	mu     sync.Mutex
	unread int
	subs   []chan int
}

var _ notifications.Client = (*Impl)(nil)

type Opts struct {
	fx.In

	API      api.Client
	Session  *session.Store
	Realtime realtime.Client
	Config   *config.Config
	Logger   logger.Logger
}

func New(opts Opts) *Impl {
	return &Impl{
		API:      opts.API,
		Session:  opts.Session,
		Realtime: opts.Realtime,
		Logger:   opts.Logger,
		Interval: time.Duration(opts.Config.Notifications.PollSeconds) * time.Second,
	}
}

// SchedulePolling starts the periodic refresh and wires the socket push
// path. Stops cleanly when ctx is cancelled.
func (c *Impl) SchedulePolling(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(c.Interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			c.refresh(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule notification polling: %w", err)
	}

	scheduler.Start()

	events, unsubscribe := c.Realtime.Subscribe()
	sessions := c.Session.Subscribe()

	go func() {
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if ev.Type == realtime.EventNotification {
					c.refresh(ctx)
				}
			case <-sessions:
				// Login or logout. Either way the old count is stale.
				c.refresh(ctx)
			}
		}
	}()

	go func() {
		<-ctx.Done()
		c.Logger.Info("Stopping notification polling scheduler")
		if err := scheduler.Shutdown(); err != nil {
			c.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}

func (c *Impl) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

func (c *Impl) Subscribe() <-chan int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan int, 1)
	c.subs = append(c.subs, ch)
	return ch
}

func (c *Impl) refresh(ctx context.Context) {
	if c.Session.Current() == nil {
		c.publish(0)
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	count, err := c.API.Notifications().UnreadCount(reqCtx)
	if err != nil {
		c.Logger.Warn("Failed to refresh unread notification count", "error", err)
		return
	}

	c.publish(count)
}

func (c *Impl) publish(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unread = count
	for _, ch := range c.subs {
		select {
		case ch <- count:
		default:
		}
	}
}
