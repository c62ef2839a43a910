package housekeepingimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"

	"github.com/fanhubapp/fanhub-client/internal/housekeeping"
	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

const cleanupTimeout = 30 * time.Second

// Impl prunes view-history rows past the retention window. The store only
// needs enough depth to render seen/unseen rings and audit recent displays;
// anything older is dead weight on a client database.
type Impl struct {
	History   viewhistory.Repository
	Logger    logger.Logger
	Interval  time.Duration
	Retention time.Duration
}

var _ housekeeping.Client = (*Impl)(nil)

type Opts struct {
	fx.In

	History viewhistory.Repository
	Config  *config.Config
	Logger  logger.Logger
}

func New(opts Opts) *Impl {
	return &Impl{
		History:   opts.History,
		Logger:    opts.Logger,
		Interval:  time.Duration(opts.Config.History.CleanupHours) * time.Hour,
		Retention: time.Duration(opts.Config.History.RetentionDays) * 24 * time.Hour,
	}
}

func (c *Impl) ScheduleCleanup(ctx context.Context) error {
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
			c.cleanup(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule view history cleanup: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		c.Logger.Info("Stopping view history cleanup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			c.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}

func (c *Impl) cleanup(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, cleanupTimeout)
	defer cancel()

	pruned, err := c.History.CleanupOldRecords(reqCtx, c.Retention)
	if err != nil {
		c.Logger.Warn("View history cleanup failed", "error", err)
		return
	}

	if pruned > 0 {
		c.Logger.Info("Pruned old view history", "rows", pruned, "retention", c.Retention.String())
	}
}
