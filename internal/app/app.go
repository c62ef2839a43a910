package app

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/api/rest"
	"github.com/fanhubapp/fanhub-client/internal/command"
	"github.com/fanhubapp/fanhub-client/internal/command/commandimpl"
	"github.com/fanhubapp/fanhub-client/internal/housekeeping"
	"github.com/fanhubapp/fanhub-client/internal/housekeeping/housekeepingimpl"
	"github.com/fanhubapp/fanhub-client/internal/notifications"
	"github.com/fanhubapp/fanhub-client/internal/notifications/notificationsimpl"
	"github.com/fanhubapp/fanhub-client/internal/player/playerimpl"
	"github.com/fanhubapp/fanhub-client/internal/prefetch"
	"github.com/fanhubapp/fanhub-client/internal/realtime"
	"github.com/fanhubapp/fanhub-client/internal/realtime/realtimeimpl"
	repositories "github.com/fanhubapp/fanhub-client/internal/repositories/fx"
	"github.com/fanhubapp/fanhub-client/internal/router"
	"github.com/fanhubapp/fanhub-client/internal/session"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/fanhubapp/fanhub-client/pkg/pgx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		session.New,
		router.NewGuard,
		playerimpl.NewFactory,
		clockwork.NewRealClock,
	),
	fx.Provide(
		func(s *session.Store) rest.TokenSource { return s },
		func(s *session.Store) playerimpl.CapabilitySource { return s },
	),
	fx.Provide(
		fx.Annotate(
			rest.New,
			fx.As(new(api.Client)),
		),
		fx.Annotate(
			realtimeimpl.New,
			fx.As(new(realtime.Client)),
		),
		fx.Annotate(
			notificationsimpl.New,
			fx.As(new(notifications.Client)),
		),
		fx.Annotate(
			housekeepingimpl.New,
			fx.As(new(housekeeping.Client)),
		),
		fx.Annotate(
			prefetch.New,
			fx.As(new(prefetch.Warmer)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

// migrate brings the local view-history schema up to date before anything
// touches the pool.
func migrate(c *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", c.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	return goose.Up(db, filepath.Join(wd, "migrations"))
}

func run(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	log logger.Logger,
	rtClient realtime.Client,
	notifClient notifications.Client,
	keeper housekeeping.Client,
	warmer prefetch.Warmer,
	cmdClient command.Client,
) {
	appCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := rtClient.Start(appCtx); err != nil {
				log.Error("Failed to start socket client", "error", err)
			}
			if err := notifClient.SchedulePolling(appCtx); err != nil {
				log.Error("Failed to start notification polling", "error", err)
			}
			if err := keeper.ScheduleCleanup(appCtx); err != nil {
				log.Error("Failed to start view history cleanup", "error", err)
			}

			go func() {
				if err := cmdClient.HandleCommands(appCtx); err != nil && appCtx.Err() == nil {
					log.Error("Command handler stopped", "error", err)
				}
				// quit or EOF: bring the whole app down.
				if err := shutdowner.Shutdown(); err != nil {
					log.Error("Failed to shut down", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			warmer.Release()
			if err := rtClient.Close(); err != nil {
				log.Error("Failed to close socket client", "error", err)
			}
			return nil
		},
	})
}
