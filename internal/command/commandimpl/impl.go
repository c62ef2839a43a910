package commandimpl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/command"
	"github.com/fanhubapp/fanhub-client/internal/notifications"
	"github.com/fanhubapp/fanhub-client/internal/player"
	"github.com/fanhubapp/fanhub-client/internal/player/playerimpl"
	"github.com/fanhubapp/fanhub-client/internal/prefetch"
	"github.com/fanhubapp/fanhub-client/internal/ratelimit"
	"github.com/fanhubapp/fanhub-client/internal/realtime"
	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"github.com/fanhubapp/fanhub-client/internal/router"
	"github.com/fanhubapp/fanhub-client/internal/session"
	"github.com/fanhubapp/fanhub-client/internal/ui"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

const requestTimeout = 15 * time.Second

type Opts struct {
	fx.In

	API           api.Client
	Session       *session.Store
	Guard         *router.Guard
	Player        *playerimpl.Factory
	History       viewhistory.Repository
	Notifications notifications.Client
	Realtime      realtime.Client
	Prefetch      prefetch.Warmer
	Logger        logger.Logger
}

type CommandImpl struct {
	API           api.Client
	Session       *session.Store
	Guard         *router.Guard
	Player        *playerimpl.Factory
	History       viewhistory.Repository
	Notifications notifications.Client
	Realtime      realtime.Client
	Prefetch      prefetch.Warmer
	Logger        logger.Logger

	In        io.Reader
	Out       io.Writer
	Presenter *ui.Presenter

	validate *validator.Validate
	limiter  ratelimit.Limiter

	mu     sync.Mutex
	engine player.Engine
}

var _ command.Client = (*CommandImpl)(nil)

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		API:           opts.API,
		Session:       opts.Session,
		Guard:         opts.Guard,
		Player:        opts.Player,
		History:       opts.History,
		Notifications: opts.Notifications,
		Realtime:      opts.Realtime,
		Prefetch:      opts.Prefetch,
		Logger:        opts.Logger,
		In:            os.Stdin,
		Out:           os.Stdout,
		Presenter:     ui.NewPresenter(),
		validate:      validator.New(),
		limiter:       ratelimit.NewInMemoryLimiter(1, time.Second, 3),
	}
}

// HandleCommands reads one command per line until EOF or quit. Playback
// commands dispatch to the open engine; everything else is a page command
// gated by the navigation guard.
func (c *CommandImpl) HandleCommands(ctx context.Context) error {
	state := c.Guard.Resolve(ctx)
	c.Logger.Info("Command handler started", "auth", state.String())
	c.printf("%s\n", c.Presenter.Info("type 'help' for the command list"))

	scanner := bufio.NewScanner(c.In)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	var events <-chan realtime.Event
	if c.Realtime != nil {
		ch, unsubscribe := c.Realtime.Subscribe()
		defer unsubscribe()
		events = ch
	}

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down")
			c.closeEngine()
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				c.closeEngine()
				return nil
			}

			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}

			if fields[0] == "quit" || fields[0] == "exit" {
				c.closeEngine()
				return nil
			}

			if err := c.dispatch(ctx, fields[0], fields[1:]); err != nil {
				c.printf("%s\n", c.Presenter.Error(err.Error()))
			}
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			c.renderEvent(ev)
		}
	}
}

func (c *CommandImpl) dispatch(ctx context.Context, name string, args []string) error {
	// Playback commands go straight to the engine when one is open.
	if c.currentEngine() != nil {
		if handled, err := c.dispatchPlayback(ctx, name, args); handled {
			return err
		}
	}

	switch name {
	case "help":
		c.printf("%s\n", helpMessage)
		return nil
	case "login":
		return c.handleLogin(ctx, args)
	case "register":
		return c.handleRegister(ctx, args)
	case "logout":
		return c.handleLogout(ctx)
	case "whoami":
		return c.handleWhoami()
	case "feed":
		return c.guarded(ctx, "/", func(ctx context.Context, _ router.Match) error {
			return c.handleFeed(ctx, args)
		})
	case "stories":
		return c.guarded(ctx, "/", func(ctx context.Context, _ router.Match) error {
			return c.handleStoryRail(ctx)
		})
	case "story":
		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		return c.guarded(ctx, "/story/"+id, c.handleOpenStory)
	case "profile":
		path := "/profile"
		if len(args) > 0 {
			path = "/profile/" + args[0]
		}
		return c.guarded(ctx, path, c.handleProfile)
	case "notifications":
		return c.guarded(ctx, "/notifications", func(ctx context.Context, _ router.Match) error {
			return c.handleNotifications(ctx, args)
		})
	case "trending":
		return c.guarded(ctx, "/trending", c.handleTrending)
	case "tournaments":
		return c.guarded(ctx, "/tournaments", c.handleTournaments)
	case "achievements":
		return c.guarded(ctx, "/achievements", c.handleAchievements)
	case "events":
		return c.guarded(ctx, "/events", c.handleEvents)
	case "points":
		return c.guarded(ctx, "/profile", c.handlePoints)
	case "stats":
		return c.guarded(ctx, "/about", c.handleStats)
	case "contact":
		return c.guarded(ctx, "/contact", func(ctx context.Context, _ router.Match) error {
			return c.handleContact(ctx, args)
		})
	case "history":
		if len(args) == 0 {
			return fmt.Errorf("usage: history <story-id>")
		}
		return c.guarded(ctx, "/story/"+args[0], c.handleHistory)
	case "chat":
		return c.guarded(ctx, "/chat", func(ctx context.Context, _ router.Match) error {
			return c.handleChat(args)
		})
	default:
		return fmt.Errorf("unknown command %q, type 'help' for the list", name)
	}
}

// guarded resolves the path, runs it through the navigation guard and only
// then invokes the page handler.
func (c *CommandImpl) guarded(ctx context.Context, path string, page func(context.Context, router.Match) error) error {
	target := router.Resolve(path)
	decision := c.Guard.Check(target)

	if decision.Redirect != nil {
		if decision.Redirect.Route.Name == "login" {
			return fmt.Errorf("sign in first: login <username> <password>")
		}
		return fmt.Errorf("not allowed, sent back to %s", decision.Redirect.Route.Name)
	}
	if !decision.Allowed {
		return fmt.Errorf("still resolving your session, try again")
	}

	pageCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return page(pageCtx, target)
}

func (c *CommandImpl) currentEngine() player.Engine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine
}

func (c *CommandImpl) setEngine(e player.Engine) {
	c.mu.Lock()
	c.engine = e
	c.mu.Unlock()
}

func (c *CommandImpl) closeEngine() {
	c.mu.Lock()
	e := c.engine
	c.engine = nil
	c.mu.Unlock()
	if e != nil {
		e.Close()
	}
}

func (c *CommandImpl) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}
