package playerimpl

import (
	"context"
	"time"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/player"
	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const sideEffectTimeout = 10 * time.Second

// Factory builds one engine per story-viewing session.
type Factory struct {
	Stories    api.Stories
	History    viewhistory.Repository
	Logger     logger.Logger
	Clock      clockwork.Clock
	ItemBudget time.Duration
	Tick       time.Duration
	// CanViewAnalytics is the admin capability predicate for the viewers
	// overlay.
	CanViewAnalytics func() bool
}

type FactoryOpts struct {
	fx.In

	Client  api.Client
	History viewhistory.Repository
	Logger  logger.Logger
	Config  *config.Config
	Clock   clockwork.Clock
	Caps    CapabilitySource
}

// CapabilitySource is the slice of the session store the engine needs.
type CapabilitySource interface {
	IsAdmin() bool
}

func NewFactory(opts FactoryOpts) *Factory {
	return &Factory{
		Stories:          opts.Client.Stories(),
		History:          opts.History,
		Logger:           opts.Logger,
		Clock:            opts.Clock,
		ItemBudget:       time.Duration(opts.Config.Player.ItemBudgetMS) * time.Millisecond,
		Tick:             time.Duration(opts.Config.Player.TickMS) * time.Millisecond,
		CanViewAnalytics: opts.Caps.IsAdmin,
	}
}

// Open fetches the collection and starts playback at the requested story,
// falling back to the first story when the id is unknown or absent. The
// engine owns no retry: a failed or empty fetch is terminal for the session.
func (f *Factory) Open(ctx context.Context, requestedID string, onExit func()) (player.Engine, error) {
	stories, err := f.Stories.List(ctx)
	if err != nil {
		return nil, err
	}

	return f.OpenCollection(stories, requestedID, onExit)
}

// OpenCollection starts playback over an already fetched collection.
func (f *Factory) OpenCollection(stories []domain.Story, requestedID string, onExit func()) (player.Engine, error) {
	if len(stories) == 0 {
		return nil, player.ErrNoStories
	}

	start := 0
	for i := range stories {
		if stories[i].ID == requestedID {
			start = i
			break
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	e := &Engine{
		stories:    stories,
		cur:        player.Cursor{Story: start, Item: 0},
		stores:     f.Stories,
		history:    f.History,
		logger:     f.Logger,
		clock:      f.Clock,
		budget:     f.ItemBudget,
		tick:       f.Tick,
		canViewers: f.CanViewAnalytics,
		onExit:     onExit,
		ctx:        ctx,
		cancel:     cancel,
		viewed:     make(map[player.Cursor]bool),
		events:     make(chan player.Snapshot, 64),
		// One like/comment/share per second with a small burst; a mashed
		// key must not spam the backend.
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}

	e.mu.Lock()
	e.mountLocked()
	e.publishLocked()
	e.mu.Unlock()

	return e, nil
}
