package prefetch

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

const warmTimeout = 15 * time.Second

// Warmer fetches media ahead of playback so the next segment starts
// without a visible stall. Fetches are best effort; a failed warm only
// means the media loads on demand later.
type Warmer interface {
	WarmStory(story domain.Story)
	Release()
}

type Impl struct {
	pool   *ants.Pool
	client *http.Client
	logger logger.Logger

	mu     sync.Mutex
	warmed map[string]struct{}
}

var _ Warmer = (*Impl)(nil)

type Opts struct {
	fx.In

	Logger logger.Logger
}

func New(opts Opts) (*Impl, error) {
	pool, err := ants.NewPool(4, ants.WithPreAlloc(true))
	if err != nil {
		return nil, err
	}
	return &Impl{
		pool:   pool,
		client: &http.Client{Timeout: warmTimeout},
		logger: opts.Logger,
		warmed: make(map[string]struct{}),
	}, nil
}

// WarmStory submits every not-yet-warmed media URL of the story to the
// worker pool. Returns immediately.
func (w *Impl) WarmStory(story domain.Story) {
	for _, item := range story.MediaItems {
		w.warmURL(item.URL)
	}
	if len(story.MediaItems) == 0 && story.MediaURL != "" {
		w.warmURL(story.MediaURL)
	}
}

func (w *Impl) warmURL(url string) {
	if url == "" {
		return
	}

	w.mu.Lock()
	if _, done := w.warmed[url]; done {
		w.mu.Unlock()
		return
	}
	w.warmed[url] = struct{}{}
	w.mu.Unlock()

	target := url
	err := w.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			w.logger.Warn("Failed to build prefetch request", "url", target, "error", err)
			return
		}
		resp, err := w.client.Do(req)
		if err != nil {
			w.logger.Debug("Prefetch failed", "url", target, "error", err)
			return
		}
		defer resp.Body.Close()
		// Drain so the connection goes back to the keep-alive pool warm.
		_, _ = io.Copy(io.Discard, resp.Body)
	})
	if err != nil {
		w.logger.Error("Failed to submit prefetch job", "url", target, "error", err)
	}
}

// Release stops the worker pool. Pending jobs are dropped.
func (w *Impl) Release() {
	w.pool.Release()
}
