package realtimeimpl

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"

	"github.com/fanhubapp/fanhub-client/internal/api/rest"
	"github.com/fanhubapp/fanhub-client/internal/realtime"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/fanhubapp/fanhub-client/pkg/retry"
)

const (
	handshakeTimeout = 10 * time.Second
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMessageSize   = 512 * 1024
	reconnectPause   = 5 * time.Second
)

type Impl struct {
	socketURL string
	tokens    rest.TokenSource
	logger    logger.Logger

	connMu sync.Mutex
	conn   *websocket.Conn

	// writeMu serializes ping frames and outbound events on one connection.
	writeMu sync.Mutex

	subMu   sync.Mutex
	subs    map[int]chan realtime.Event
	nextSub int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ realtime.Client = (*Impl)(nil)

type Opts struct {
	fx.In

	Config *config.Config
	Tokens rest.TokenSource
	Logger logger.Logger
}

func New(opts Opts) *Impl {
	return &Impl{
		socketURL: opts.Config.API.SocketURL,
		tokens:    opts.Tokens,
		logger:    opts.Logger,
		subs:      make(map[int]chan realtime.Event),
	}
}

func (c *Impl) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go c.run(runCtx)
	return nil
}

// Subscribe registers an event sink. A slow sink drops events rather than
// stalling the read loop.
func (c *Impl) Subscribe() (<-chan realtime.Event, func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan realtime.Event, 16)
	c.subs[id] = ch

	return ch, func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
}

// Send writes one event on the live connection. There is no queue: a send
// while disconnected fails and the caller decides whether to surface it.
func (c *Impl) Send(ev realtime.Event) error {
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()

	if conn == nil {
		return fmt.Errorf("socket not connected")
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(ev); err != nil {
		return fmt.Errorf("socket send failed: %w", err)
	}
	return nil
}

func (c *Impl) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.closeConn()
	c.wg.Wait()
	return nil
}

// run keeps one live connection, reading until it breaks, then dials again.
func (c *Impl) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		if ctx.Err() != nil {
			return
		}

		// Signed out: no point dialing, the handshake needs a token.
		if c.tokens.Token() == "" {
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectPause):
			}
			continue
		}

		err := retry.Do(ctx, c.logger, "realtime.dial", func() error {
			return c.dial(ctx)
		}, retry.DefaultConfig())
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("Socket connection failed, backing off", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectPause):
			}
			continue
		}

		c.readLoop(ctx)
		c.closeConn()
	}
}

func (c *Impl) dial(ctx context.Context) error {
	token := c.tokens.Token()
	if token == "" {
		return fmt.Errorf("no session token for socket auth")
	}

	target, err := url.Parse(c.socketURL)
	if err != nil {
		return fmt.Errorf("invalid socket url: %w", err)
	}
	q := target.Query()
	q.Set("token", token)
	target.RawQuery = q.Encode()

	dialer := websocket.Dialer{
		HandshakeTimeout:  handshakeTimeout,
		EnableCompression: true,
	}

	conn, resp, err := dialer.DialContext(ctx, target.String(), nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("socket dial failed (status %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("socket dial failed: %w", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	c.logger.Info("Socket connected", "url", c.socketURL)

	c.wg.Add(1)
	go c.pingLoop(ctx, conn)

	return nil
}

func (c *Impl) readLoop(ctx context.Context) {
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()
	if conn == nil {
		return
	}

	for {
		var ev realtime.Event
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("Socket read failed", "error", err)
			}
			return
		}
		c.broadcast(ev)
	}
}

func (c *Impl) pingLoop(ctx context.Context, conn *websocket.Conn) {
	defer c.wg.Done()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.writeMu.Lock()
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			c.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (c *Impl) broadcast(ev realtime.Event) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (c *Impl) closeConn() {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}
