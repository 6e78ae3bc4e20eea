package parley

import (
	"context"
	"errors"
	"io"
	"net/url"
	"sync"

	"github.com/parleychat/parley-sdk-go/parley/internal"

	"github.com/coder/websocket"
)

// Client owns the WebSocket connection and pumps raw text frames between the
// server and one Session.
type Client struct {
	cfg     Config
	logger  Logger
	conn    *internal.Conn
	writeCh chan string

	mu      sync.Mutex
	state   ConnectionState
	session *Session
	onState func(StateEvent)
	onError func(error)
	cancel  context.CancelFunc
}

// NewClient constructs a client with the provided config.
// Use DefaultConfig() or ConfigFromEnv() as a starting point and modify as
// needed. Set a timeout to 0 to disable it.
func NewClient(cfg Config) *Client {
	buf := cfg.SendBuffer
	if buf <= 0 {
		buf = 16
	}
	return &Client{
		cfg:     cfg,
		logger:  noopLogger{},
		writeCh: make(chan string, buf),
		state:   StateDisconnected,
	}
}

// SetLogger overrides logger (optional).
func (c *Client) SetLogger(l Logger) {
	if l == nil {
		return
	}
	c.logger = l
}

// OnStateChange registers a callback for connection state transitions.
func (c *Client) OnStateChange(fn func(StateEvent)) { c.onState = fn }

// OnError registers a callback for transport-level errors.
func (c *Client) OnError(fn func(error)) { c.onError = fn }

// Connect dials the server and starts internal loops.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateConnecting || c.state == StateConnected {
		c.mu.Unlock()
		return NewError(ErrorConnection, "already connected")
	}
	c.mu.Unlock()

	if c.cfg.URL == "" {
		return NewError(ErrorInvalidConfig, "empty URL")
	}
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return WrapError(ErrorInvalidConfig, "parse URL", err)
	}
	c.setState(StateConnecting, nil)

	dialCtx := ctx
	if c.cfg.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.cfg.HandshakeTimeout)
		defer cancel()
	}

	ws, _, err := websocket.Dial(dialCtx, u.String(), nil)
	if err != nil {
		c.setState(StateDisconnected, err)
		return WrapError(ErrorConnection, "dial", err)
	}
	c.conn = internal.NewConn(ws, c.cfg.ReadTimeout, c.cfg.WriteTimeout)

	runCtx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()
	c.setState(StateConnected, nil)

	go c.readLoop(runCtx)
	go c.writeLoop(runCtx)
	return nil
}

// StartSession registers username with the server and installs the returned
// Session as the sole consumer of inbound frames. One session per client.
func (c *Client) StartSession(username string) (*Session, error) {
	c.mu.Lock()
	if c.state != StateConnected {
		c.mu.Unlock()
		return nil, NewError(ErrorNotConnected, "connect before starting a session")
	}
	if c.session != nil {
		c.mu.Unlock()
		return nil, NewError(ErrorConnection, "session already started")
	}
	c.mu.Unlock()

	sess := StartSession(username, c.trySend, WithSessionLogger(c.logger))
	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	return sess, nil
}

// Session returns the active session, or nil before StartSession.
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Close shuts down the client and closes the WebSocket. Ending the session is
// just this: the read loop stops and the session stops receiving frames.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
	c.setState(StateClosed, nil)
	if c.conn != nil {
		return c.conn.Close(websocket.StatusNormalClosure, "client close")
	}
	return nil
}

// trySend enqueues one frame without blocking. A full buffer is reported as a
// send error per the best-effort contract, never blocked on.
func (c *Client) trySend(text string) error {
	c.mu.Lock()
	connected := c.state == StateConnected
	c.mu.Unlock()
	if !connected {
		return NewError(ErrorNotConnected, "not connected")
	}

	select {
	case c.writeCh <- text:
		return nil
	default:
		return NewError(ErrorSend, "send buffer full")
	}
}

func (c *Client) readLoop(ctx context.Context) {
	for {
		raw, err := c.conn.ReadText(ctx)
		if err != nil {
			if isExpectedDisconnect(ctx, err) {
				return
			}
			c.fireError(WrapError(ErrorConnection, "read frame", err))
			c.logger.Warn("read loop exit", map[string]any{"error": err.Error()})
			c.setState(StateError, err)
			return
		}
		c.mu.Lock()
		sess := c.session
		c.mu.Unlock()
		if sess != nil {
			sess.HandleFrame(raw)
		}
	}
}

func (c *Client) writeLoop(ctx context.Context) {
	for {
		select {
		case text := <-c.writeCh:
			if err := c.conn.WriteText(ctx, text); err != nil {
				c.fireError(WrapError(ErrorSend, "write frame", err))
				c.logger.Warn("write loop exit", map[string]any{"error": err.Error()})
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) setState(next ConnectionState, cause error) {
	c.mu.Lock()
	prev := c.state
	c.state = next
	fn := c.onState
	c.mu.Unlock()
	if fn != nil && prev != next {
		fn(StateEvent{OldState: prev, NewState: next, Error: cause})
	}
}

func (c *Client) fireError(err error) {
	if c.onError != nil && err != nil {
		c.onError(err)
	}
}

func isExpectedDisconnect(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	default:
		return false
	}
}
