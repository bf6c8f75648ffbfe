package socket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/net/websocket"

	"github.com/marckohlbrugge/tempmail-cli/internal/log"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
)

// Path is the push endpoint on the server.
const Path = "/socket"

// State is the lifecycle state of a push connection.
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateAuthenticating
	StateAuthenticated
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateClosed:
		return "closed"
	default:
		return "idle"
	}
}

// Handler receives the mailbox events pushed by the server.
type Handler interface {
	Apply(ev Event)
}

// Client is a push connection to the server. A Client runs at most once;
// it never reconnects.
type Client struct {
	url      string
	origin   string
	key      string
	handler  Handler
	notifier notify.Notifier

	state         atomic.Int32
	suppressClose atomic.Bool

	mu   sync.Mutex
	conn *websocket.Conn
}

// URL maps an HTTP server address to its push endpoint.
func URL(address string) string {
	address = strings.TrimSuffix(address, "/")
	switch {
	case strings.HasPrefix(address, "http://"):
		address = "ws://" + strings.TrimPrefix(address, "http://")
	case strings.HasPrefix(address, "https://"):
		address = "wss://" + strings.TrimPrefix(address, "https://")
	}
	return address + Path
}

// New creates a push client for the server at address. Mailbox events are
// passed to handler; connection problems are reported to notifier.
func New(address, key string, handler Handler, notifier notify.Notifier) *Client {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Client{
		url:      URL(address),
		origin:   strings.TrimSuffix(address, "/"),
		key:      key,
		handler:  handler,
		notifier: notifier,
	}
}

// State returns the current connection state.
func (c *Client) State() State {
	return State(c.state.Load())
}

func (c *Client) setState(s State) {
	c.state.Store(int32(s))
}

// Run connects, authenticates and dispatches events until the connection
// closes or ctx is cancelled. Cancelling ctx is a local close and is not
// reported to the user.
func (c *Client) Run(ctx context.Context) error {
	if !c.state.CompareAndSwap(int32(StateIdle), int32(StateConnecting)) {
		return errors.New("socket client already started")
	}

	cfg, err := websocket.NewConfig(c.url, c.origin)
	if err != nil {
		c.closed(ctx)
		return fmt.Errorf("invalid socket address: %w", err)
	}

	conn, err := cfg.DialContext(ctx)
	if err != nil {
		c.closed(ctx)
		return fmt.Errorf("failed to connect to socket: %w", err)
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := websocket.Message.Send(conn, "auth "+c.key); err != nil {
		conn.Close()
		c.closed(ctx)
		return fmt.Errorf("failed to authenticate socket: %w", err)
	}
	c.setState(StateAuthenticating)

	var readErr error
	for {
		var data []byte
		if err := websocket.Message.Receive(conn, &data); err != nil {
			readErr = err
			break
		}
		c.handleMessage(data)
	}

	conn.Close()
	c.closed(ctx)

	if ctx.Err() != nil || errors.Is(readErr, io.EOF) {
		return nil
	}
	return readErr
}

// Close closes the connection without notifying the user.
func (c *Client) Close() error {
	c.suppressClose.Store(true)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) handleMessage(data []byte) {
	ev, err := Decode(data)
	if err != nil {
		log.Printf("dropping push message: %v", err)
		return
	}

	switch e := ev.(type) {
	case AuthOK:
		c.setState(StateAuthenticated)
	case AuthError:
		c.suppressClose.Store(true)
		c.notifier.Notify(notify.Notification{Level: notify.Danger, Message: "Error connecting to socket!"})
	case Unknown:
		log.Printf("not handled socket message: %s %s", e.Kind, e.Data)
	default:
		if c.handler != nil {
			c.handler.Apply(ev)
		}
	}
}

func (c *Client) closed(ctx context.Context) {
	c.setState(StateClosed)
	if ctx.Err() != nil || c.suppressClose.Load() {
		return
	}
	c.notifier.Notify(notify.Notification{Level: notify.Danger, Message: "Socket connection closed!"})
}
