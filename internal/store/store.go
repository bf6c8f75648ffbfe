// Package store holds the client-side state of a session with a mail server
// and the actions that change it.
//
// State changes come from two directions: actions, which call the HTTP API
// and apply the result locally, and push events delivered by the socket
// client through Apply. The mutex only protects memory; it is never held
// across a network round-trip, so a late response can still land in a view
// the user has already left.
package store

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/log"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
	"github.com/marckohlbrugge/tempmail-cli/internal/render"
	"github.com/marckohlbrugge/tempmail-cli/internal/socket"
)

// View is the screen the user is on.
type View int

const (
	ViewDisconnected View = iota
	ViewMailboxList
	ViewMailboxOpen
	ViewEmailOpen
)

func (v View) String() string {
	switch v {
	case ViewMailboxList:
		return "mailboxes"
	case ViewMailboxOpen:
		return "mailbox"
	case ViewEmailOpen:
		return "email"
	default:
		return "disconnected"
	}
}

// ConnectionContext describes the authenticated session.
type ConnectionContext struct {
	Address    string
	Key        string
	ServerName string
	Ready      bool
}

// Option configures a Store.
type Option func(*Store)

// WithoutPush skips the push connection. Edits and deletions then never
// converge locally; this suits one-shot commands.
func WithoutPush() Option {
	return func(s *Store) { s.push = false }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEventHook registers fn to be called after each push event is applied.
func WithEventHook(fn func(socket.Event)) Option {
	return func(s *Store) { s.eventHook = fn }
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Store) { s.httpClient = c }
}

// Store is the single source of truth for the UI.
type Store struct {
	notifier   notify.Notifier
	confirmer  notify.Confirmer
	now        func() time.Time
	push       bool
	httpClient *http.Client
	eventHook  func(socket.Event)

	mu             sync.Mutex
	conn           ConnectionContext
	client         *api.Client
	socket         *socket.Client
	cancelPush     context.CancelFunc
	group          *errgroup.Group
	view           View
	mailboxes      []*api.Mailbox
	currentMailbox *api.Mailbox
	emails         []*api.Email
	currentEmail   *api.Email
	viewHeaders    bool

	subMu       sync.Mutex
	subscribers []func()
}

// New creates a disconnected Store.
func New(notifier notify.Notifier, confirmer notify.Confirmer, opts ...Option) *Store {
	if notifier == nil {
		notifier = notify.Discard
	}
	if confirmer == nil {
		confirmer = notify.Always(false)
	}
	s := &Store{
		notifier:   notifier,
		confirmer:  confirmer,
		now:        time.Now,
		push:       true,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect probes the server and, when it answers, opens the session: it
// creates the API and push clients, marks the store ready and loads the
// mailbox list. The push connection lives until ctx is cancelled or
// Disconnect is called.
func (s *Store) Connect(ctx context.Context, address, key string) bool {
	if s.Connection().Ready {
		s.Disconnect()
	}

	status, ok := api.CheckConnectionWith(s.httpClient, address, key)
	if !ok {
		s.notify(notify.Danger, "Error connecting to server!")
		return false
	}
	s.notify(notify.Success, "Connection established!")

	client := api.NewClient(address, key)
	client.SetHTTPClient(s.httpClient)

	s.mu.Lock()
	s.client = client
	s.conn = ConnectionContext{
		Address:    address,
		Key:        key,
		ServerName: status.ServerName,
		Ready:      true,
	}
	s.view = ViewMailboxList
	if s.push {
		pushCtx, cancel := context.WithCancel(ctx)
		sock := socket.New(address, key, s, s.notifier)
		g, gctx := errgroup.WithContext(pushCtx)
		g.Go(func() error {
			err := sock.Run(gctx)
			s.changed()
			return err
		})
		s.socket = sock
		s.cancelPush = cancel
		s.group = g
	}
	s.mu.Unlock()
	s.changed()

	s.LoadMailboxes()
	return true
}

// Disconnect closes the session and forgets all state.
func (s *Store) Disconnect() {
	s.mu.Lock()
	cancel, sock, g := s.cancelPush, s.socket, s.group
	s.client = nil
	s.socket = nil
	s.cancelPush = nil
	s.group = nil
	s.conn = ConnectionContext{}
	s.view = ViewDisconnected
	s.mailboxes = nil
	s.currentMailbox = nil
	s.emails = nil
	s.currentEmail = nil
	s.viewHeaders = false
	s.mu.Unlock()

	if sock != nil {
		sock.Close()
	}
	if cancel != nil {
		cancel()
	}
	if g != nil {
		if err := g.Wait(); err != nil {
			log.Printf("push connection ended: %v", err)
		}
	}
	s.changed()
}

// Wait blocks until the push connection ends. It returns immediately when
// there is none.
func (s *Store) Wait() error {
	s.mu.Lock()
	g := s.group
	s.mu.Unlock()
	if g == nil {
		return nil
	}
	return g.Wait()
}

// Subscribe registers fn to be called after every state change.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) changed() {
	s.subMu.Lock()
	subs := append([]func(){}, s.subscribers...)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) notify(level notify.Level, msg string) {
	s.notifier.Notify(notify.Notification{Level: level, Message: msg})
}

// apiClient returns the API client, notifying the user when there is no session.
func (s *Store) apiClient() *api.Client {
	s.mu.Lock()
	c := s.client
	s.mu.Unlock()
	if c == nil {
		s.notify(notify.Danger, "Not connected to a server!")
	}
	return c
}

// Connection returns the session descriptor.
func (s *Store) Connection() ConnectionContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

// PushState returns the state of the push connection.
func (s *Store) PushState() socket.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.socket == nil {
		return socket.StateIdle
	}
	return s.socket.State()
}

// View returns the active view.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Mailboxes returns a copy of the mailbox list, most recently active first
// once push events have arrived.
func (s *Store) Mailboxes() []api.Mailbox {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Mailbox, len(s.mailboxes))
	for i, mb := range s.mailboxes {
		out[i] = *mb
	}
	return out
}

// Mailbox returns the mailbox with the given ID.
func (s *Store) Mailbox(id api.ID) (api.Mailbox, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.mailboxIndex(id); i != -1 {
		return *s.mailboxes[i], true
	}
	return api.Mailbox{}, false
}

// CurrentMailbox returns the open mailbox.
func (s *Store) CurrentMailbox() (api.Mailbox, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentMailbox == nil {
		return api.Mailbox{}, false
	}
	return *s.currentMailbox, true
}

// Emails returns a copy of the open mailbox's emails.
func (s *Store) Emails() []api.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Email, len(s.emails))
	for i, e := range s.emails {
		out[i] = *e
	}
	return out
}

// CurrentEmail returns the open email.
func (s *Store) CurrentEmail() (api.Email, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentEmail == nil {
		return api.Email{}, false
	}
	return *s.currentEmail, true
}

// ViewHeaders reports whether the open email shows its raw headers.
func (s *Store) ViewHeaders() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewHeaders
}

// ToggleHeaders switches the open email between body and raw headers.
func (s *Store) ToggleHeaders() {
	s.mu.Lock()
	s.viewHeaders = !s.viewHeaders
	s.mu.Unlock()
	s.changed()
}

// CurrentEmailBody returns the sanitized markup of the open email: its
// body, or its raw headers one line per line when headers are toggled on.
func (s *Store) CurrentEmailBody() string {
	s.mu.Lock()
	e := s.currentEmail
	headers := s.viewHeaders
	var raw string
	if e != nil {
		if headers {
			raw = e.Headers
		} else {
			raw = e.Body
		}
	}
	s.mu.Unlock()

	if e == nil {
		return ""
	}
	if headers {
		return render.Headers(raw)
	}
	return render.Body(raw)
}

// CheckedCount returns the number of emails selected for a batch operation.
func (s *Store) CheckedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.emails {
		if e.Checked {
			n++
		}
	}
	return n
}

func (s *Store) mailboxIndex(id api.ID) int {
	for i, mb := range s.mailboxes {
		if mb.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) emailIndex(id api.ID) int {
	for i, e := range s.emails {
		if e.ID == id {
			return i
		}
	}
	return -1
}
