// Package tui is the interactive terminal interface over the state store.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marckohlbrugge/tempmail-cli/internal/log"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
)

const statusTimeout = 4 * time.Second

// Options configures Run.
type Options struct {
	Server       string
	Key          string
	DarkTheme    bool
	StoreOptions []store.Option
}

type (
	connectedMsg    struct{ ok bool }
	storeChangedMsg struct{}
	actionDoneMsg   struct{}
	notificationMsg struct{ notify.Notification }
	clearStatusMsg  struct{ seq int }
	confirmMsg      struct {
		prompt string
		reply  chan<- bool
	}
)

// Model is the TUI application state. Everything shown is read from the
// store; the model itself only keeps cursors and transient UI state.
type Model struct {
	ctx    context.Context
	store  *store.Store
	server string
	key    string

	keys     keyMap
	styles   styles
	help     help.Model
	viewport viewport.Model

	form    *draftForm
	confirm *confirmMsg

	status    notify.Notification
	statusSeq int

	mailboxCursor int
	emailCursor   int
	width         int
	height        int
	connecting    bool
}

func newModel(ctx context.Context, s *store.Store, opts Options) Model {
	return Model{
		ctx:        ctx,
		store:      s,
		server:     opts.Server,
		key:        opts.Key,
		keys:       defaultKeyMap(),
		styles:     newStyles(opts.DarkTheme),
		help:       newHelpModel(opts.DarkTheme),
		viewport:   viewport.New(0, 0),
		connecting: true,
	}
}

// Init connects the store.
func (m Model) Init() tea.Cmd {
	ctx, s, server, key := m.ctx, m.store, m.server, m.key
	return func() tea.Msg {
		return connectedMsg{ok: s.Connect(ctx, server, key)}
	}
}

// bridge forwards store notifications and confirmations to the running
// program.
type bridge struct {
	ctx     context.Context
	program *tea.Program
}

func (b *bridge) Notify(n notify.Notification) {
	log.Printf("notification (%s): %s", n.Level, n.Message)
	b.program.Send(notificationMsg{n})
}

func (b *bridge) Confirm(prompt string) bool {
	reply := make(chan bool, 1)
	b.program.Send(confirmMsg{prompt: prompt, reply: reply})
	select {
	case answer := <-reply:
		return answer
	case <-b.ctx.Done():
		return false
	}
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
// The session is closed on return.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	b := &bridge{ctx: ctx}
	s := store.New(b, b, opts.StoreOptions...)

	p := tea.NewProgram(
		newModel(ctx, s, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	b.program = p
	s.Subscribe(func() { p.Send(storeChangedMsg{}) })

	_, err := p.Run()
	cancel()
	s.Disconnect()
	return err
}
