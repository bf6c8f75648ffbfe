package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
	"github.com/marckohlbrugge/tempmail-cli/internal/render"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
)

// Update handles events and updates the model. Store actions may block on
// the network and publish change events, so they always run as commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight-envelopeHeight, 1)
		m.refresh()
		return m, nil
	case connectedMsg:
		m.connecting = false
		return m, nil
	case storeChangedMsg, actionDoneMsg:
		m.refresh()
		return m, nil
	case notificationMsg:
		m.statusSeq++
		m.status = msg.Notification
		seq := m.statusSeq
		return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = notify.Notification{}
		}
		return m, nil
	case confirmMsg:
		m.confirm = &msg
		return m, nil
	case draftSavedMsg:
		return m.handleDraftSaved(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.confirm != nil {
		answer := msg.String() == "y" || msg.String() == "Y"
		m.confirm.reply <- answer
		m.confirm = nil
		return m, nil
	}
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch m.store.View() {
	case store.ViewMailboxList:
		return m.updateMailboxList(msg)
	case store.ViewMailboxOpen:
		return m.updateEmailList(msg)
	case store.ViewEmailOpen:
		return m.updateEmail(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateMailboxList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.store
	mailboxes := s.Mailboxes()
	selected, hasSelection := at(mailboxes, m.mailboxCursor)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.mailboxCursor = max(m.mailboxCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.mailboxCursor = min(m.mailboxCursor+1, max(len(mailboxes)-1, 0))
	case key.Matches(msg, m.keys.New):
		m.form = newDraftForm(s.NewDraft(nil))
		return m, m.form.inputs[fieldName].Focus()
	case key.Matches(msg, m.keys.Refresh):
		return m, do(func() { s.LoadMailboxes() })
	case !hasSelection:
		return m, nil
	case key.Matches(msg, m.keys.Open):
		m.emailCursor = 0
		return m, do(func() { s.OpenMailbox(selected.ID) })
	case key.Matches(msg, m.keys.Edit):
		m.form = newDraftForm(s.NewDraft(&selected))
		return m, m.form.inputs[fieldName].Focus()
	case key.Matches(msg, m.keys.Lock):
		return m, do(func() { s.ToggleMailboxLocked(selected.ID) })
	case key.Matches(msg, m.keys.Delete):
		return m, do(func() { s.DeleteMailbox(selected) })
	case key.Matches(msg, m.keys.Copy):
		return m, copyAddress(selected.FullAddress(s.Connection().ServerName))
	}
	return m, nil
}

func (m Model) updateEmailList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.store
	mailbox, _ := s.CurrentMailbox()
	emails := s.Emails()
	selected, hasSelection := at(emails, m.emailCursor)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, do(s.NavigateBack)
	case key.Matches(msg, m.keys.Up):
		m.emailCursor = max(m.emailCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.emailCursor = min(m.emailCursor+1, max(len(emails)-1, 0))
	case key.Matches(msg, m.keys.Lock):
		return m, do(func() { s.ToggleMailboxLocked(mailbox.ID) })
	case key.Matches(msg, m.keys.Copy):
		return m, copyAddress(mailbox.FullAddress(s.Connection().ServerName))
	case key.Matches(msg, m.keys.DeleteChecked):
		return m, do(func() { s.DeleteSelectedEmails() })
	case !hasSelection:
		return m, nil
	case key.Matches(msg, m.keys.Open):
		m.viewport.GotoTop()
		return m, do(func() { s.OpenEmail(selected.ID) })
	case key.Matches(msg, m.keys.Check):
		return m, do(func() { s.SetChecked(selected.ID, !selected.Checked) })
	case key.Matches(msg, m.keys.Delete):
		return m, do(func() { s.DeleteEmails(mailbox.ID, []api.ID{selected.ID}) })
	}
	return m, nil
}

func (m Model) updateEmail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.store

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, do(s.NavigateBack)
	case key.Matches(msg, m.keys.Headers):
		return m, do(s.ToggleHeaders)
	case key.Matches(msg, m.keys.Delete):
		mailbox, _ := s.CurrentMailbox()
		email, ok := s.CurrentEmail()
		if !ok {
			return m, nil
		}
		return m, do(func() { s.DeleteEmails(mailbox.ID, []api.ID{email.ID}) })
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh brings cursors and the email viewport in line with the store.
func (m *Model) refresh() {
	m.mailboxCursor = clamp(m.mailboxCursor, len(m.store.Mailboxes()))
	m.emailCursor = clamp(m.emailCursor, len(m.store.Emails()))
	if m.store.View() == store.ViewEmailOpen {
		body := render.Terminal(m.store.CurrentEmailBody())
		if m.viewport.Width > 0 {
			body = lipgloss.NewStyle().Width(m.viewport.Width).Render(body)
		}
		m.viewport.SetContent(body)
	}
}

func do(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return actionDoneMsg{}
	}
}

func copyAddress(address string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(address); err != nil {
			return notificationMsg{notify.Notification{Level: notify.Danger, Message: "Could not copy address!"}}
		}
		return notificationMsg{notify.Notification{Level: notify.Success, Message: "Copied " + address}}
	}
}

func at[T any](items []T, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

func clamp(cursor, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(cursor, 0), n-1)
}
