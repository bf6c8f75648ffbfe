package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
)

const (
	headerHeight   = 2
	footerHeight   = 2
	envelopeHeight = 5
)

// View renders the UI.
func (m Model) View() string {
	var body string
	var bindings []key.Binding

	switch {
	case m.form != nil:
		body = m.renderForm()
		bindings = m.form.keys.help()
	case m.store.View() == store.ViewMailboxList:
		body = m.renderMailboxList()
		bindings = m.keys.mailboxListHelp()
	case m.store.View() == store.ViewMailboxOpen:
		body = m.renderEmailList()
		bindings = m.keys.emailListHelp()
	case m.store.View() == store.ViewEmailOpen:
		body = m.renderEmail()
		bindings = m.keys.emailHelp()
	default:
		body = m.renderDisconnected()
		bindings = []key.Binding{m.keys.Quit}
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(body)

	content := b.String()
	if m.height > 0 {
		content = lipgloss.NewStyle().Height(m.height - footerHeight).MaxHeight(m.height - footerHeight).Render(content)
	}
	return content + "\n" + m.renderStatus() + "\n" + m.help.ShortHelpView(bindings)
}

func (m Model) renderHeader() string {
	conn := m.store.Connection()
	title := m.styles.title.Render("tm")
	if !conn.Ready {
		return title
	}

	parts := []string{title, conn.ServerName}
	switch m.store.View() {
	case store.ViewMailboxOpen, store.ViewEmailOpen:
		if mb, ok := m.store.CurrentMailbox(); ok {
			parts = append(parts, mb.Name, m.styles.dim.Render(mb.FullAddress(conn.ServerName)))
		}
	}
	parts = append(parts, m.styles.dim.Render("push: "+m.store.PushState().String()))
	return strings.Join(parts, "  ")
}

func (m Model) renderDisconnected() string {
	if m.connecting {
		return m.styles.dim.Render("Connecting to " + m.server + "...")
	}
	return "Not connected to " + m.server + "."
}

func (m Model) renderMailboxList() string {
	mailboxes := m.store.Mailboxes()
	if len(mailboxes) == 0 {
		return m.styles.dim.Render("No mailboxes. Press n to create one.")
	}

	cols := cmdutil.MailboxColumnsFor(m.store.Connection().ServerName)
	now := time.Now()
	start, end := visibleRange(m.mailboxCursor, len(mailboxes), m.listHeight())

	var b strings.Builder
	for i := start; i < end; i++ {
		mb := mailboxes[i]
		style := m.styles.row
		if mb.UnreadCount > 0 {
			style = m.styles.unread
		}
		if i == m.mailboxCursor {
			style = style.Inherit(m.styles.selected)
		}
		b.WriteString(style.Render(cmdutil.FormatRow(mb, cols, now)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEmailList() string {
	emails := m.store.Emails()
	if len(emails) == 0 {
		return m.styles.dim.Render("No emails.")
	}

	now := time.Now()
	start, end := visibleRange(m.emailCursor, len(emails), m.listHeight())

	var b strings.Builder
	for i := start; i < end; i++ {
		e := emails[i]
		check := "[ ] "
		if e.Checked {
			check = "[x] "
		}
		style := m.styles.row
		if e.IsUnread() {
			style = m.styles.unread
		}
		if i == m.emailCursor {
			style = style.Inherit(m.styles.selected)
		}
		b.WriteString(style.Render(check + cmdutil.FormatRow(e, cmdutil.EmailColumns, now)))
		b.WriteString("\n")
	}
	if n := m.store.CheckedCount(); n > 0 {
		b.WriteString(m.styles.dim.Render(fmt.Sprintf("%d selected", n)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEmail() string {
	email, ok := m.store.CurrentEmail()
	if !ok {
		return ""
	}

	env := email.Envelope()
	var b strings.Builder
	m.writeField(&b, "From", env.From)
	m.writeField(&b, "To", env.To)
	m.writeField(&b, "Subject", env.Subject)
	if !env.Date.IsZero() {
		m.writeField(&b, "Date", env.Date.Local().Format("Mon, 02 Jan 2006 15:04"))
	}
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	return b.String()
}

func (m Model) writeField(b *strings.Builder, label, value string) {
	b.WriteString(m.styles.label.Render(label + ":"))
	b.WriteString(value)
	b.WriteString("\n")
}

func (m Model) renderStatus() string {
	if m.confirm != nil {
		prompt := strings.ReplaceAll(m.confirm.prompt, "\n\n", " ")
		return m.styles.prompt.Render(prompt + " [y/N]")
	}
	if m.status.Message == "" {
		return ""
	}
	return m.styles.status[m.status.Level].Render(m.status.Message)
}

func (m Model) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-headerHeight-footerHeight-1, 1)
}

// visibleRange returns the window of n rows of the given height that keeps
// cursor in view. A zero height shows every row.
func visibleRange(cursor, n, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := max(cursor-height+1, 0)
	return start, min(start+height, n)
}

