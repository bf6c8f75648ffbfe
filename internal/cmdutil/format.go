package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/textutil"
)

// Column is one field of a listing row.
type Column[T any] struct {
	Width  int
	Getter func(T, time.Time) string
}

// MailboxColumnsFor returns the fields of a mailbox listing, with
// addresses completed with serverName.
func MailboxColumnsFor(serverName string) []Column[api.Mailbox] {
	return []Column[api.Mailbox]{
		{Width: 10, Getter: func(m api.Mailbox, _ time.Time) string { return m.ID.String() }},
		{Width: 24, Getter: func(m api.Mailbox, _ time.Time) string { return m.Name }},
		{Width: 40, Getter: func(m api.Mailbox, _ time.Time) string { return m.FullAddress(serverName) }},
		{Width: 12, Getter: func(m api.Mailbox, _ time.Time) string { return FormatExpiry(m.ExpiresAt) }},
		{Width: 0, Getter: func(m api.Mailbox, now time.Time) string { return mailboxFlags(m, now) }},
	}
}

// EmailColumns are the fields of an email listing.
var EmailColumns = []Column[api.Email]{
	{Width: 1, Getter: func(e api.Email, _ time.Time) string {
		if e.IsUnread() {
			return "*"
		}
		return " "
	}},
	{Width: 10, Getter: func(e api.Email, _ time.Time) string { return e.ID.String() }},
	{Width: 12, Getter: func(e api.Email, now time.Time) string {
		date := e.Envelope().Date
		if date.IsZero() {
			return ""
		}
		return textutil.TimeAgo(date.Local(), now)
	}},
	{Width: 30, Getter: func(e api.Email, _ time.Time) string { return orDefault(e.Envelope().From, "(unknown)") }},
	{Width: 50, Getter: func(e api.Email, _ time.Time) string { return orDefault(e.Envelope().Subject, "(no subject)") }},
}

// FormatRow formats one item. A zero width column is not padded.
func FormatRow[T any](item T, cols []Column[T], now time.Time) string {
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		value := col.Getter(item, now)
		if col.Width == 0 {
			parts = append(parts, value)
			continue
		}
		value = textutil.Truncate(value, col.Width)
		parts = append(parts, fmt.Sprintf("%-*s", col.Width, value))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// PrintMailboxList prints mailboxes, one per line.
func PrintMailboxList(out io.Writer, mailboxes []api.Mailbox, serverName string, now time.Time) {
	cols := MailboxColumnsFor(serverName)
	for _, mb := range mailboxes {
		fmt.Fprintln(out, FormatRow(mb, cols, now))
	}
}

// PrintEmailList prints emails, one per line.
func PrintEmailList(out io.Writer, emails []api.Email, now time.Time) {
	for _, e := range emails {
		fmt.Fprintln(out, FormatRow(e, EmailColumns, now))
	}
}

// PrintJSON writes v as indented JSON.
func PrintJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatExpiry formats a mailbox expiration as a date, or "never".
func FormatExpiry(exp api.Expiry) string {
	if exp.Never {
		return api.NeverExpires
	}
	if exp.At.IsZero() {
		return ""
	}
	return textutil.FormatInputDate(exp.At.Local(), false)
}

func mailboxFlags(m api.Mailbox, now time.Time) string {
	var flags []string
	if m.Locked {
		flags = append(flags, "locked")
	}
	if m.UnreadCount > 0 {
		flags = append(flags, fmt.Sprintf("%d unread", m.UnreadCount))
	}
	if m.LastEmailAt != nil {
		flags = append(flags, "last "+textutil.TimeAgo(m.LastEmailAt.Local(), now))
	}
	if len(flags) == 0 {
		return ""
	}
	return "[" + strings.Join(flags, ", ") + "]"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
