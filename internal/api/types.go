package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ID identifies a mailbox or an email. It is sent as a JSON string but
// numeric identifiers from the server are accepted as well.
type ID string

// UnmarshalJSON accepts both string and number identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// NeverExpires is the wire sentinel for a mailbox without an expiration.
const NeverExpires = "never"

// Expiry is a mailbox expiration: either a point in time or never.
type Expiry struct {
	Never bool
	At    time.Time
}

// ExpiresNever returns an Expiry that never passes.
func ExpiresNever() Expiry {
	return Expiry{Never: true}
}

// ExpiresAt returns an Expiry at t.
func ExpiresAt(t time.Time) Expiry {
	return Expiry{At: t}
}

// MarshalJSON encodes the expiry as "never", an RFC 3339 timestamp, or
// null when unset.
func (e Expiry) MarshalJSON() ([]byte, error) {
	if e.Never {
		return json.Marshal(NeverExpires)
	}
	if e.At.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(e.At.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON decodes "never", an RFC 3339 timestamp, or null.
func (e *Expiry) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*e = Expiry{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid expiry %s", data)
	}
	if s == NeverExpires {
		*e = ExpiresNever()
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid expiry %q: %w", s, err)
	}
	*e = ExpiresAt(t)
	return nil
}

func (e Expiry) String() string {
	if e.Never {
		return NeverExpires
	}
	if e.At.IsZero() {
		return ""
	}
	return e.At.Format(time.RFC3339)
}

// Mailbox is a disposable address on the server.
type Mailbox struct {
	ID          ID         `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	ExpiresAt   Expiry     `json:"expires_at"`
	Locked      bool       `json:"locked"`
	UnreadCount int        `json:"unread_count"`
	LastEmailAt *time.Time `json:"last_email_at,omitempty"`
	Emails      []Email    `json:"emails"`
}

// FullAddress returns the mailbox's email address on the given server.
func (m Mailbox) FullAddress(serverName string) string {
	if serverName == "" {
		return m.Address
	}
	return m.Address + "@" + serverName
}

// Email is a message received by a mailbox.
type Email struct {
	ID      ID     `json:"id"`
	Read    bool   `json:"read"`
	Headers string `json:"headers"`
	Body    string `json:"body"`

	// Checked marks the email as selected for a batch operation. It is
	// never sent to or received from the server.
	Checked bool `json:"-"`
}

// IsUnread returns true if the email hasn't been read.
func (e *Email) IsUnread() bool {
	return !e.Read
}

// Status is the server descriptor returned by the status endpoint.
type Status struct {
	Success    bool   `json:"success"`
	ServerName string `json:"server_name"`
}

// ParseID converts a command-line argument into an ID.
func ParseID(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("id cannot be empty")
	}
	return ID(strings.TrimSpace(s)), nil
}
