package socket

import (
	"encoding/json"
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
)

// Push message types sent by the server.
const (
	TypeAuthOK         = "AUTH_OK"
	TypeAuthError      = "AUTH_ERROR"
	TypeMailboxEdited  = "MAILBOX_EDITED"
	TypeMailboxCreated = "MAILBOX_CREATED"
	TypeMailboxDeleted = "MAILBOX_DELETED"
	TypeNewEmail       = "NEW_EMAIL"
)

// Event is a decoded push message. The set of implementations is closed:
// AuthOK, AuthError, MailboxEdited, MailboxCreated, MailboxDeleted,
// NewEmail and Unknown.
type Event interface {
	Type() string
	event()
}

// AuthOK confirms the session is live.
type AuthOK struct{}

// AuthError rejects the key sent on connect. The server closes the
// connection afterwards.
type AuthError struct{}

// MailboxEdited carries the new state of an edited mailbox.
type MailboxEdited struct {
	Mailbox api.Mailbox
}

// MailboxCreated carries a newly created mailbox.
type MailboxCreated struct {
	Mailbox api.Mailbox
}

// MailboxDeleted carries the ID of a deleted mailbox.
type MailboxDeleted struct {
	ID api.ID
}

// NewEmail announces an email delivered to a mailbox.
type NewEmail struct {
	MailboxID api.ID    `json:"mailbox_id"`
	Email     api.Email `json:"email"`
}

// Unknown is any message with a type this client does not handle.
type Unknown struct {
	Kind string
	Data json.RawMessage
}

func (AuthOK) Type() string         { return TypeAuthOK }
func (AuthError) Type() string      { return TypeAuthError }
func (MailboxEdited) Type() string  { return TypeMailboxEdited }
func (MailboxCreated) Type() string { return TypeMailboxCreated }
func (MailboxDeleted) Type() string { return TypeMailboxDeleted }
func (NewEmail) Type() string       { return TypeNewEmail }
func (u Unknown) Type() string      { return u.Kind }

func (AuthOK) event()         {}
func (AuthError) event()      {}
func (MailboxEdited) event()  {}
func (MailboxCreated) event() {}
func (MailboxDeleted) event() {}
func (NewEmail) event()       {}
func (Unknown) event()        {}

// ProtocolError is a push message that could not be decoded.
type ProtocolError struct {
	Data []byte
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("invalid push message %q: %v", e.Data, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

type rawMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Decode parses a push message.
func Decode(data []byte) (Event, error) {
	var msg rawMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, &ProtocolError{Data: data, Err: err}
	}

	var (
		ev  Event
		err error
	)
	switch msg.Type {
	case TypeAuthOK:
		ev = AuthOK{}
	case TypeAuthError:
		ev = AuthError{}
	case TypeMailboxEdited:
		var e MailboxEdited
		err = json.Unmarshal(msg.Data, &e.Mailbox)
		ev = e
	case TypeMailboxCreated:
		var e MailboxCreated
		err = json.Unmarshal(msg.Data, &e.Mailbox)
		ev = e
	case TypeMailboxDeleted:
		var e MailboxDeleted
		err = json.Unmarshal(msg.Data, &e.ID)
		ev = e
	case TypeNewEmail:
		var e NewEmail
		err = json.Unmarshal(msg.Data, &e)
		ev = e
	default:
		ev = Unknown{Kind: msg.Type, Data: msg.Data}
	}
	if err != nil {
		return nil, &ProtocolError{Data: data, Err: err}
	}
	return ev, nil
}
