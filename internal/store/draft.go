package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/log"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
	"github.com/marckohlbrugge/tempmail-cli/internal/textutil"
)

// DraftMode tells whether a draft creates a mailbox or edits one.
type DraftMode int

const (
	DraftCreate DraftMode = iota
	DraftEdit
)

func (m DraftMode) String() string {
	if m == DraftEdit {
		return "edit"
	}
	return "create"
}

// Draft is the edit buffer of the mailbox create/edit dialog. Nothing in
// it reaches the store until SaveDraft succeeds, and even then the store
// waits for the server's push event.
type Draft struct {
	Mode    DraftMode
	Name    string
	Address string
	// Expiration is "never" or a date in textutil.InputDateLayout.
	Expiration string
	Mailbox    *api.Mailbox
	Saving     bool
}

// NewDraft starts a draft editing mailbox, or creating a new mailbox when
// mailbox is nil.
func (s *Store) NewDraft(mailbox *api.Mailbox) *Draft {
	if mailbox == nil {
		return &Draft{
			Mode:       DraftCreate,
			Expiration: textutil.DefaultExpiration(s.now()),
		}
	}

	mb := *mailbox
	mb.Emails = nil
	d := &Draft{
		Mode:    DraftEdit,
		Name:    mb.Name,
		Address: mb.Address,
		Mailbox: &mb,
	}
	switch {
	case mb.ExpiresAt.Never:
		d.Expiration = api.NeverExpires
	case mb.ExpiresAt.At.IsZero():
		// Left empty; Build keeps the mailbox's unset expiration.
	default:
		d.Expiration = textutil.FormatInputDate(mb.ExpiresAt.At.In(time.Local), false)
	}
	return d
}

// RandomizeAddress fills the address with a random local part.
func (d *Draft) RandomizeAddress() {
	d.Address = textutil.RandomHex(16)
}

// Build turns the draft into the mailbox to send to the server.
func (d *Draft) Build(loc *time.Location) (api.Mailbox, error) {
	var mb api.Mailbox
	if d.Mailbox != nil {
		mb = *d.Mailbox
	}
	mb.Name = strings.TrimSpace(d.Name)
	mb.Address = strings.TrimSpace(d.Address)
	mb.Emails = nil

	exp := strings.TrimSpace(d.Expiration)
	switch {
	case exp == api.NeverExpires:
		mb.ExpiresAt = api.ExpiresNever()
	case exp == "" && d.Mailbox != nil && !d.Mailbox.ExpiresAt.Never && d.Mailbox.ExpiresAt.At.IsZero():
		// Unset on the server; leave it that way.
	default:
		t, err := textutil.ParseInputDate(exp, loc)
		if err != nil {
			return api.Mailbox{}, fmt.Errorf("invalid expiration %q", d.Expiration)
		}
		mb.ExpiresAt = api.ExpiresAt(t)
	}
	return mb, nil
}

// SaveDraft creates or edits the mailbox described by the draft. A draft
// that is already being saved is rejected to avoid duplicate submission.
func (s *Store) SaveDraft(d *Draft) bool {
	if d.Saving {
		return false
	}
	d.Saving = true

	verb := "creating"
	if d.Mode == DraftEdit {
		verb = "editing"
	}

	mb, err := d.Build(time.Local)
	if err != nil {
		s.invalid("Error %s mailbox: %v", verb, err)
		d.Saving = false
		return false
	}

	c := s.apiClient()
	if c == nil {
		d.Saving = false
		return false
	}

	if d.Mode == DraftEdit {
		err = c.EditMailbox(mb)
	} else {
		err = c.CreateMailbox(mb)
	}
	if err != nil {
		log.Printf("%s mailbox: %v", verb, err)
		s.notify(notify.Primary, fmt.Sprintf("Error %s mailbox: %s", verb, api.Message(err)))
		d.Saving = false
		return false
	}

	if d.Mode == DraftEdit {
		s.notify(notify.Primary, "Mailbox edited successfully!")
	} else {
		s.notify(notify.Primary, "Mailbox created successfully!")
	}
	return true
}
