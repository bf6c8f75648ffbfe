package store

import (
	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/socket"
	"github.com/marckohlbrugge/tempmail-cli/internal/textutil"
)

// Apply reconciles the store with a push event. It implements
// socket.Handler.
func (s *Store) Apply(ev socket.Event) {
	s.mu.Lock()
	if !s.conn.Ready {
		s.mu.Unlock()
		return
	}

	switch e := ev.(type) {
	case socket.MailboxEdited:
		mb := e.Mailbox
		if i := s.mailboxIndex(mb.ID); i != -1 {
			s.mailboxes[i] = &mb
		}
		if s.currentMailbox != nil && s.currentMailbox.ID == mb.ID {
			s.currentMailbox = &mb
		}

	case socket.MailboxCreated:
		mb := e.Mailbox
		s.mailboxes = append(s.mailboxes, &mb)

	case socket.MailboxDeleted:
		if s.view > ViewMailboxList && s.currentMailbox != nil && s.currentMailbox.ID == e.ID {
			s.navigateToStart()
		}
		if i := s.mailboxIndex(e.ID); i != -1 {
			s.mailboxes = append(s.mailboxes[:i], s.mailboxes[i+1:]...)
		}

	case socket.NewEmail:
		i := s.mailboxIndex(e.MailboxID)
		if i == -1 {
			break
		}
		if s.view > ViewMailboxList && s.currentMailbox != nil && s.currentMailbox.ID == e.MailboxID {
			email := e.Email
			s.emails = append([]*api.Email{&email}, s.emails...)
		}
		mb := s.mailboxes[i]
		mb.UnreadCount++
		now := s.now()
		mb.LastEmailAt = &now
		s.mailboxes = textutil.Move(s.mailboxes, i, 0)

	case socket.AuthOK, socket.AuthError, socket.Unknown:
		// Session-level messages are handled by the push client.
	}
	hook := s.eventHook
	s.mu.Unlock()

	s.changed()
	if hook != nil {
		hook(ev)
	}
}
