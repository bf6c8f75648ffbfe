package store

import (
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/log"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
)

// MaxDeleteBatch is the largest number of emails deleted in one request.
const MaxDeleteBatch = 50

// ValidationError is a precondition that failed before any request was made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (s *Store) invalid(format string, args ...any) {
	err := &ValidationError{Message: fmt.Sprintf(format, args...)}
	s.notifier.Notify(notify.Notification{Level: notify.Danger, Message: err.Error(), Err: err})
}

// LoadMailboxes replaces the mailbox list with the server's. On failure
// the previous list is kept.
func (s *Store) LoadMailboxes() bool {
	c := s.apiClient()
	if c == nil {
		return false
	}

	mailboxes, err := c.GetMailboxes()
	if err != nil {
		log.Printf("loading mailboxes: %v", err)
		s.notify(notify.Primary, "Error loading Mailboxes!")
		return false
	}

	list := make([]*api.Mailbox, len(mailboxes))
	for i := range mailboxes {
		list[i] = &mailboxes[i]
	}

	s.mu.Lock()
	s.mailboxes = list
	s.mu.Unlock()
	s.changed()
	return true
}

// OpenMailbox opens a mailbox from the list and loads its emails. When the
// emails cannot be loaded the view falls back to the mailbox list.
func (s *Store) OpenMailbox(id api.ID) bool {
	c := s.apiClient()
	if c == nil {
		return false
	}

	s.mu.Lock()
	i := s.mailboxIndex(id)
	if i == -1 {
		s.mu.Unlock()
		s.invalid("Mailbox %s not found!", id)
		return false
	}
	s.currentMailbox = s.mailboxes[i]
	s.currentEmail = nil
	s.view = ViewMailboxOpen
	s.mu.Unlock()
	s.changed()

	mailbox, err := c.GetMailbox(id)

	s.mu.Lock()
	if err != nil {
		s.view = ViewMailboxList
		s.currentMailbox = nil
		s.emails = nil
	} else {
		emails := make([]*api.Email, len(mailbox.Emails))
		for i := range mailbox.Emails {
			emails[i] = &mailbox.Emails[i]
		}
		s.emails = emails
	}
	s.mu.Unlock()
	s.changed()

	if err != nil {
		log.Printf("loading mailbox %s: %v", id, err)
		s.notify(notify.Danger, "Error loading Mailbox!")
		return false
	}
	return true
}

// OpenEmail opens an email of the open mailbox. An unread email is marked
// read on the server first; only once that succeeds is the local read flag
// set and the mailbox's unread counter decremented. Failing to mark it read
// does not prevent opening it.
func (s *Store) OpenEmail(id api.ID) bool {
	c := s.apiClient()
	if c == nil {
		return false
	}

	s.mu.Lock()
	mailbox := s.currentMailbox
	if mailbox == nil || s.view < ViewMailboxOpen {
		s.mu.Unlock()
		s.invalid("No mailbox is open!")
		return false
	}
	i := s.emailIndex(id)
	if i == -1 {
		s.mu.Unlock()
		s.invalid("Email %s not found!", id)
		return false
	}
	email := s.emails[i]
	s.currentEmail = email
	s.view = ViewEmailOpen
	needsRead := !email.Read
	mailboxID := mailbox.ID
	s.mu.Unlock()
	s.changed()

	if !needsRead {
		return true
	}

	if err := c.MarkRead(mailboxID, id); err != nil {
		log.Printf("error marking email %s as read: %v", id, err)
		return true
	}

	s.mu.Lock()
	if !email.Read {
		email.Read = true
		if mailbox.UnreadCount > 0 {
			mailbox.UnreadCount--
		}
	}
	s.mu.Unlock()
	s.changed()
	return true
}

// NavigateBack leaves the current view for its parent, clearing what
// belonged to the view being left.
func (s *Store) NavigateBack() {
	s.mu.Lock()
	s.navigateBack()
	s.mu.Unlock()
	s.changed()
}

// NavigateToStart goes back to the mailbox list.
func (s *Store) NavigateToStart() {
	s.mu.Lock()
	s.navigateToStart()
	s.mu.Unlock()
	s.changed()
}

func (s *Store) navigateBack() {
	switch s.view {
	case ViewMailboxOpen:
		s.view = ViewMailboxList
		s.currentMailbox = nil
		s.emails = nil
	case ViewEmailOpen:
		s.view = ViewMailboxOpen
		s.currentEmail = nil
		s.viewHeaders = false
	}
}

func (s *Store) navigateToStart() {
	for s.view > ViewMailboxList {
		s.navigateBack()
	}
}

// SetMailboxLocked asks the server to lock or unlock a mailbox. The local
// list is left alone; the MAILBOX_EDITED push event brings the change.
func (s *Store) SetMailboxLocked(mailbox api.Mailbox, locked bool) bool {
	c := s.apiClient()
	if c == nil {
		return false
	}

	edited := mailbox
	edited.Locked = locked
	edited.Emails = nil

	if err := c.EditMailbox(edited); err != nil {
		log.Printf("locking mailbox %s: %v", mailbox.ID, err)
		s.notify(notify.Danger, "Error editing mailbox: "+api.Message(err))
		return false
	}
	return true
}

// ToggleMailboxLocked flips the lock flag of a mailbox in the list.
func (s *Store) ToggleMailboxLocked(id api.ID) bool {
	mailbox, ok := s.Mailbox(id)
	if !ok {
		s.invalid("Mailbox %s not found!", id)
		return false
	}
	return s.SetMailboxLocked(mailbox, !mailbox.Locked)
}

// DeleteMailbox deletes a mailbox after the user confirms. The local list
// is left alone; the MAILBOX_DELETED push event removes it.
func (s *Store) DeleteMailbox(mailbox api.Mailbox) bool {
	if !s.confirmer.Confirm("Do you really want to delete this Mailbox?\n\n" + mailbox.Name) {
		return false
	}

	c := s.apiClient()
	if c == nil {
		return false
	}

	if err := c.DeleteMailbox(mailbox.ID); err != nil {
		log.Printf("deleting mailbox %s: %v", mailbox.ID, err)
		s.notify(notify.Danger, "Error deleting mailbox!")
		return false
	}
	return true
}

// DeleteEmails deletes up to MaxDeleteBatch emails of a mailbox. On
// success the emails leave the local list and, if the open email was one
// of them, the view goes back to the mailbox.
//
// The mailbox's unread counter is set to the number of deleted emails
// rather than recounted.
func (s *Store) DeleteEmails(mailboxID api.ID, ids []api.ID) bool {
	if len(ids) > MaxDeleteBatch {
		s.invalid("Can't delete more than %d emails at once!", MaxDeleteBatch)
		return false
	}

	c := s.apiClient()
	if c == nil {
		return false
	}

	if err := c.DeleteEmails(mailboxID, ids); err != nil {
		log.Printf("deleting emails from %s: %v", mailboxID, err)
		s.notify(notify.Danger, "Error deleting email(s)")
		return false
	}

	deleted := make(map[api.ID]bool, len(ids))
	for _, id := range ids {
		deleted[id] = true
	}

	s.mu.Lock()
	if s.emails != nil {
		kept := make([]*api.Email, 0, len(s.emails))
		for _, e := range s.emails {
			if !deleted[e.ID] {
				kept = append(kept, e)
			}
		}
		s.emails = kept
	}
	if i := s.mailboxIndex(mailboxID); i != -1 {
		s.mailboxes[i].UnreadCount = len(ids)
	}
	if s.currentEmail != nil && deleted[s.currentEmail.ID] {
		s.navigateBack()
	}
	s.mu.Unlock()
	s.changed()
	return true
}

// SetChecked selects or deselects an email of the open mailbox.
func (s *Store) SetChecked(id api.ID, checked bool) bool {
	s.mu.Lock()
	i := s.emailIndex(id)
	if i != -1 {
		s.emails[i].Checked = checked
	}
	s.mu.Unlock()
	if i == -1 {
		return false
	}
	s.changed()
	return true
}

// DeleteSelectedEmails deletes the checked emails of the open mailbox.
func (s *Store) DeleteSelectedEmails() bool {
	s.mu.Lock()
	if s.currentMailbox == nil {
		s.mu.Unlock()
		s.invalid("No mailbox is open!")
		return false
	}
	mailboxID := s.currentMailbox.ID
	var ids []api.ID
	for _, e := range s.emails {
		if e.Checked {
			ids = append(ids, e.ID)
		}
	}
	s.mu.Unlock()

	return s.DeleteEmails(mailboxID, ids)
}
