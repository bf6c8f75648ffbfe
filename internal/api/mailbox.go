package api

import (
	"fmt"
	"net/url"
)

// GetMailboxes fetches all mailboxes.
func (c *Client) GetMailboxes() ([]Mailbox, error) {
	var result struct {
		Mailboxes []Mailbox `json:"mailboxes"`
	}
	if err := c.Get("/mailboxes", &result); err != nil {
		return nil, err
	}
	return result.Mailboxes, nil
}

// GetMailbox fetches a single mailbox including its emails.
func (c *Client) GetMailbox(id ID) (*Mailbox, error) {
	var result struct {
		Mailbox *Mailbox `json:"mailbox"`
	}
	if err := c.Get(mailboxPath(id), &result); err != nil {
		return nil, err
	}
	if result.Mailbox == nil {
		return nil, &RemoteError{Message: fmt.Sprintf("mailbox '%s' missing from response", id)}
	}
	return result.Mailbox, nil
}

// CreateMailbox creates a new mailbox. The server announces the result
// through a MAILBOX_CREATED push event.
func (c *Client) CreateMailbox(mailbox Mailbox) error {
	mailbox.Emails = nil
	return c.Post("/mailboxes", mailbox, nil)
}

// EditMailbox replaces the mailbox with the same ID. The server announces
// the result through a MAILBOX_EDITED push event.
func (c *Client) EditMailbox(mailbox Mailbox) error {
	mailbox.Emails = nil
	return c.Put(mailboxPath(mailbox.ID), mailbox, nil)
}

// DeleteMailbox deletes a mailbox. The server announces the result
// through a MAILBOX_DELETED push event.
func (c *Client) DeleteMailbox(id ID) error {
	return c.Delete(mailboxPath(id), nil, nil)
}

// MarkRead marks an email as read.
func (c *Client) MarkRead(mailboxID, emailID ID) error {
	return c.Put(mailboxPath(mailboxID)+"/"+url.PathEscape(emailID.String())+"/read", nil, nil)
}

// DeleteEmails deletes the given emails from a mailbox.
func (c *Client) DeleteEmails(mailboxID ID, emailIDs []ID) error {
	if emailIDs == nil {
		emailIDs = []ID{}
	}
	return c.Delete(mailboxPath(mailboxID)+"/mails", emailIDs, nil)
}

func mailboxPath(id ID) string {
	return "/mailboxes/" + url.PathEscape(id.String())
}
