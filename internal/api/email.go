package api

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-message/textproto"
)

// Envelope holds the header fields shown in email listings.
type Envelope struct {
	Subject string
	From    string
	To      string
	Date    time.Time
}

// Envelope parses the raw headers of the email. Headers that cannot be
// parsed yield an empty Envelope.
func (e *Email) Envelope() Envelope {
	raw := strings.TrimRight(e.Headers, "\r\n")
	if raw == "" {
		return Envelope{}
	}

	h, err := textproto.ReadHeader(bufio.NewReader(strings.NewReader(raw + "\r\n\r\n")))
	if err != nil {
		return Envelope{}
	}
	header := mail.Header{Header: message.Header{Header: h}}

	var env Envelope
	if subject, err := header.Subject(); err == nil {
		env.Subject = subject
	} else {
		env.Subject = header.Get("Subject")
	}
	env.From = formatAddressList(header, "From")
	env.To = formatAddressList(header, "To")
	if date, err := header.Date(); err == nil {
		env.Date = date
	}
	return env
}

func formatAddressList(h mail.Header, key string) string {
	addrs, err := h.AddressList(key)
	if err != nil || len(addrs) == 0 {
		return h.Get(key)
	}
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.Name != "" {
			parts = append(parts, fmt.Sprintf("%s <%s>", a.Name, a.Address))
		} else {
			parts = append(parts, a.Address)
		}
	}
	return strings.Join(parts, ", ")
}
