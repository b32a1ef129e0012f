// Package email renders and delivers the reply emails sent when an
// administrator answers a contact message.
package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// Sender identifies the From header of outgoing mail.
type Sender struct {
	Name    string
	Address string
}

// Header renders the sender as a display-name address, e.g. "ZeroSmoke" <no-reply@example.com>.
func (s Sender) Header() string {
	if s.Name == "" {
		return s.Address
	}
	return fmt.Sprintf("%q <%s>", s.Name, s.Address)
}

// Rendered is a reply email ready for a transport.
type Rendered struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Render builds the text and HTML bodies of a reply. The HTML body is the
// escaped reply text with line breaks kept.
func Render(from Sender, e domain.ReplyEmail) Rendered {
	text := strings.ReplaceAll(e.Text, "\r\n", "\n")
	body := strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
	return Rendered{
		From:    from.Header(),
		To:      e.To,
		Subject: e.Subject,
		Text:    text,
		HTML:    "<!DOCTYPE html><html><body><p>" + body + "</p></body></html>",
	}
}
