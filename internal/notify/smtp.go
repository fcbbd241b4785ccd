package notify

import (
	"context"

	"gopkg.in/gomail.v2"
)

// SMTPTransport adapts a gomail dialer to EmailTransport.
type SMTPTransport struct {
	dialer *gomail.Dialer
}

// NewSMTPTransport creates a transport that dials per send. Alert volume
// is low enough that connection reuse is not worth the daemon goroutine.
func NewSMTPTransport(host string, port int, username, password string) *SMTPTransport {
	return &SMTPTransport{dialer: gomail.NewDialer(host, port, username, password)}
}

// Send implements EmailTransport. gomail has no context support; the
// breaker in Emailer bounds the damage of a hung relay.
func (t *SMTPTransport) Send(_ context.Context, from string, msg EmailMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		if msg.HTML != "" {
			m.AddAlternative("text/html", msg.HTML)
		}
	} else {
		m.SetBody("text/html", msg.HTML)
	}
	return t.dialer.DialAndSend(m)
}
