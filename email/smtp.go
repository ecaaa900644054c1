package email

import (
	"context"

	"gopkg.in/gomail.v2"
)

var _ Sender = &SMTPSender{}

// SMTPSender delivers mail through a plain SMTP relay. Timeouts and
// cancellation are whatever the dialer defaults to; gomail does not take a
// context, the interface keeps one for senders that can honor it.
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, username string, password string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

func (s *SMTPSender) SendEmail(_ context.Context, e Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.FromAddress)
	m.SetHeader("To", e.ToAddresses...)
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.TextBody)
	if e.HTMLBody != "" {
		m.AddAlternative("text/html", e.HTMLBody)
	}

	return s.dialer.DialAndSend(m)
}
