// Package email is the outbound mail boundary. Handlers depend on Sender
// so tests and local runs can swap the SMTP relay out.
package email

import "context"

type Email struct {
	FromAddress string
	ToAddresses []string
	Subject     string
	HTMLBody    string
	TextBody    string
}

type Sender interface {
	SendEmail(ctx context.Context, e Email) error
}
