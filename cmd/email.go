package main

import (
	"context"
	"log/slog"

	"github.com/mentoria-raiz/inscricoes/api"
	"github.com/mentoria-raiz/inscricoes/email"
)

var _ email.Sender = &EmailLogger{}

// email.Sender that logs out the email contents for local dev
type EmailLogger struct {
	logger *slog.Logger
}

func (el *EmailLogger) SendEmail(ctx context.Context, e email.Email) error {
	el.logger.Info("email that would be sent", slog.Any("email", e))

	return nil
}

func createEmailSender(logger *slog.Logger, settings Settings) email.Sender {
	if settings.Env == api.LOCAL || settings.SMTPHost == "" {
		return &EmailLogger{logger: logger}
	}

	return email.NewSMTPSender(settings.SMTPHost, settings.SMTPPort, settings.SMTPUser, settings.SMTPPass)
}
