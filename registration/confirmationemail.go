package registration

import (
	"bytes"
	"context"
	"embed"
	"html/template"

	"github.com/mentoria-raiz/inscricoes/email"
)

//go:embed templates
var templates embed.FS

const confirmationSubject = "Pagamento Confirmado - Bem-vindo(a) à Mentoria Raiz!"

// SendConfirmationEmail sends the payment-confirmed email to the primary
// registrant. Callers treat a failure here as best-effort: it is logged,
// never surfaced to the payment provider.
func SendConfirmationEmail(ctx context.Context, sender email.Sender, fromAddress string, reg Registration) error {
	htmlBody, err := renderTemplate("payment-confirmation.tmpl", reg)
	if err != nil {
		return err
	}

	textBody, err := renderTemplate("payment-confirmation-textonly.tmpl", reg)
	if err != nil {
		return err
	}

	return sender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{reg.PrimaryEmail()},
		Subject:     confirmationSubject,
		HTMLBody:    htmlBody,
		TextBody:    textBody,
	})
}

func renderTemplate(name string, reg Registration) (string, error) {
	tmpl, err := template.ParseFS(templates, "templates/"+name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Nome": reg.PrimaryName(),
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
