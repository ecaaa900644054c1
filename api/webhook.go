package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mentoria-raiz/inscricoes/registration"
)

// webhookEvent is the provider's notification envelope. Only payment
// events carry work; every other type is acknowledged and ignored.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID eventID `json:"id"`
	} `json:"data"`
}

// eventID accepts the payment id as either a JSON number or a JSON
// string; the provider sends both.
type eventID string

func (id *eventID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = eventID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = eventID(n.String())
	return nil
}

// parseWebhookEvent tolerates both a JSON object body and a body that is a
// JSON string containing the object (the provider sends either).
func parseWebhookEvent(body []byte) (webhookEvent, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return webhookEvent{}, errors.New("empty webhook body")
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return webhookEvent{}, err
		}
		trimmed = []byte(inner)
	}

	var event webhookEvent
	if err := json.Unmarshal(trimmed, &event); err != nil {
		return webhookEvent{}, err
	}

	return event, nil
}

// The provider never acts on the response body, so the webhook answers
// with bare status codes: 200 once processing is done (including the
// intentional no-ops), 500 when any step of the pipeline fails.
func (a *API) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, 65536)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read webhook body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	event, err := parseWebhookEvent(payload)
	if err != nil {
		logger.Error("Malformed webhook payload", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if event.Type != "payment" || event.Data.ID == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	// Re-fetch the authoritative status; the callback body's status is
	// never trusted on its own.
	payment, err := a.payments.GetPayment(ctx, string(event.Data.ID))
	if err != nil {
		logger.Error("Failed to fetch payment from provider",
			slog.String("error", err.Error()),
			slog.String("paymentId", string(event.Data.ID)),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if payment.Status != registration.StatusApproved {
		w.WriteHeader(http.StatusOK)
		return
	}

	verified := registration.VerifiedPayment{
		ID:       strconv.FormatInt(payment.ID, 10),
		Status:   payment.Status,
		Amount:   payment.TransactionAmount,
		Metadata: payment.Metadata["data"],
	}

	reg, err := registration.ConfirmPayment(ctx, verified, a.db)
	if err != nil {
		var regErr *registration.Error
		if errors.As(err, &regErr) && regErr.Reason == registration.REASON_ALREADY_RECORDED {
			logger.Info("Payment already recorded, skipping",
				slog.String("paymentId", verified.ID),
			)
			w.WriteHeader(http.StatusOK)
			return
		}

		logger.Error("Failed to confirm payment",
			slog.String("error", err.Error()),
			slog.String("paymentId", verified.ID),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger.Info("Registration confirmed",
		slog.String("paymentId", verified.ID),
		slog.String("kind", string(reg.Kind())),
	)

	if err := registration.SendConfirmationEmail(ctx, a.emailSender, a.emailFrom, reg); err != nil {
		// Best effort: the registration is already persisted, the
		// provider must still see success.
		logger.Error("Failed to send confirmation email",
			slog.String("error", err.Error()),
			slog.String("email", reg.PrimaryEmail()),
		)
	}

	w.WriteHeader(http.StatusOK)
}
