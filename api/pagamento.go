package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mentoria-raiz/inscricoes/mercadopago"
)

// handleGetPagamento proxies the provider's raw payment object so the
// front end can poll a payment without holding provider credentials.
func (a *API) handleGetPagamento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	paymentID := r.PathValue("paymentId")

	payment, err := a.payments.GetPayment(ctx, paymentID)
	if err != nil {
		var apiErr *mercadopago.APIError
		if errors.As(err, &apiErr) {
			a.writeJSON(w, r, apiErr.StatusCode, errorBody{Error: "Pagamento não encontrado"})
			return
		}

		logger.Error("Failed to fetch payment",
			slog.String("error", err.Error()),
			slog.String("paymentId", paymentID),
		)
		a.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: "Erro interno no servidor"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payment.Raw)
}
