package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/mentoria-raiz/inscricoes/mercadopago"
	"github.com/mentoria-raiz/inscricoes/registration"
)

type inscricaoResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

func (a *API) handleInscricao(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, 65536)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read registration body", slog.String("error", err.Error()))
		a.writeJSON(w, r, http.StatusBadRequest, errorBody{Error: "Tipo inválido"})
		return
	}

	reg, err := registration.DecodeForm(body)
	if err != nil {
		logger.Warn("Invalid registration form", slog.String("error", err.Error()))
		a.writeJSON(w, r, http.StatusBadRequest, errorBody{Error: "Tipo inválido"})
		return
	}

	// The count read and the price decision are not atomic; two
	// submissions racing near the promo threshold can both get the
	// promo price. Accepted limitation.
	var confirmedIndividuals int64
	if reg.Kind() == registration.KIND_INDIVIDUAL {
		confirmedIndividuals, err = a.db.CountConfirmedIndividuals(ctx)
		if err != nil {
			logger.Error("Failed to count confirmed individuals", slog.String("error", err.Error()))
			a.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: "Erro no processamento"})
			return
		}
	}

	price, err := registration.PriceFor(reg.Kind(), confirmedIndividuals)
	if err != nil {
		logger.Warn("Failed to price registration", slog.String("error", err.Error()))
		a.writeJSON(w, r, http.StatusBadRequest, errorBody{Error: "Tipo inválido"})
		return
	}

	metadata, err := registration.EncodeMetadata(reg)
	if err != nil {
		logger.Error("Failed to encode payment metadata", slog.String("error", err.Error()))
		a.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: "Erro no processamento"})
		return
	}

	pref, err := a.payments.CreatePreference(ctx, mercadopago.PreferenceRequest{
		Items: []mercadopago.Item{
			{
				Title:      "Inscrição Mentoria Raiz",
				Quantity:   1,
				UnitPrice:  price.AsMajorUnits(),
				CurrencyID: price.Currency().Code,
			},
		},
		Payer: mercadopago.Payer{
			Name:  reg.PrimaryName(),
			Email: reg.PrimaryEmail(),
		},
		BackURLs: mercadopago.BackURLs{
			Success: a.siteBaseURL + "/sucesso",
			Failure: a.siteBaseURL + "/falha",
			Pending: a.siteBaseURL + "/pendente",
		},
		AutoReturn: "approved",
		Metadata:   map[string]string{"data": metadata},
	})
	if err != nil {
		logger.Error("Failed to create checkout preference", slog.String("error", err.Error()))
		a.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: "Erro no processamento"})
		return
	}

	a.writeJSON(w, r, http.StatusOK, inscricaoResponse{RedirectURL: pref.InitPoint})
}
