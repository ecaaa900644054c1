package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mentoria-raiz/inscricoes/auth"
	"github.com/mentoria-raiz/inscricoes/email"
	"github.com/mentoria-raiz/inscricoes/mercadopago"
	"github.com/mentoria-raiz/inscricoes/registration"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

// DB is everything the handlers need from the store.
type DB interface {
	registration.Repository
	auth.CredentialStore
}

// CheckoutClient is the payment provider surface the handlers use.
type CheckoutClient interface {
	CreatePreference(ctx context.Context, prefReq mercadopago.PreferenceRequest) (mercadopago.Preference, error)
	GetPayment(ctx context.Context, id string) (mercadopago.Payment, error)
}

type API struct {
	db          DB
	payments    CheckoutClient
	emailSender email.Sender
	signer      *auth.TokenSigner
	logger      *slog.Logger
	env         Environment
	siteBaseURL string
	emailFrom   string
}

func NewAPI(
	db DB,
	payments CheckoutClient,
	emailSender email.Sender,
	signer *auth.TokenSigner,
	logger *slog.Logger,
	env Environment,
	siteBaseURL string,
	emailFrom string,
) *API {
	return &API{
		db:          db,
		payments:    payments,
		emailSender: emailSender,
		signer:      signer,
		logger:      logger,
		env:         env,
		siteBaseURL: siteBaseURL,
		emailFrom:   emailFrom,
	}
}

func (a *API) Handler() http.Handler {
	r := http.NewServeMux()

	r.HandleFunc("POST /api/inscricao", a.handleInscricao)
	r.HandleFunc("POST /api/webhook", a.handleWebhook)
	r.HandleFunc("GET /api/pagamento/{paymentId}", a.handleGetPagamento)
	r.HandleFunc("POST /api/admin/login", a.handleAdminLogin)
	r.HandleFunc("GET /api/admin/dashboard", a.requireAdmin(a.handleDashboard))
	r.HandleFunc("GET /sucesso", staticPage("<h1>Pagamento aprovado! Obrigado pela sua compra.</h1>"))
	r.HandleFunc("GET /falha", staticPage("<h1>Pagamento falhou. Tente novamente.</h1>"))
	r.HandleFunc("GET /pendente", staticPage("<h1>Pagamento pendente. Aguarde a confirmação.</h1>"))

	return useMiddlewares(r,
		a.loggingMiddleware(),
		a.requestIDMiddleware(),
		a.corsMiddleware(),
	)
}

func staticPage(html string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}
}
