package api

import (
	"context"
	"log/slog"

	"github.com/mentoria-raiz/inscricoes/auth"
	"github.com/mentoria-raiz/inscricoes/email"
	"github.com/mentoria-raiz/inscricoes/mercadopago"
	"github.com/mentoria-raiz/inscricoes/registration"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ DB = &mockDB{}

type mockDB struct {
	InsertRegistrationFunc        func(ctx context.Context, reg registration.Registration) error
	CountConfirmedIndividualsFunc func(ctx context.Context) (int64, error)
	SearchRegistrationsFunc       func(ctx context.Context, search string) ([]registration.Registration, error)
	GetAdminByUsernameFunc        func(ctx context.Context, username string) (auth.Admin, error)
}

func (m *mockDB) InsertRegistration(ctx context.Context, reg registration.Registration) error {
	if m.InsertRegistrationFunc != nil {
		return m.InsertRegistrationFunc(ctx, reg)
	}
	return nil
}

func (m *mockDB) CountConfirmedIndividuals(ctx context.Context) (int64, error) {
	if m.CountConfirmedIndividualsFunc != nil {
		return m.CountConfirmedIndividualsFunc(ctx)
	}
	return 0, nil
}

func (m *mockDB) SearchRegistrations(ctx context.Context, search string) ([]registration.Registration, error) {
	if m.SearchRegistrationsFunc != nil {
		return m.SearchRegistrationsFunc(ctx, search)
	}
	return nil, nil
}

func (m *mockDB) GetAdminByUsername(ctx context.Context, username string) (auth.Admin, error) {
	if m.GetAdminByUsernameFunc != nil {
		return m.GetAdminByUsernameFunc(ctx, username)
	}
	return auth.Admin{}, auth.NewAdminDoesNotExistError(username)
}

var _ CheckoutClient = &mockCheckoutClient{}

type mockCheckoutClient struct {
	CreatePreferenceFunc func(ctx context.Context, prefReq mercadopago.PreferenceRequest) (mercadopago.Preference, error)
	GetPaymentFunc       func(ctx context.Context, id string) (mercadopago.Payment, error)
}

func (m *mockCheckoutClient) CreatePreference(ctx context.Context, prefReq mercadopago.PreferenceRequest) (mercadopago.Preference, error) {
	if m.CreatePreferenceFunc != nil {
		return m.CreatePreferenceFunc(ctx, prefReq)
	}
	return mercadopago.Preference{}, nil
}

func (m *mockCheckoutClient) GetPayment(ctx context.Context, id string) (mercadopago.Payment, error) {
	if m.GetPaymentFunc != nil {
		return m.GetPaymentFunc(ctx, id)
	}
	return mercadopago.Payment{}, nil
}

// captureSender records every email handed to it.
type captureSender struct {
	sent []email.Email
	err  error
}

func (s *captureSender) SendEmail(ctx context.Context, e email.Email) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, e)
	return nil
}

func newTestAPI(db DB, payments CheckoutClient, sender email.Sender) *API {
	return NewAPI(
		db,
		payments,
		sender,
		auth.NewTokenSigner([]byte("test-secret")),
		noopLogger,
		LOCAL,
		"https://mentoriaraiz.com.br",
		"Mentoria Raiz <contato@mentoriaraiz.com.br>",
	)
}
