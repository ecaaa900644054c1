package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mentoria-raiz/inscricoes/auth"
	"github.com/mentoria-raiz/inscricoes/registration"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (a *API) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, r, http.StatusUnauthorized, messageBody{Message: "Usuário ou senha inválidos"})
		return
	}

	token, err := auth.Login(ctx, a.db, a.signer, req.Username, req.Password)
	if err != nil {
		var authErr *auth.Error
		if errors.As(err, &authErr) && authErr.Reason == auth.REASON_INVALID_CREDENTIALS {
			a.writeJSON(w, r, http.StatusUnauthorized, messageBody{Message: "Usuário ou senha inválidos"})
			return
		}

		logger.Error("Failed to process admin login", slog.String("error", err.Error()))
		a.writeJSON(w, r, http.StatusInternalServerError, messageBody{Message: "Erro interno no servidor"})
		return
	}

	logger.Info("Admin logged in", slog.String("username", req.Username))

	a.writeJSON(w, r, http.StatusOK, loginResponse{Token: token})
}

type adminIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type dashboardResponse struct {
	Message   string            `json:"message"`
	Admin     adminIdentity     `json:"admin"`
	Inscritos []apiRegistration `json:"inscritos"`
}

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)
	claims := getClaimsFromCtx(ctx)

	search := r.URL.Query().Get("search")

	regs, err := a.db.SearchRegistrations(ctx, search)
	if err != nil {
		logger.Error("Failed to search registrations", slog.String("error", err.Error()))
		a.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: "Erro ao buscar inscritos"})
		return
	}

	inscritos := make([]apiRegistration, 0, len(regs))
	for _, reg := range regs {
		inscritos = append(inscritos, registrationToApiRegistration(reg))
	}

	a.writeJSON(w, r, http.StatusOK, dashboardResponse{
		Message: "Acesso autorizado ao dashboard",
		Admin: adminIdentity{
			ID:       claims.AdminID,
			Username: claims.Username,
		},
		Inscritos: inscritos,
	})
}

// apiRegistration is the dashboard wire shape: the flat form fields plus
// the confirmed payment columns.
type apiRegistration struct {
	Kind string `json:"kind"`

	Nome      string `json:"nome,omitempty"`
	Idade     int    `json:"idade,omitempty"`
	Email     string `json:"email,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty"`
	Profissao string `json:"profissao,omitempty"`
	Empresa   string `json:"empresa,omitempty"`

	NomeSocio1      string `json:"nomeSocio1,omitempty"`
	IdadeSocio1     int    `json:"idadeSocio1,omitempty"`
	EmailSocio1     string `json:"emailSocio1,omitempty"`
	WhatsappSocio1  string `json:"whatsappSocio1,omitempty"`
	ProfissaoSocio1 string `json:"profissaoSocio1,omitempty"`
	NomeSocio2      string `json:"nomeSocio2,omitempty"`
	IdadeSocio2     int    `json:"idadeSocio2,omitempty"`
	EmailSocio2     string `json:"emailSocio2,omitempty"`
	WhatsappSocio2  string `json:"whatsappSocio2,omitempty"`
	ProfissaoSocio2 string `json:"profissaoSocio2,omitempty"`

	Data      time.Time `json:"data"`
	PaymentID string    `json:"paymentId,omitempty"`
	Valor     float64   `json:"valor,omitempty"`
	Status    string    `json:"status,omitempty"`
}

func registrationToApiRegistration(reg registration.Registration) apiRegistration {
	apiReg := apiRegistration{
		Kind: string(reg.Kind()),
		Data: reg.SubmissionTime(),
	}
	if payment := reg.Payment(); payment != nil {
		apiReg.PaymentID = payment.PaymentID
		apiReg.Valor = payment.Amount
		apiReg.Status = payment.Status
	}

	switch r := reg.(type) {
	case registration.IndividualRegistration:
		apiReg.Nome = r.Nome
		apiReg.Idade = r.Idade
		apiReg.Email = r.Email
		apiReg.Whatsapp = r.Whatsapp
		apiReg.Profissao = r.Profissao
		apiReg.Empresa = r.Empresa
	case registration.SociosRegistration:
		apiReg.NomeSocio1 = r.Socio1.Nome
		apiReg.IdadeSocio1 = r.Socio1.Idade
		apiReg.EmailSocio1 = r.Socio1.Email
		apiReg.WhatsappSocio1 = r.Socio1.Whatsapp
		apiReg.ProfissaoSocio1 = r.Socio1.Profissao
		apiReg.NomeSocio2 = r.Socio2.Nome
		apiReg.IdadeSocio2 = r.Socio2.Idade
		apiReg.EmailSocio2 = r.Socio2.Email
		apiReg.WhatsappSocio2 = r.Socio2.Whatsapp
		apiReg.ProfissaoSocio2 = r.Socio2.Profissao
		apiReg.Empresa = r.Empresa
	}

	return apiReg
}
