package registration

import (
	"context"
	"time"
)

// Kind discriminates the two registration variants.
type Kind string

const (
	KIND_INDIVIDUAL Kind = "individual"
	KIND_SOCIOS     Kind = "socios"
)

const professionEmpreendedor = "empreendedor"

type Repository interface {
	InsertRegistration(ctx context.Context, reg Registration) error
	CountConfirmedIndividuals(ctx context.Context) (int64, error)
	SearchRegistrations(ctx context.Context, search string) ([]Registration, error)
}

// PaymentInfo is only present once the confirmation webhook has verified
// the payment with the provider. Records are inserted exactly once, at
// confirmation time; there is no pending row.
type PaymentInfo struct {
	PaymentID string
	Amount    float64
	Status    string
}

type Registration interface {
	Kind() Kind
	// PrimaryName and PrimaryEmail identify the registrant that receives
	// the confirmation email; for socios that is the first member.
	PrimaryName() string
	PrimaryEmail() string
	Payment() *PaymentInfo
	SubmissionTime() time.Time
}

type IndividualRegistration struct {
	Nome      string
	Idade     int
	Email     string
	Whatsapp  string
	Profissao string
	Empresa   string

	SubmittedAt time.Time
	PaymentInfo *PaymentInfo
}

func (r IndividualRegistration) Kind() Kind {
	return KIND_INDIVIDUAL
}

func (r IndividualRegistration) PrimaryName() string {
	return r.Nome
}

func (r IndividualRegistration) PrimaryEmail() string {
	return r.Email
}

func (r IndividualRegistration) Payment() *PaymentInfo {
	return r.PaymentInfo
}

func (r IndividualRegistration) SubmissionTime() time.Time {
	return r.SubmittedAt
}

type Socio struct {
	Nome      string
	Idade     int
	Email     string
	Whatsapp  string
	Profissao string
}

type SociosRegistration struct {
	Socio1  Socio
	Socio2  Socio
	Empresa string

	SubmittedAt time.Time
	PaymentInfo *PaymentInfo
}

func (r SociosRegistration) Kind() Kind {
	return KIND_SOCIOS
}

func (r SociosRegistration) PrimaryName() string {
	return r.Socio1.Nome
}

func (r SociosRegistration) PrimaryEmail() string {
	return r.Socio1.Email
}

func (r SociosRegistration) Payment() *PaymentInfo {
	return r.PaymentInfo
}

func (r SociosRegistration) SubmissionTime() time.Time {
	return r.SubmittedAt
}
