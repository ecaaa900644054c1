package registration

import (
	"encoding/json"
	"time"
)

// formFields is the wire shape shared by the intake request body and the
// payment provider's metadata bag. It is one flat struct with a section per
// variant; DecodeForm picks the section named by Kind.
type formFields struct {
	Kind string `json:"kind"`

	// individual fields
	Nome      string `json:"nome,omitempty"`
	Idade     int    `json:"idade,omitempty"`
	Email     string `json:"email,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty"`
	Profissao string `json:"profissao,omitempty"`
	Empresa   string `json:"empresa,omitempty"`

	// socios fields
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
	EmpresaSocio    string `json:"empresaSocio,omitempty"`
}

// DecodeForm parses a submitted registration form into the tagged union.
// The company field is kept only when the deciding profession is
// "empreendedor"; otherwise it is forced empty.
func DecodeForm(data []byte) (Registration, error) {
	var f formFields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, NewInvalidFormError("Form body is not valid JSON", err)
	}

	return f.toRegistration()
}

// EncodeMetadata serializes the full variant record to the string that is
// attached as the provider-side metadata bag. The provider only accepts a
// flat bag, so the structured record round-trips through this one string.
func EncodeMetadata(reg Registration) (string, error) {
	f, err := fieldsFromRegistration(reg)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(f)
	if err != nil {
		return "", NewFailedToDecodeMetadataError("Failed to marshal metadata", err)
	}

	return string(data), nil
}

// DecodeMetadata reconstructs the variant record echoed back by the
// provider at confirmation time.
func DecodeMetadata(raw string) (Registration, error) {
	reg, err := DecodeForm([]byte(raw))
	if err != nil {
		return nil, NewFailedToDecodeMetadataError("Failed to decode payment metadata", err)
	}

	return reg, nil
}

func (f formFields) toRegistration() (Registration, error) {
	switch Kind(f.Kind) {
	case KIND_INDIVIDUAL:
		empresa := f.Empresa
		if f.Profissao != professionEmpreendedor {
			empresa = ""
		}

		return IndividualRegistration{
			Nome:        f.Nome,
			Idade:       f.Idade,
			Email:       f.Email,
			Whatsapp:    f.Whatsapp,
			Profissao:   f.Profissao,
			Empresa:     empresa,
			SubmittedAt: time.Now(),
		}, nil
	case KIND_SOCIOS:
		empresa := f.EmpresaSocio
		if f.ProfissaoSocio1 != professionEmpreendedor {
			empresa = ""
		}

		return SociosRegistration{
			Socio1: Socio{
				Nome:      f.NomeSocio1,
				Idade:     f.IdadeSocio1,
				Email:     f.EmailSocio1,
				Whatsapp:  f.WhatsappSocio1,
				Profissao: f.ProfissaoSocio1,
			},
			Socio2: Socio{
				Nome:      f.NomeSocio2,
				Idade:     f.IdadeSocio2,
				Email:     f.EmailSocio2,
				Whatsapp:  f.WhatsappSocio2,
				Profissao: f.ProfissaoSocio2,
			},
			Empresa:     empresa,
			SubmittedAt: time.Now(),
		}, nil
	default:
		return nil, NewUnknownKindError(f.Kind)
	}
}

func fieldsFromRegistration(reg Registration) (formFields, error) {
	switch r := reg.(type) {
	case IndividualRegistration:
		return formFields{
			Kind:      string(KIND_INDIVIDUAL),
			Nome:      r.Nome,
			Idade:     r.Idade,
			Email:     r.Email,
			Whatsapp:  r.Whatsapp,
			Profissao: r.Profissao,
			Empresa:   r.Empresa,
		}, nil
	case SociosRegistration:
		return formFields{
			Kind:            string(KIND_SOCIOS),
			NomeSocio1:      r.Socio1.Nome,
			IdadeSocio1:     r.Socio1.Idade,
			EmailSocio1:     r.Socio1.Email,
			WhatsappSocio1:  r.Socio1.Whatsapp,
			ProfissaoSocio1: r.Socio1.Profissao,
			NomeSocio2:      r.Socio2.Nome,
			IdadeSocio2:     r.Socio2.Idade,
			EmailSocio2:     r.Socio2.Email,
			WhatsappSocio2:  r.Socio2.Whatsapp,
			ProfissaoSocio2: r.Socio2.Profissao,
			EmpresaSocio:    r.Empresa,
		}, nil
	default:
		return formFields{}, NewUnknownKindError(string(reg.Kind()))
	}
}
