package registration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeForm(t *testing.T) {
	t.Run("individual entrepreneur keeps the company", func(t *testing.T) {
		body := []byte(`{"kind":"individual","nome":"Ana","idade":30,"email":"a@x.com","whatsapp":"11999999999","profissao":"empreendedor","empresa":"AnaCo"}`)

		reg, err := DecodeForm(body)
		require.NoError(t, err)

		indiv, ok := reg.(IndividualRegistration)
		require.True(t, ok)
		assert.Equal(t, "Ana", indiv.Nome)
		assert.Equal(t, 30, indiv.Idade)
		assert.Equal(t, "a@x.com", indiv.Email)
		assert.Equal(t, "11999999999", indiv.Whatsapp)
		assert.Equal(t, "empreendedor", indiv.Profissao)
		assert.Equal(t, "AnaCo", indiv.Empresa)
		assert.Nil(t, indiv.PaymentInfo)
		assert.False(t, indiv.SubmittedAt.IsZero())
	})

	t.Run("individual non-entrepreneur gets the company forced empty", func(t *testing.T) {
		body := []byte(`{"kind":"individual","nome":"Bia","idade":25,"email":"b@x.com","whatsapp":"11888888888","profissao":"advogada","empresa":"BiaCo"}`)

		reg, err := DecodeForm(body)
		require.NoError(t, err)

		indiv := reg.(IndividualRegistration)
		assert.Equal(t, "", indiv.Empresa)
	})

	t.Run("socios company gated on the first member's profession", func(t *testing.T) {
		body := []byte(`{"kind":"socios","nomeSocio1":"Carla","idadeSocio1":40,"emailSocio1":"c@x.com","whatsappSocio1":"1","profissaoSocio1":"empreendedor","nomeSocio2":"Davi","idadeSocio2":41,"emailSocio2":"d@x.com","whatsappSocio2":"2","profissaoSocio2":"medico","empresaSocio":"CD Ltda"}`)

		reg, err := DecodeForm(body)
		require.NoError(t, err)

		pair, ok := reg.(SociosRegistration)
		require.True(t, ok)
		assert.Equal(t, "CD Ltda", pair.Empresa)
		assert.Equal(t, "Carla", pair.Socio1.Nome)
		assert.Equal(t, "Davi", pair.Socio2.Nome)
		assert.Equal(t, "c@x.com", pair.PrimaryEmail())
	})

	t.Run("socios company dropped when the first member is not an entrepreneur", func(t *testing.T) {
		body := []byte(`{"kind":"socios","nomeSocio1":"Carla","profissaoSocio1":"medica","nomeSocio2":"Davi","profissaoSocio2":"empreendedor","empresaSocio":"CD Ltda"}`)

		reg, err := DecodeForm(body)
		require.NoError(t, err)

		assert.Equal(t, "", reg.(SociosRegistration).Empresa)
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		_, err := DecodeForm([]byte(`{"kind":"empresa"}`))

		var regErr *Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, REASON_UNKNOWN_KIND, regErr.Reason)
	})

	t.Run("invalid json fails", func(t *testing.T) {
		_, err := DecodeForm([]byte(`not-json`))

		var regErr *Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, REASON_INVALID_FORM, regErr.Reason)
	})
}

func TestMetadataRoundTrip(t *testing.T) {
	t.Run("individual fields survive verbatim", func(t *testing.T) {
		body := []byte(`{"kind":"individual","nome":"Ana","idade":30,"email":"a@x.com","whatsapp":"11999999999","profissao":"empreendedor","empresa":"AnaCo"}`)

		reg, err := DecodeForm(body)
		require.NoError(t, err)

		raw, err := EncodeMetadata(reg)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
		assert.Equal(t, map[string]any{
			"kind":      "individual",
			"nome":      "Ana",
			"idade":     float64(30),
			"email":     "a@x.com",
			"whatsapp":  "11999999999",
			"profissao": "empreendedor",
			"empresa":   "AnaCo",
		}, decoded)

		back, err := DecodeMetadata(raw)
		require.NoError(t, err)
		assert.Equal(t, reg.(IndividualRegistration).Nome, back.(IndividualRegistration).Nome)
		assert.Equal(t, reg.(IndividualRegistration).Empresa, back.(IndividualRegistration).Empresa)
	})

	t.Run("socios fields survive the round trip", func(t *testing.T) {
		orig := SociosRegistration{
			Socio1:  Socio{Nome: "Carla", Idade: 40, Email: "c@x.com", Whatsapp: "1", Profissao: "empreendedor"},
			Socio2:  Socio{Nome: "Davi", Idade: 41, Email: "d@x.com", Whatsapp: "2", Profissao: "medico"},
			Empresa: "CD Ltda",
		}

		raw, err := EncodeMetadata(orig)
		require.NoError(t, err)

		back, err := DecodeMetadata(raw)
		require.NoError(t, err)

		pair := back.(SociosRegistration)
		assert.Equal(t, orig.Socio1, pair.Socio1)
		assert.Equal(t, orig.Socio2, pair.Socio2)
		assert.Equal(t, orig.Empresa, pair.Empresa)
	})
}
