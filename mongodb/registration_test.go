package mongodb

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mentoria-raiz/inscricoes/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegistrationDocMapping(t *testing.T) {
	submittedAt := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("confirmed individual maps both ways", func(t *testing.T) {
		reg := registration.IndividualRegistration{
			Nome:        "Ana",
			Idade:       30,
			Email:       "a@x.com",
			Whatsapp:    "11999999999",
			Profissao:   "empreendedor",
			Empresa:     "AnaCo",
			SubmittedAt: submittedAt,
			PaymentInfo: &registration.PaymentInfo{PaymentID: "123456", Amount: 0.1, Status: "approved"},
		}

		doc := registrationToDoc(reg)
		assert.Equal(t, "individual", doc.Tipo)
		assert.Equal(t, "123456", doc.PaymentID)
		assert.Equal(t, 0.1, doc.Valor)
		assert.Equal(t, "approved", doc.Status)

		back, err := docToRegistration(doc)
		require.NoError(t, err)
		if diff := cmp.Diff(reg, back); diff != "" {
			t.Errorf("registration mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("socios registration maps both ways", func(t *testing.T) {
		reg := registration.SociosRegistration{
			Socio1:      registration.Socio{Nome: "Carla", Idade: 40, Email: "c@x.com", Whatsapp: "1", Profissao: "empreendedor"},
			Socio2:      registration.Socio{Nome: "Davi", Idade: 41, Email: "d@x.com", Whatsapp: "2", Profissao: "medico"},
			Empresa:     "CD Ltda",
			SubmittedAt: submittedAt,
			PaymentInfo: &registration.PaymentInfo{PaymentID: "654321", Amount: 0.01, Status: "approved"},
		}

		doc := registrationToDoc(reg)
		assert.Equal(t, "socios", doc.Tipo)
		assert.Equal(t, "Carla", doc.NomeSocio1)
		assert.Equal(t, "d@x.com", doc.EmailSocio2)

		back, err := docToRegistration(doc)
		require.NoError(t, err)
		if diff := cmp.Diff(reg, back); diff != "" {
			t.Errorf("registration mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown tipo fails", func(t *testing.T) {
		_, err := docToRegistration(registrationDoc{Tipo: "empresa"})

		var regErr *registration.Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, registration.REASON_UNKNOWN_KIND, regErr.Reason)
	})
}

func TestSearchFilter(t *testing.T) {
	t.Run("blank search matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, searchFilter(""))
		assert.Equal(t, bson.M{}, searchFilter("   "))
	})

	t.Run("search ORs a case-insensitive substring over the contact fields", func(t *testing.T) {
		contains := primitive.Regex{Pattern: "jo", Options: "i"}
		want := bson.M{
			"$or": []bson.M{
				{"nome": contains},
				{"email": contains},
				{"whatsapp": contains},
			},
		}

		if diff := cmp.Diff(want, searchFilter("jo")); diff != "" {
			t.Errorf("filter mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("regex metacharacters are taken literally", func(t *testing.T) {
		filter := searchFilter("a.b")

		ors := filter["$or"].([]bson.M)
		assert.Equal(t, `a\.b`, ors[0]["nome"].(primitive.Regex).Pattern)
	})
}
