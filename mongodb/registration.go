package mongodb

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/mentoria-raiz/inscricoes/registration"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ registration.Repository = &DB{}

// registrationDoc is the stored document: one flat shape with a section
// per variant, discriminated by tipo. Field names match the collection's
// historical schema.
type registrationDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Tipo string             `bson:"tipo"`

	// individual fields
	Nome      string `bson:"nome,omitempty"`
	Idade     int    `bson:"idade,omitempty"`
	Email     string `bson:"email,omitempty"`
	Whatsapp  string `bson:"whatsapp,omitempty"`
	Profissao string `bson:"profissao,omitempty"`
	Empresa   string `bson:"empresa,omitempty"`

	// socios fields
	NomeSocio1      string `bson:"nomeSocio1,omitempty"`
	IdadeSocio1     int    `bson:"idadeSocio1,omitempty"`
	EmailSocio1     string `bson:"emailSocio1,omitempty"`
	WhatsappSocio1  string `bson:"whatsappSocio1,omitempty"`
	ProfissaoSocio1 string `bson:"profissaoSocio1,omitempty"`
	NomeSocio2      string `bson:"nomeSocio2,omitempty"`
	IdadeSocio2     int    `bson:"idadeSocio2,omitempty"`
	EmailSocio2     string `bson:"emailSocio2,omitempty"`
	WhatsappSocio2  string `bson:"whatsappSocio2,omitempty"`
	ProfissaoSocio2 string `bson:"profissaoSocio2,omitempty"`

	Data      time.Time `bson:"data"`
	PaymentID string    `bson:"paymentId,omitempty"`
	Valor     float64   `bson:"valor,omitempty"`
	Status    string    `bson:"status,omitempty"`
}

func registrationToDoc(reg registration.Registration) registrationDoc {
	doc := registrationDoc{
		Tipo: string(reg.Kind()),
		Data: reg.SubmissionTime(),
	}
	if payment := reg.Payment(); payment != nil {
		doc.PaymentID = payment.PaymentID
		doc.Valor = payment.Amount
		doc.Status = payment.Status
	}

	switch r := reg.(type) {
	case registration.IndividualRegistration:
		doc.Nome = r.Nome
		doc.Idade = r.Idade
		doc.Email = r.Email
		doc.Whatsapp = r.Whatsapp
		doc.Profissao = r.Profissao
		doc.Empresa = r.Empresa
	case registration.SociosRegistration:
		doc.NomeSocio1 = r.Socio1.Nome
		doc.IdadeSocio1 = r.Socio1.Idade
		doc.EmailSocio1 = r.Socio1.Email
		doc.WhatsappSocio1 = r.Socio1.Whatsapp
		doc.ProfissaoSocio1 = r.Socio1.Profissao
		doc.NomeSocio2 = r.Socio2.Nome
		doc.IdadeSocio2 = r.Socio2.Idade
		doc.EmailSocio2 = r.Socio2.Email
		doc.WhatsappSocio2 = r.Socio2.Whatsapp
		doc.ProfissaoSocio2 = r.Socio2.Profissao
		doc.Empresa = r.Empresa
	default:
		panic("unknown registration kind")
	}

	return doc
}

func docToRegistration(doc registrationDoc) (registration.Registration, error) {
	var payment *registration.PaymentInfo
	if doc.PaymentID != "" {
		payment = &registration.PaymentInfo{
			PaymentID: doc.PaymentID,
			Amount:    doc.Valor,
			Status:    doc.Status,
		}
	}

	switch registration.Kind(doc.Tipo) {
	case registration.KIND_INDIVIDUAL:
		return registration.IndividualRegistration{
			Nome:        doc.Nome,
			Idade:       doc.Idade,
			Email:       doc.Email,
			Whatsapp:    doc.Whatsapp,
			Profissao:   doc.Profissao,
			Empresa:     doc.Empresa,
			SubmittedAt: doc.Data,
			PaymentInfo: payment,
		}, nil
	case registration.KIND_SOCIOS:
		return registration.SociosRegistration{
			Socio1: registration.Socio{
				Nome:      doc.NomeSocio1,
				Idade:     doc.IdadeSocio1,
				Email:     doc.EmailSocio1,
				Whatsapp:  doc.WhatsappSocio1,
				Profissao: doc.ProfissaoSocio1,
			},
			Socio2: registration.Socio{
				Nome:      doc.NomeSocio2,
				Idade:     doc.IdadeSocio2,
				Email:     doc.EmailSocio2,
				Whatsapp:  doc.WhatsappSocio2,
				Profissao: doc.ProfissaoSocio2,
			},
			Empresa:     doc.Empresa,
			SubmittedAt: doc.Data,
			PaymentInfo: payment,
		}, nil
	default:
		return nil, registration.NewUnknownKindError(doc.Tipo)
	}
}

func (d *DB) InsertRegistration(ctx context.Context, reg registration.Registration) error {
	doc := registrationToDoc(reg)

	_, err := d.registrations().InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return registration.NewAlreadyRecordedError(doc.PaymentID, err)
		}

		return registration.NewFailedToWriteError("Failed to insert registration", err)
	}

	return nil
}

func (d *DB) CountConfirmedIndividuals(ctx context.Context) (int64, error) {
	count, err := d.registrations().CountDocuments(ctx, bson.M{"tipo": string(registration.KIND_INDIVIDUAL)})
	if err != nil {
		return 0, registration.NewFailedToFetchError("Failed to count individual registrations", err)
	}

	return count, nil
}

// SearchRegistrations returns every registration matching the free-text
// search over nome, email and whatsapp, in store order. A blank search
// returns everything.
func (d *DB) SearchRegistrations(ctx context.Context, search string) ([]registration.Registration, error) {
	cursor, err := d.registrations().Find(ctx, searchFilter(search))
	if err != nil {
		return nil, registration.NewFailedToFetchError("Failed to query registrations", err)
	}

	var docs []registrationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, registration.NewFailedToFetchError("Failed to decode registrations", err)
	}

	regs := make([]registration.Registration, 0, len(docs))
	for _, doc := range docs {
		reg, err := docToRegistration(doc)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}

	return regs, nil
}

// searchFilter builds the case-insensitive substring match. The input is
// quoted so it is a literal, not a regex pattern.
func searchFilter(search string) bson.M {
	if strings.TrimSpace(search) == "" {
		return bson.M{}
	}

	contains := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}

	return bson.M{
		"$or": []bson.M{
			{"nome": contains},
			{"email": contains},
			{"whatsapp": contains},
		},
	}
}
