package mongodb

import (
	"context"
	"errors"

	"github.com/mentoria-raiz/inscricoes/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ auth.CredentialStore = &DB{}

type adminDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

func (d *DB) GetAdminByUsername(ctx context.Context, username string) (auth.Admin, error) {
	var doc adminDoc
	err := d.admins().FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return auth.Admin{}, auth.NewAdminDoesNotExistError(username)
		}

		return auth.Admin{}, auth.NewFailedToFetchError("Failed to fetch admin", err)
	}

	return auth.Admin{
		ID:           doc.ID.Hex(),
		Username:     doc.Username,
		PasswordHash: doc.Password,
	}, nil
}
