// Package mongodb backs the registration repository and the admin
// credential store with MongoDB collections.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	registrationsCollection = "inscricoes"
	adminsCollection        = "admins"
)

type DB struct {
	database *mongo.Database
}

func NewDB(database *mongo.Database) *DB {
	return &DB{
		database: database,
	}
}

func (d *DB) registrations() *mongo.Collection {
	return d.database.Collection(registrationsCollection)
}

func (d *DB) admins() *mongo.Collection {
	return d.database.Collection(adminsCollection)
}

// EnsureIndexes creates the unique index on paymentId. A provider retry of
// the same confirmation then fails the insert with a duplicate key instead
// of writing a second record.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.registrations().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "paymentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create paymentId index: %w", err)
	}

	return nil
}
