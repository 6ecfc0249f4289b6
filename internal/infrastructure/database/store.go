package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mappins/internal/domain/repository/blobstore"
	"mappins/pkg/logger"
)

type blobDocument struct {
	ID        string    `bson:"_id"`
	Namespace string    `bson:"namespace"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store keeps each document in the blobs collection under _id <namespace>/<key>.
type Store struct {
	db        *Database
	namespace string
}

func NewStore(db *Database, namespace string) *Store {
	return &Store{
		db:        db,
		namespace: namespace,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(BlobCollection)

	var doc blobDocument
	err := coll.FindOne(ctx, bson.M{"_id": blobstore.Key(s.namespace, key)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, blobstore.ErrNotFound
		}

		logger.Error("failed to retrieve blob", "key", key, "err", err)

		return nil, err
	}

	return []byte(doc.Data), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(BlobCollection)

	id := blobstore.Key(s.namespace, key)
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, blobDocument{
		ID:        id,
		Namespace: s.namespace,
		Data:      string(value),
		UpdatedAt: time.Now(),
	}, options.Replace().SetUpsert(true))
	if err != nil {
		logger.Error("failed to write blob", "key", key, "err", err)

		return err
	}

	return nil
}
