// Package mongo provides a MongoDB-backed kv.Store, one document per key.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/etnz/partsledger/kv"
)

// entry is the document stored for a key. The value is kept as a JSON string
// so that it round-trips byte for byte.
type entry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Store persists key-values in a MongoDB collection.
type Store struct {
	kv.Notifier
	client *mongo.Client
	coll   *mongo.Collection
}

var _ kv.Store = (*Store)(nil)

// Open connects to the MongoDB deployment at uri and uses database.collection.
func Open(ctx context.Context, uri, database, collection string) (*Store, error) {
	const op = "mongo.Open"
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: connect: %w", op, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "mongo.Get"
	var ent entry
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&ent)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s %q: %w", op, key, err)
	}
	return []byte(ent.Value), true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	const op = "mongo.Set"
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		entry{Key: key, Value: string(value)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s %q: %w", op, key, err)
	}
	s.Notify(key, value)
	return nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(context.Background())
}
