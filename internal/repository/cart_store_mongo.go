package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cartDocument struct {
	Key       string     `bson:"_id"`
	Data      []byte     `bson:"data"`
	UpdatedAt time.Time  `bson:"updated_at"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

// MongoCartStore stores one document per cart key in the carts collection.
type MongoCartStore struct {
	db  *MongoDB
	ttl time.Duration
	now func() time.Time
}

// NewMongoCartStore creates a store whose documents expire ttl after their last write.
// A zero ttl keeps documents forever.
func NewMongoCartStore(db *MongoDB, ttl time.Duration) *MongoCartStore {
	return &MongoCartStore{db: db, ttl: ttl, now: time.Now}
}

func (s *MongoCartStore) Save(ctx context.Context, key string, data []byte) error {
	now := s.now().UTC()
	doc := cartDocument{Key: key, Data: data, UpdatedAt: now}
	if s.ttl > 0 {
		expires := now.Add(s.ttl)
		doc.ExpiresAt = &expires
	}

	_, err := s.db.Carts.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save cart %s: %w", key, err)
	}
	return nil
}

func (s *MongoCartStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc cartDocument
	err := s.db.Carts.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", key, err)
	}
	// The TTL monitor runs about once a minute; hide documents it has not reaped yet.
	if doc.ExpiresAt != nil && !doc.ExpiresAt.After(s.now()) {
		return nil, nil
	}
	return doc.Data, nil
}

func (s *MongoCartStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Carts.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete cart %s: %w", key, err)
	}
	return nil
}

func (s *MongoCartStore) Ping(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}
