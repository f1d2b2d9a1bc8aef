package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campusbuzz/internal/common"
)

// entryDocument keeps the raw JSON as a string so undecodable records
// survive the round trip and are judged by the caller.
type entryDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type entryMedium struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMedium(collection *mongo.Collection) common.Medium {
	return &entryMedium{
		collection: collection,
		now:        time.Now,
	}
}

func (m *entryMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc entryDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch entry: %w", err)
	}
	return []byte(doc.Value), true, nil
}

func (m *entryMedium) Set(ctx context.Context, key string, value []byte) error {
	doc := entryDocument{
		Key:       key,
		Value:     string(value),
		UpdatedAt: m.now().UTC(),
	}
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}
