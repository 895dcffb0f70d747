package sales

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "sales"

// MongoStorage persists sales in a MongoDB collection.
type MongoStorage struct {
	col *mongo.Collection
}

// NewMongoStorage creates a MongoStorage backed by the "sales" collection of
// the given database.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{col: db.Collection(collectionName)}
}

func (m *MongoStorage) Set(ctx context.Context, sale *Sale) error {
	if sale.ID.IsZero() {
		return ErrEmptyID
	}
	if _, err := m.col.InsertOne(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (m *MongoStorage) GetAll(ctx context.Context) ([]Sale, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	out := make([]Sale, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return out, nil
}

func (m *MongoStorage) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStorage) DeleteAll(ctx context.Context) error {
	if _, err := m.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete sales: %w", err)
	}
	return nil
}
