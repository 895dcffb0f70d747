package products

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "products"

// MongoStorage persists products in a MongoDB collection.
type MongoStorage struct {
	col *mongo.Collection
}

// NewMongoStorage creates a MongoStorage backed by the "products" collection
// of the given database.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{col: db.Collection(collectionName)}
}

func (m *MongoStorage) Set(ctx context.Context, product *Product) error {
	if product.ID.IsZero() {
		return ErrEmptyID
	}
	if _, err := m.col.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (m *MongoStorage) Read(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	var p Product
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (m *MongoStorage) GetAll(ctx context.Context) ([]Product, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	out := make([]Product, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return out, nil
}
