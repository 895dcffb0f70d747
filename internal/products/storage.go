package products

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no product with the given ID exists.
var ErrNotFound = errors.New("product not found")

// ErrEmptyID is returned when trying to store a product without an ID.
var ErrEmptyID = errors.New("empty product ID")

// Storage is the main interface for the product storage layer.
type Storage interface {
	Set(ctx context.Context, product *Product) error
	Read(ctx context.Context, id primitive.ObjectID) (*Product, error)
	GetAll(ctx context.Context) ([]Product, error)
}

// LocalStorage provides an in-memory implementation for storing products.
type LocalStorage struct {
	m map[string]*Product
}

// NewLocalStorage instantiates a new LocalStorage for products with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string]*Product{},
	}
}

// Set stores a product. Returns ErrEmptyID if the product has a zero ID.
func (l *LocalStorage) Set(_ context.Context, product *Product) error {
	if product.ID.IsZero() {
		return ErrEmptyID
	}
	l.m[product.ID.Hex()] = product
	return nil
}

// Read retrieves a product by ID. Returns ErrNotFound if the product is not found.
func (l *LocalStorage) Read(_ context.Context, id primitive.ObjectID) (*Product, error) {
	p, ok := l.m[id.Hex()]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// GetAll retrieves all products from the local storage.
func (l *LocalStorage) GetAll(_ context.Context) ([]Product, error) {
	out := make([]Product, 0, len(l.m))
	for _, p := range l.m {
		out = append(out, *p)
	}
	return out, nil
}
