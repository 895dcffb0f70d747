package sales

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrEmptyID is returned when trying to store a sale without an ID.
var ErrEmptyID = errors.New("empty sale ID")

// Storage is the main interface for the sales storage layer.
type Storage interface {
	Set(ctx context.Context, sale *Sale) error
	GetAll(ctx context.Context) ([]Sale, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// LocalStorage provides an in-memory implementation for storing sales.
type LocalStorage struct {
	m map[string]*Sale
}

// NewLocalStorage instantiates a new LocalStorage for sales with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string]*Sale{},
	}
}

// Set stores a sale. Returns ErrEmptyID if the sale has a zero ID.
func (l *LocalStorage) Set(_ context.Context, sale *Sale) error {
	if sale.ID.IsZero() {
		return ErrEmptyID
	}
	l.m[sale.ID.Hex()] = sale
	return nil
}

// GetAll retrieves all sales from the local storage.
func (l *LocalStorage) GetAll(_ context.Context) ([]Sale, error) {
	out := make([]Sale, 0, len(l.m))
	for _, s := range l.m {
		out = append(out, *s)
	}
	return out, nil
}

// Delete removes one sale by ID. Returns ErrNotFound if the sale is not found.
func (l *LocalStorage) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := l.m[id.Hex()]; !ok {
		return ErrNotFound
	}
	delete(l.m, id.Hex())
	return nil
}

// DeleteAll removes every sale. Deleting from an empty storage succeeds.
func (l *LocalStorage) DeleteAll(_ context.Context) error {
	l.m = map[string]*Sale{}
	return nil
}
