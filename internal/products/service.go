package products

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ErrMissingFields is returned when a product is created without a name or price.
var ErrMissingFields = errors.New(`both "name" and "price" are required`)

// ErrInvalidID is returned when a product ID is not a well-formed object ID.
var ErrInvalidID = errors.New("invalid product ID")

// Service provides high-level product directory operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create registers a new product. Name and price are required; description is
// optional. Nothing is persisted when validation fails.
func (s *Service) Create(ctx context.Context, name string, price float64, description string) (*Product, error) {
	if name == "" || price == 0 {
		return nil, ErrMissingFields
	}

	product := &Product{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Price:       price,
		Description: description,
	}

	if err := s.storage.Set(ctx, product); err != nil {
		s.logger.Error("failed to save product", zap.String("product_id", product.ID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.Info("product created", zap.String("product_id", product.ID.Hex()), zap.String("name", name))
	return product, nil
}

// GetAll returns every product in the directory.
func (s *Service) GetAll(ctx context.Context) ([]Product, error) {
	products, err := s.storage.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// GetByID returns the product with the given hex ID. A malformed ID yields
// ErrInvalidID; a well-formed ID with no matching record yields ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	product, err := s.storage.Read(ctx, oid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to read product", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return product, nil
}
