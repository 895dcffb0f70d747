package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"market_api/internal/products"
)

// ErrMissingFields is returned when a sale is created without a date, value or
// product ID.
var ErrMissingFields = errors.New(`fields "date", "value" and "productId" are required`)

// ErrInvalidID is returned when a sale ID is not a well-formed object ID.
var ErrInvalidID = errors.New("invalid sale ID")

// ErrInvalidPeriod is returned for report periods other than week, month, year
// and max.
var ErrInvalidPeriod = errors.New("invalid period")

// ErrProductNotFound is returned when a sale references a product the products
// API does not know.
var ErrProductNotFound = errors.New("product not found")

// ErrProductLookup is returned when the products API cannot be reached or
// fails; the sale is not created.
var ErrProductLookup = errors.New("product lookup failed")

// ProductGetter fetches a product by ID, typically from the products API.
type ProductGetter interface {
	Get(ctx context.Context, id string) (*products.Product, error)
}

// Service provides high-level sale ledger operations on a Storage backend.
type Service struct {
	storage  Storage
	products ProductGetter
	logger   *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, products ProductGetter, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage:  storage,
		products: products,
		logger:   logger,
	}
}

// CreateSale handles the creation of a new sale. The referenced product is
// looked up in the products API and embedded as a snapshot; if the lookup
// fails for any reason, nothing is persisted.
func (s *Service) CreateSale(ctx context.Context, date time.Time, value float64, productID string) (*Sale, error) {
	if date.IsZero() || value == 0 || productID == "" {
		return nil, ErrMissingFields
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) || errors.Is(err, products.ErrInvalidID) {
			return nil, fmt.Errorf("%w: %q", ErrProductNotFound, productID)
		}
		s.logger.Error("product lookup failed", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProductLookup, err)
	}

	sale := &Sale{
		ID:      primitive.NewObjectID(),
		Date:    date,
		Value:   value,
		Product: *product,
	}

	if err := s.storage.Set(ctx, sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.ID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.logger.Info("sale created",
		zap.String("sale_id", sale.ID.Hex()),
		zap.String("product_id", productID),
		zap.Float64("value", value),
	)
	return sale, nil
}

// GetAll returns every sale in the ledger, unfiltered.
func (s *Service) GetAll(ctx context.Context) ([]Sale, error) {
	sales, err := s.storage.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get all sales", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}
	return sales, nil
}

// Delete removes one sale by hex ID. A malformed ID yields ErrInvalidID; a
// well-formed ID with no matching sale yields ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	if err := s.storage.Delete(ctx, oid); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete sale", zap.String("sale_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	s.logger.Info("sale deleted", zap.String("sale_id", id))
	return nil
}

// DeleteAll removes every sale. Calling it on an empty ledger succeeds.
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.storage.DeleteAll(ctx); err != nil {
		s.logger.Error("failed to delete all sales", zap.Error(err))
		return fmt.Errorf("failed to delete sales: %w", err)
	}

	s.logger.Info("all sales deleted")
	return nil
}

// Report loads the full sale set and aggregates it for the given period
// (week, month, year or max). Each call recomputes from scratch.
func (s *Service) Report(ctx context.Context, period string) (any, error) {
	switch period {
	case "week", "month", "year", "max":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	sales, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	switch period {
	case "week":
		return WeeklyTotals(sales), nil
	case "month":
		return MonthlyTotals(sales), nil
	case "year":
		return YearlyTotals(sales), nil
	default:
		return TopSales(sales), nil
	}
}
