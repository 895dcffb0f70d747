package sales

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"

	"market_api/internal/products"
)

// newProductsMock serves the one product it is given and 404s everything else.
func newProductsMock(t *testing.T, product products.Product) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/products/")
		w.Header().Set("Content-Type", "application/json")
		if id != product.ID.Hex() {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "product not found"})
			return
		}
		json.NewEncoder(w).Encode(product)
	}))
}

func testProduct() products.Product {
	return products.Product{
		ID:          primitive.NewObjectID(),
		Name:        "Laptop",
		Price:       999.9,
		Description: "14 inch",
	}
}

func TestNewService(t *testing.T) {
	storage := NewLocalStorage()
	logger := zaptest.NewLogger(t)
	client := products.NewClient("http://localhost:5001", time.Second, logger)

	svc := NewService(storage, client, logger)

	require.NotNil(t, svc)
	assert.NotNil(t, svc.storage)
	assert.NotNil(t, svc.products)
	assert.NotNil(t, svc.logger)
}

func TestCreateSale_MissingFields(t *testing.T) {
	storage := NewLocalStorage()
	logger := zaptest.NewLogger(t)
	svc := NewService(storage, products.NewClient("http://localhost:5001", time.Second, logger), logger)

	cases := []struct {
		name      string
		date      time.Time
		value     float64
		productID string
	}{
		{name: "zero date", value: 10, productID: "abc"},
		{name: "zero value", date: time.Now(), productID: "abc"},
		{name: "empty product id", date: time.Now(), value: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sale, err := svc.CreateSale(context.Background(), tc.date, tc.value, tc.productID)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Nil(t, sale)
		})
	}

	stored, err := storage.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored, "no sale may be persisted when validation fails")
}

func TestCreateSale_ProductNotFound(t *testing.T) {
	mock := newProductsMock(t, testProduct())
	defer mock.Close()

	storage := NewLocalStorage()
	logger := zaptest.NewLogger(t)
	svc := NewService(storage, products.NewClient(mock.URL, time.Second, logger), logger)

	sale, err := svc.CreateSale(context.Background(), time.Now(), 100, primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, sale)

	stored, err := storage.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored, "ledger must be unchanged after a failed lookup")
}

func TestCreateSale_DownstreamFailure(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mock.Close()

	storage := NewLocalStorage()
	logger := zaptest.NewLogger(t)
	svc := NewService(storage, products.NewClient(mock.URL, time.Second, logger), logger)

	sale, err := svc.CreateSale(context.Background(), time.Now(), 100, primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, ErrProductLookup)
	assert.Nil(t, sale)

	stored, err := storage.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateSale_EmbedsProductSnapshot(t *testing.T) {
	product := testProduct()
	mock := newProductsMock(t, product)
	defer mock.Close()

	storage := NewLocalStorage()
	logger := zaptest.NewLogger(t)
	svc := NewService(storage, products.NewClient(mock.URL, time.Second, logger), logger)

	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sale, err := svc.CreateSale(context.Background(), date, 150.5, product.ID.Hex())

	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.False(t, sale.ID.IsZero(), "expected sale ID to be generated")
	assert.Equal(t, date, sale.Date)
	assert.Equal(t, 150.5, sale.Value)
	assert.Equal(t, product, sale.Product, "expected the full product embedded as a snapshot")

	stored, err := storage.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, sale.ID, stored[0].ID)
}

func TestDelete(t *testing.T) {
	storage := NewLocalStorage()
	logger := zaptest.NewLogger(t)
	svc := NewService(storage, products.NewClient("http://localhost:5001", time.Second, logger), logger)

	sale := &Sale{ID: primitive.NewObjectID(), Date: time.Now(), Value: 10}
	require.NoError(t, storage.Set(context.Background(), sale))

	t.Run("malformed id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(context.Background(), "not-an-id"), ErrInvalidID)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(context.Background(), primitive.NewObjectID().Hex()), ErrNotFound)
	})

	t.Run("existing id, then again", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), sale.ID.Hex()))
		assert.ErrorIs(t, svc.Delete(context.Background(), sale.ID.Hex()), ErrNotFound)
	})
}

func TestDeleteAll_Idempotent(t *testing.T) {
	storage := NewLocalStorage()
	logger := zaptest.NewLogger(t)
	svc := NewService(storage, products.NewClient("http://localhost:5001", time.Second, logger), logger)

	require.NoError(t, storage.Set(context.Background(), &Sale{ID: primitive.NewObjectID(), Date: time.Now(), Value: 10}))

	require.NoError(t, svc.DeleteAll(context.Background()))
	stored, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)

	// A second pass over the empty ledger still succeeds.
	require.NoError(t, svc.DeleteAll(context.Background()))
}

func TestReport(t *testing.T) {
	storage := NewLocalStorage()
	logger := zaptest.NewLogger(t)
	svc := NewService(storage, products.NewClient("http://localhost:5001", time.Second, logger), logger)

	for _, s := range []Sale{
		{ID: primitive.NewObjectID(), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Value: 100},
		{ID: primitive.NewObjectID(), Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Value: 50},
	} {
		s := s
		require.NoError(t, storage.Set(context.Background(), &s))
	}

	t.Run("month", func(t *testing.T) {
		stats, err := svc.Report(context.Background(), "month")
		require.NoError(t, err)
		assert.Equal(t, []MonthTotal{{Month: "2024-3", Value: 150}}, stats)
	})

	t.Run("year", func(t *testing.T) {
		stats, err := svc.Report(context.Background(), "year")
		require.NoError(t, err)
		assert.Equal(t, []YearTotal{{Year: 2024, Value: 150}}, stats)
	})

	t.Run("invalid period", func(t *testing.T) {
		stats, err := svc.Report(context.Background(), "day")
		assert.ErrorIs(t, err, ErrInvalidPeriod)
		assert.Nil(t, stats)
	})
}
