package products

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Client looks products up over HTTP in the products API. Every call is
// bounded by the configured timeout; there are no retries.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a Client against the given base URL, e.g.
// "http://localhost:5001".
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		logger: logger,
	}
}

// Get fetches one product by hex ID. A downstream 404 maps to ErrNotFound and
// a downstream 400 to ErrInvalidID; any other failure is returned as-is.
func (c *Client) Get(ctx context.Context, id string) (*Product, error) {
	ctx, span := otel.Tracer("products-client").Start(ctx, "GET /products/:id")
	defer span.End()

	var product Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&product).
		Get("/products/" + id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("products API request: %w", err)
	}

	span.SetAttributes(
		attribute.String("http.method", http.MethodGet),
		attribute.String("http.url", resp.Request.URL),
		attribute.Int("http.status_code", resp.StatusCode()),
	)

	switch resp.StatusCode() {
	case http.StatusOK:
		return &product, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	default:
		c.logger.Warn("products API returned unexpected status",
			zap.String("product_id", id),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, fmt.Errorf("products API returned status %d", resp.StatusCode())
	}
}
