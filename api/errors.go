package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_api/internal/products"
	"market_api/internal/sales"
)

// writeError converts a service error into the {"message": ...} JSON body and
// status code the API contract defines: validation failures map to 400, absent
// records to 404, downstream product-lookup failures to 502 and everything
// else to 500.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, products.ErrMissingFields),
		errors.Is(err, products.ErrInvalidID),
		errors.Is(err, sales.ErrMissingFields),
		errors.Is(err, sales.ErrInvalidID),
		errors.Is(err, sales.ErrInvalidPeriod),
		errors.Is(err, sales.ErrProductNotFound):
		status = http.StatusBadRequest
	case errors.Is(err, products.ErrNotFound),
		errors.Is(err, sales.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, sales.ErrProductLookup):
		status = http.StatusBadGateway
	}

	ctx.JSON(status, gin.H{"message": err.Error()})
}
