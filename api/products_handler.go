package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"market_api/internal/products"
)

// productsHandler holds the product service and implements HTTP handlers for
// product operations.
type productsHandler struct {
	service *products.Service
	logger  *zap.Logger
}

// NewProductsHandler creates a new products handler.
func NewProductsHandler(service *products.Service, logger *zap.Logger) *productsHandler {
	return &productsHandler{
		service: service,
		logger:  logger,
	}
}

// handleCreateProduct handles the POST /products endpoint.
func (h *productsHandler) handleCreateProduct(ctx *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}

	product, err := h.service.Create(ctx.Request.Context(), req.Name, req.Price, req.Description)
	if err != nil {
		h.logger.Warn("failed to create product", zap.Error(err), zap.String("name", req.Name))
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// handleListProducts handles the GET /products endpoint.
func (h *productsHandler) handleListProducts(ctx *gin.Context) {
	list, err := h.service.GetAll(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// handleGetProduct handles the GET /products/:id endpoint.
func (h *productsHandler) handleGetProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	product, err := h.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}
