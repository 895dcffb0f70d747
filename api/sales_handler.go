package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"market_api/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for sales
// operations.
type salesHandler struct {
	service *sales.Service
	logger  *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(service *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		service: service,
		logger:  logger,
	}
}

// handleCreateSale handles the POST /sales endpoint.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req struct {
		Date      time.Time `json:"date"`
		Value     float64   `json:"value"`
		ProductID string    `json:"productId"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
		return
	}

	sale, err := h.service.CreateSale(ctx.Request.Context(), req.Date, req.Value, req.ProductID)
	if err != nil {
		h.logger.Warn("failed to create sale",
			zap.Error(err),
			zap.String("product_id", req.ProductID),
			zap.Float64("value", req.Value),
		)
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// handleListSales handles the GET /sales endpoint.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	list, err := h.service.GetAll(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// handleReport handles the GET /sales/:period endpoint.
func (h *salesHandler) handleReport(ctx *gin.Context) {
	period := ctx.Param("period")

	stats, err := h.service.Report(ctx.Request.Context(), period)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// handleDeleteAllSales handles the DELETE /sales endpoint.
func (h *salesHandler) handleDeleteAllSales(ctx *gin.Context) {
	if err := h.service.DeleteAll(ctx.Request.Context()); err != nil {
		h.logger.Error("failed to delete all sales", zap.Error(err))
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleDeleteSale handles the DELETE /sales/:id endpoint.
func (h *salesHandler) handleDeleteSale(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.service.Delete(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
