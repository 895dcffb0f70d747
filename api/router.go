package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"market_api/internal/products"
	"market_api/internal/sales"
)

// NewEngine builds a gin engine with the shared middleware stack: recovery,
// request ids, request logging, tracing and CORS.
func NewEngine(serviceName string, allowOrigins []string, logger *zap.Logger) *gin.Engine {
	corsConfig := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}

	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(RequestID())
	e.Use(RequestLogger(logger))
	e.Use(otelgin.Middleware(serviceName))
	e.Use(cors.New(corsConfig))

	return e
}

// InitProductRoutes registers all product directory endpoints on the given
// gin engine.
func InitProductRoutes(e *gin.Engine, service *products.Service, logger *zap.Logger) {
	productsHandler := NewProductsHandler(service, logger)

	e.POST("/products", productsHandler.handleCreateProduct)
	e.GET("/products", productsHandler.handleListProducts)
	e.GET("/products/:id", productsHandler.handleGetProduct)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

// InitSalesRoutes registers all sale ledger and reporting endpoints on the
// given gin engine.
func InitSalesRoutes(e *gin.Engine, service *sales.Service, logger *zap.Logger) {
	salesHandler := NewSalesHandler(service, logger)

	e.POST("/sales", salesHandler.handleCreateSale)
	e.GET("/sales", salesHandler.handleListSales)
	e.GET("/sales/:period", salesHandler.handleReport)
	e.DELETE("/sales", salesHandler.handleDeleteAllSales)
	e.DELETE("/sales/:id", salesHandler.handleDeleteSale)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
