package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	offersvc "telecom-catalog/internal/service/offer"
	productsvc "telecom-catalog/internal/service/product"
	"telecom-catalog/internal/storage"
)

// Deps bundles everything the handlers need.
type Deps struct {
	OfferSvc   *offersvc.Service
	ProductSvc *productsvc.Service
	Files      storage.FileStore
	UploadDir  string
	CORSOrigin string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if deps.CORSOrigin != "" {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = []string{deps.CORSOrigin}
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	oh := &offerHandlers{svc: deps.OfferSvc}
	offers := router.Group("/api/offers")
	{
		offers.GET("", oh.list)
		offers.POST("", oh.create)
		offers.GET("/:id", oh.get)
		offers.PUT("/:id", oh.update)
		offers.DELETE("/:id", oh.delete)
		offers.GET("/type/:type", oh.listByType)
	}

	ph := &productHandlers{svc: deps.ProductSvc, files: deps.Files, logger: logger}
	products := router.Group("/api/products")
	{
		products.GET("", ph.list)
		products.POST("", ph.create)
		products.GET("/:id", ph.get)
		products.PUT("/:id", ph.update)
		products.DELETE("/:id", ph.delete)
		products.GET("/category/:category", ph.listByCategory)
		products.GET("/offer/:offerId", ph.listByOfferID)
		products.POST("/uploadImage", ph.uploadImage)
	}
	if deps.UploadDir != "" {
		products.StaticFS("/uploads", http.Dir(deps.UploadDir))
	}

	return router
}
