package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backoffice/internal/server/http/handlers"
	"github.com/orderdesk/backoffice/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BackofficeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	clientHandler := handlers.NewClientHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	scanHandler := handlers.NewScanHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	api := engine.Group("/api")
	api.POST("/staff/login", authHandler.Login)

	// Public surface reached from a QR scan; the flashcode token is the
	// only credential.
	scan := api.Group("/scan")
	scan.GET("/:code", scanHandler.Scan)
	scan.POST("/:code/orders", scanHandler.CreateOrder)
	scan.POST("/:code/orders/:id/status", scanHandler.UpdateStatus)

	staff := api.Group("")
	staff.Use(middleware.AuthRequired(facade))
	staff.Use(middleware.CSRFGuard(facade))

	staff.POST("/clients", clientHandler.Create)
	staff.GET("/clients", clientHandler.List)
	staff.GET("/clients/:id", clientHandler.Get)
	staff.PUT("/clients/:id", clientHandler.Update)
	staff.DELETE("/clients/:id", clientHandler.Delete)
	staff.GET("/clients/:id/flashcode", clientHandler.Flashcode)

	staff.POST("/orders", orderHandler.Create)
	staff.GET("/orders", orderHandler.List)
	staff.GET("/orders/:id", orderHandler.Get)
	staff.GET("/orders/reference/:reference", orderHandler.GetByReference)
	staff.PUT("/orders/:id", orderHandler.Update)
	staff.DELETE("/orders/:id", orderHandler.Delete)
	staff.GET("/orders/:id/history", orderHandler.History)
	staff.GET("/orders/:id/notifications", orderHandler.Notifications)

	staff.GET("/reports/orders", reportHandler.Orders)
	staff.GET("/reports/dashboard", reportHandler.Dashboard)

	return engine
}
