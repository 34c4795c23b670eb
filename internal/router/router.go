package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tablero/internal/domain"
	"tablero/internal/handler"
	"tablero/internal/middleware"
	"tablero/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	logger zerolog.Logger,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	remitoH *handler.RemitoHandler,
	ticketH *handler.TicketHandler,
	movementH *handler.MovementHandler,
	reportH *handler.ReportHandler,
	categoryH *handler.CategoryHandler,
	streamH *handler.StreamHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Delivery notes
	remitos := protected.Group("/remitos")
	remitos.POST("/parse", remitoH.Parse)
	remitos.POST("", remitoH.Create)
	remitos.GET("", remitoH.List)
	remitos.GET("/history", remitoH.History)
	remitos.GET("/history/export", remitoH.ExportHistory)
	remitos.GET("/history/:id", remitoH.HistoryDetail)
	remitos.DELETE("/history/:id", middleware.RequireRole(domain.RoleAdmin), remitoH.DeleteFromHistory)
	remitos.PATCH("/:id", remitoH.Patch)
	remitos.POST("/:id/proof", remitoH.Deliver)
	remitos.POST("/:id/reject", remitoH.Reject)

	// Support tickets
	tickets := protected.Group("/tickets")
	tickets.POST("", ticketH.Create)
	tickets.GET("", ticketH.List)
	tickets.PATCH("/:id", ticketH.Update)
	tickets.PUT("/:id/state", ticketH.SetState)
	tickets.PUT("/:id/window", ticketH.SetWindow)
	tickets.DELETE("/:id", ticketH.Delete)

	// Driver movements
	movements := protected.Group("/movements")
	movements.GET("", movementH.List)
	movements.PATCH("/:id", movementH.Patch)
	movements.DELETE("/:id", movementH.Delete)

	// Aggregate reports
	reports := protected.Group("/reports")
	reports.GET("/categories", reportH.Categories)
	reports.GET("/monthly", reportH.Monthly)
	reports.GET("/weekdays", reportH.Weekdays)
	reports.GET("/top-products", reportH.TopProducts)
	reports.GET("/top-clients", reportH.TopClients)

	// Category configuration - admin only
	categories := protected.Group("/categories")
	categories.Use(middleware.RequireRole(domain.RoleAdmin))
	categories.GET("", categoryH.Get)
	categories.POST("", categoryH.AddCategory)
	categories.DELETE("/:name", categoryH.RemoveCategory)
	categories.POST("/:name/codes", categoryH.AddCode)
	categories.DELETE("/:name/codes/:index", categoryH.RemoveCode)

	// Snapshot stream
	protected.GET("/stream/:collection", streamH.Stream)

	return r
}
