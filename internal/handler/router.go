package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bundlestay/internal/handler/api"
	"bundlestay/internal/handler/middleware"
	"bundlestay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Package   *api.PackageHandler
	Booking   *api.BookingHandler
	Bundle    *api.BundleHandler
	Dashboard *api.DashboardHandler
	Upload    *api.UploadHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
			})
		}

		packages := apiGroup.Group("/packages")
		{
			addRoutes(packages, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Package.ListPackages},
				{Method: http.MethodGet, Path: "/:hotelName", Handler: handlers.Package.GetPackage},
			})

			packagesAdmin := packages.Group("")
			packagesAdmin.Use(authMiddleware.RequireAuth())
			addRoutes(packagesAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Package.CreatePackage},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.CreateBooking},
				{Method: http.MethodPost, Path: "/itinerary", Handler: handlers.Booking.CreateItinerary},
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.ListBookings},
			})
		}

		bundles := apiGroup.Group("/bundles")
		bundles.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bundles, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Bundle.CreateBundle},
				{Method: http.MethodGet, Path: "", Handler: handlers.Bundle.ListBundles},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Bundle.GetBundle},
				{Method: http.MethodPost, Path: "/:id/utilise", Handler: handlers.Bundle.MarkUtilised},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/revenue", Handler: handlers.Dashboard.RevenueByDate},
				{Method: http.MethodGet, Path: "/bookings", Handler: handlers.Dashboard.BookingsByMonth},
			})
		}

		upload := apiGroup.Group("/upload")
		upload.Use(authMiddleware.RequireAuth())
		{
			addRoutes(upload, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Upload.Upload},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
