package routes

import (
	"net/http"

	"org-demo-backend/internal/api/handlers"
	"org-demo-backend/internal/api/middleware"
	"org-demo-backend/internal/config"
	"org-demo-backend/internal/repository"
	"org-demo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	// only the exact paths below are served
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.Workers(cfg.Workers))

	validator := service.NewValidator()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	linodeRepo := repository.NewLinodeRepository(db)
	transactor := repository.NewTransactor(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	userService := service.NewUserService(userRepo, transactor, validator)
	linodeService := service.NewLinodeService(linodeRepo, validator)

	// Initialize handlers
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	linodeHandler := handlers.NewLinodeHandler(linodeService)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)
	healthHandler := handlers.NewHealthHandler(db, cfg.Version)

	// Operational endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	// Static assets
	router.GET("/", handlers.Dispatch(staticHandler.Index))
	router.GET("/favicon.ico", handlers.Dispatch(staticHandler.Favicon))
	router.GET("/robots.txt", handlers.Dispatch(staticHandler.Robots))
	router.GET("/static/*filepath", handlers.Dispatch(staticHandler.Asset))

	api := router.Group("/api")
	{
		api.GET("/orgs", handlers.Dispatch(organizationHandler.ListOrganizations))
		api.GET("/user/:id", handlers.Dispatch(userHandler.GetUser))

		exists := api.Group("/exists")
		{
			exists.GET("/org/:name", handlers.Dispatch(organizationHandler.OrganizationExists))
			exists.GET("/user/:email", handlers.Dispatch(userHandler.UserExists))
			exists.GET("/linode/:name", handlers.Dispatch(linodeHandler.LinodeExists))
		}

		create := api.Group("/create")
		{
			create.POST("/org", handlers.Dispatch(organizationHandler.CreateOrganization))
			create.POST("/user", handlers.Dispatch(userHandler.CreateUser))
			create.POST("/linode", handlers.Dispatch(linodeHandler.CreateLinode))
		}
	}

	router.NoRoute(handlers.Dispatch(handlers.NotFound))

	return router
}

// Handler wraps the router with CORS for the configured origins and response compression
func Handler(router *gin.Engine, cfg *config.Config) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	return gzhttp.GzipHandler(c.Handler(router))
}
