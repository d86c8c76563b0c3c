package routes

import (
	"net/http"
	"time"

	_ "github.com/Vitalis058/tumaini-next-sub000/docs"
	"github.com/Vitalis058/tumaini-next-sub000/internal/app/controllers"
	"github.com/Vitalis058/tumaini-next-sub000/internal/app/middleware"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services/container"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/cache"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the engine around an initialised service container.
func SetupRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	cfg := serviceContainer.GetService("config").(*config.Config)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	// Credentials (the session cookie) require an explicit origin list.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{middleware.CacheStatusHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer, cfg)
	return r
}

func registerRoutes(r *gin.Engine, container *container.ServiceContainer, cfg *config.Config) {
	api := r.Group("/api")
	registerPublicRoutes(api, container, cfg)
	registerAuthenticatedRoutes(api, container, cfg)
}

func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer, cfg *config.Config) {
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	api.POST("/admin/login", controllers.HandleAuthFunc(container, "login"))
	api.POST("/admin/logout", controllers.HandleAuthFunc(container, "logout"))

	tours := api.Group("/tours", middleware.NoCache())
	tours.GET("", controllers.HandleTourFunc(container, "getTours"))
	tours.GET("/:id", controllers.HandleTourFunc(container, "getTour"))

	snapshots := container.GetService("snapshots").(cache.SnapshotStore)
	site := api.Group("/site")
	site.GET("/home",
		middleware.Snapshot(snapshots, cfg.SnapshotTTL, middleware.StaticTags(cache.RouteHome, cache.DataTours)),
		controllers.HandleSiteFunc(container, "home"))
	site.GET("/tours",
		middleware.Snapshot(snapshots, cfg.SnapshotTTL, middleware.StaticTags(cache.RouteTourList, cache.DataTours)),
		controllers.HandleSiteFunc(container, "tours"))
	site.GET("/tours/:id",
		middleware.Snapshot(snapshots, cfg.SnapshotTTL, controllers.SiteTourTags),
		controllers.HandleSiteFunc(container, "tourDetail"))

	api.POST("/bookings", controllers.HandleInquiryFunc(container, "booking"))
	api.POST("/contact", controllers.HandleInquiryFunc(container, "contact"))
}

func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer, cfg *config.Config) {
	jwtService := container.GetService("jwt").(services.InterfaceJWTService)
	auth := middleware.AuthenticateAdmin(jwtService, cfg.CookieName)

	api.GET("/admin/verify", auth, controllers.HandleAuthFunc(container, "verify"))

	tours := api.Group("/tours", middleware.NoCache(), auth)
	tours.POST("", controllers.HandleTourFunc(container, "createTour"))
	tours.PUT("/:id", controllers.HandleTourFunc(container, "updateTour"))
	tours.DELETE("/:id", controllers.HandleTourFunc(container, "deleteTour"))

	upload := api.Group("/upload", auth)
	upload.POST("", controllers.HandleUploadFunc(container, "upload"))
	upload.DELETE("", controllers.HandleUploadFunc(container, "delete"))
}
