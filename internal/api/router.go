package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-api/internal/api/handler"
	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/core/ports"
	httphandlers "portfolio-api/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs wired in. Redis and
// Mongo are nil unless the deployment uses them; the readiness probe
// skips absent dependencies.
type Dependencies struct {
	Projects ports.ProjectService
	Content  handler.ContentLister
	Auth     ports.AuthService
	Verifier ports.TokenVerifier
	Uploads  ports.UploadService

	Logger         zerolog.Logger
	AllowedOrigins []string
	SecureCookies  bool
	DataDir        string
	UploadsDir     string
	UploadMaxBytes int64

	Redis *redis.Client
	Mongo *mongo.Database
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))
	// Explicit origin allow-list; credentials allowed for the admin cookie.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Handlers ---
	projectHandler := handler.NewProjectHandler(deps.Projects)
	adminHandler := handler.NewAdminProjectHandler(deps.Projects)
	contentHandler := handler.NewContentHandler(deps.Content)
	contactHandler := handler.NewContactHandler(deps.Logger)
	uploadHandler := handler.NewUploadHandler(deps.Uploads)
	authHandler := handler.NewAuthHandler(deps.Auth, deps.SecureCookies)

	requireAuth := middleware.Auth(deps.Verifier)
	requireAdmin := middleware.RequireAdmin()

	// --- Public API ---
	e.GET("/api/projects", projectHandler.List)
	e.GET("/api/projects/:id", projectHandler.Get)
	e.GET("/api/experiences", contentHandler.Experiences)
	e.GET("/api/skills", contentHandler.Skills)
	e.POST("/api/contact", contactHandler.Submit)

	// --- Auth routes ---
	e.POST("/admin/login", authHandler.Login)
	e.POST("/admin/logout", authHandler.Logout)
	e.GET("/admin/status", authHandler.Status, requireAuth, requireAdmin)

	// --- Admin API ---
	admin := e.Group("/api/admin", requireAuth, requireAdmin)
	admin.GET("/projects", adminHandler.List)
	admin.POST("/projects", adminHandler.Create)
	admin.PUT("/projects/:id", adminHandler.Update)
	admin.DELETE("/projects/:id", adminHandler.Delete)
	admin.GET("/stats", adminHandler.Stats)
	admin.POST("/reorder", adminHandler.Reorder)
	// Multipart overhead gets some slack over the per-file cap, which the
	// upload service enforces exactly.
	admin.POST("/upload", uploadHandler.Upload,
		echomiddleware.BodyLimit(fmt.Sprintf("%dK", (deps.UploadMaxBytes+(1<<20))/1024)))

	// --- Static uploads ---
	e.Static("/uploads", deps.UploadsDir)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	readinessHandler := httphandlers.NewReadinessHandler(deps.DataDir, deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
