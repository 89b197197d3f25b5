package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/perumahan-service/internal/config"
	"github.com/perumahan-service/internal/delivery/http/handler"
	"github.com/perumahan-service/internal/delivery/http/middleware"
	"github.com/perumahan-service/internal/pkg/errors"
	"github.com/perumahan-service/internal/pkg/metrics"
	"github.com/perumahan-service/internal/pkg/utils"
	"github.com/perumahan-service/web"
)

// bodyLimit - предел тела запроса, в основном из-за загрузки фото
const bodyLimit = 10 * 1024 * 1024

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	pageHandler      *handler.PageHandler
	perumahanHandler *handler.PerumahanHandler
	adminHandler     *handler.AdminHandler
	healthHandler    *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	pageHandler *handler.PageHandler,
	perumahanHandler *handler.PerumahanHandler,
	adminHandler *handler.AdminHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Perumahan Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		pageHandler:      pageHandler,
		perumahanHandler: perumahanHandler,
		adminHandler:     adminHandler,
		healthHandler:    healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/health", s.healthHandler.Health)
	s.app.Get("/ready", s.healthHandler.Ready)
	s.app.Get("/metrics", metrics.Handler())

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Статика страниц и загруженные фотографии
	s.app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))
	// MEDIA_URL может указывать на CDN, тогда фото раздаёт не сервис
	if strings.HasPrefix(s.config.Media.URL, "/") {
		s.app.Static(strings.TrimSuffix(s.config.Media.URL, "/"), s.config.Media.Root, fiber.Static{
			ByteRange: true,
			MaxAge:    86400,
		})
	}

	// HTML
	s.app.Get("/", s.pageHandler.Home)
	s.app.Get("/perumahan/", s.pageHandler.List)
	s.app.Get("/perumahan/:slug/", s.pageHandler.Detail)

	// Public API
	s.app.Get("/api/perumahan.geojson", middleware.ETag(), s.perumahanHandler.GeoJSON)

	api := s.app.Group("/api/v1")
	api.Get("/perumahan/:slug", s.perumahanHandler.GetBySlug)

	// Admin API
	admin := s.app.Group("/admin/api", middleware.AdminAuth(s.config.Admin))
	admin.Get("/perumahan", s.adminHandler.List)
	admin.Post("/perumahan", s.adminHandler.Create)
	admin.Get("/perumahan/:id", s.adminHandler.Get)
	admin.Put("/perumahan/:id", s.adminHandler.Update)
	admin.Delete("/perumahan/:id", s.adminHandler.Delete)
	admin.Get("/perumahan/:id/events", s.adminHandler.History)

	s.app.Use(s.notFound)
}

// notFound - API получает JSON, остальное HTML-страницу 404
func (s *Server) notFound(c *fiber.Ctx) error {
	path := c.Path()
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/admin/") {
		return utils.SendError(c, errors.New("NOT_FOUND", "Route not found", fiber.StatusNotFound))
	}
	return s.pageHandler.NotFound(c)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами, в формате utils.ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := utils.AsAppError(err)

		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
		}

		return utils.SendError(c, appErr)
	}
}
