package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/config"
	"github.com/geoapi-pt/internal/delivery/http/handler"
	"github.com/geoapi-pt/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	gpsHandler      *handler.GPSHandler
	postalHandler   *handler.PostalHandler
	registryHandler *handler.RegistryHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	gpsHandler *handler.GPSHandler,
	postalHandler *handler.PostalHandler,
	registryHandler *handler.RegistryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "GeoAPI PT",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		gpsHandler:      gpsHandler,
		postalHandler:   postalHandler,
		registryHandler: registryHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check
	s.app.Get("/health", s.registryHandler.Health)

	// GPS resolution: /gps/38.7,-9.1 и /gps?lat=38.7&lon=-9.1
	s.app.Get("/gps", s.gpsHandler.ResolveQuery)
	s.app.Get("/gps/:coords", s.gpsHandler.Resolve)

	// Postal codes: полный CP4-CP3 или только CP4
	s.app.Get("/cp/:code", s.postalHandler.Lookup)
	s.app.Get("/codigo_postal/:code", s.postalHandler.Lookup)

	// Administrative registry
	s.app.Get("/distritos", s.registryHandler.Distritos)
	s.app.Get("/distrito/:name", s.registryHandler.Distrito)
	s.app.Get("/municipio/:name", s.registryHandler.Municipio)
	s.app.Get("/freguesia/:name", s.registryHandler.Freguesia)
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

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
