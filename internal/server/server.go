package server

import (
	"studywise-client/internal/bootstrap"
	"studywise-client/internal/config"
	"studywise-client/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Server is the local StudyWise backend used for development and for the
// client's end-to-end tests.
type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.StubContainer
}

func New(cfg *config.Config, container *bootstrap.StubContainer) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             32 * 1024 * 1024, // 30MB PDFs plus form overhead
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Stub.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("stub", "server is running", map[string]interface{}{
		"url": "http://localhost:" + s.cfg.Stub.Port + "/api",
	})
	return s.app.Listen(":" + s.cfg.Stub.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.StubContainer) {
	api := app.Group("/api")

	c.AIController.RegisterRoutes(api)
	c.UploadController.RegisterRoutes(api)
	c.QuizController.RegisterRoutes(api)
	c.PlanController.RegisterRoutes(api)
	c.DashboardController.RegisterRoutes(api)
	c.TimetableController.RegisterRoutes(api)
	c.NoteController.RegisterRoutes(api)

	app.Use(func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
	})
}
