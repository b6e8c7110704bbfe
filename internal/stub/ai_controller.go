package stub

import (
	"errors"

	"studywise-client/internal/dto"
	"studywise-client/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

const (
	healthMessage = "StudyWise API is running"
	apiVersion    = "1.0.0"
)

type IAIController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	CloudStatus(ctx *fiber.Ctx) error
	SetMode(ctx *fiber.Ctx) error
	GetMode(ctx *fiber.Ctx) error
}

type aiController struct {
	service IStudyService
}

func NewAIController(service IStudyService) IAIController {
	return &aiController{service: service}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)

	h := r.Group("/ai")
	h.Get("/status", c.Status)
	h.Get("/cloud-status", c.CloudStatus)
	h.Post("/mode", c.SetMode)
	h.Get("/mode/:userId", c.GetMode)
}

func (c *aiController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthStatus{Status: "healthy", Message: healthMessage, Version: apiVersion})
}

func (c *aiController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.OllamaStatus(ctx.UserContext()))
}

func (c *aiController) CloudStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.CloudStatus(ctx.UserContext()))
}

func (c *aiController) SetMode(ctx *fiber.Ctx) error {
	var req dto.SetAIModeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	switch req.Mode {
	case modeFree, modeOllama, modeCloud:
	default:
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid mode. Must be: free, ollama, or cloud")
	}
	if req.UserId == "" {
		req.UserId = "default"
	}

	res, err := c.service.SetAIMode(ctx.UserContext(), &req)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && res != nil {
			saved := false
			return ctx.Status(se.Code).JSON(serverutils.ErrorBody{
				Error:    se.Message,
				Fallback: res.Fallback,
				Saved:    &saved,
			})
		}
		return respondError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *aiController) GetMode(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.AIMode(ctx.UserContext(), ctx.Params("userId")))
}
