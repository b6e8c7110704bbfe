package stub

import (
	"studywise-client/internal/dto"
	"studywise-client/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Latest(ctx *fiber.Ctx) error
	All(ctx *fiber.Ctx) error
}

type planController struct {
	service IStudyService
}

func NewPlanController(service IStudyService) IPlanController {
	return &planController{service: service}
}

// RegisterRoutes registers /plan/all/:email ahead of /plan/:email.
func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plan")
	h.Post("/generate", c.Generate)
	h.Get("/all/:email", c.All)
	h.Get("/:email", c.Latest)
}

func (c *planController) Generate(ctx *fiber.Ctx) error {
	var req dto.GeneratePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.FailedResponse("Invalid JSON body", ""))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.FailedResponse(err.Error(), ""))
	}
	if req.HoursPerDay < 0 || req.HoursPerDay > 24 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.FailedResponse("hours_per_day must be between 1 and 24", ""))
	}

	res, err := c.service.GeneratePlan(ctx.UserContext(), &req)
	if err != nil {
		return respondFailed(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *planController) Latest(ctx *fiber.Ctx) error {
	res, err := c.service.LatestPlan(ctx.UserContext(), ctx.Params("email"))
	if err != nil {
		return respondFailed(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *planController) All(ctx *fiber.Ctx) error {
	plans, err := c.service.AllPlans(ctx.UserContext(), ctx.Params("email"))
	if err != nil {
		return respondFailed(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "plans": plans, "count": len(plans)})
}
