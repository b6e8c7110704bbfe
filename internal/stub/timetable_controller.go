package stub

import (
	"studywise-client/internal/dto"
	"studywise-client/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type ITimetableController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type timetableController struct {
	service IStudyService
}

func NewTimetableController(service IStudyService) ITimetableController {
	return &timetableController{service: service}
}

func (c *timetableController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/timetable")
	h.Get("", c.List)
	h.Post("", c.Add)
	h.Delete("/:id", c.Delete)
}

func (c *timetableController) List(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Email parameter required")
	}
	return ctx.JSON(fiber.Map{"classes": c.service.Timetable(ctx.UserContext(), email)})
}

func (c *timetableController) Add(ctx *fiber.Ctx) error {
	var req dto.AddTimetableRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	if req.DayOfWeek != nil && (*req.DayOfWeek < 0 || *req.DayOfWeek > 6) {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "day_of_week must be 0-6")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	entry, err := c.service.AddTimetableEntry(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(dto.AddTimetableResponse{Success: true, Entry: entry})
}

func (c *timetableController) Delete(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Email parameter required")
	}
	if err := c.service.DeleteTimetableEntry(ctx.UserContext(), email, ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(dto.Ack{Success: true, Deleted: true})
}
