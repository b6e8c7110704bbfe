package stub

import (
	"studywise-client/internal/dto"
	"studywise-client/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	service IStudyService
}

func NewNoteController(service IStudyService) INoteController {
	return &noteController{service: service}
}

// RegisterRoutes serves the list both as /notes?email= and /notes/:email.
func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Get("/:email", c.List)
	h.Post("", c.Save)
	h.Delete("/:id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	email := ctx.Params("email", ctx.Query("email"))
	if email == "" {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Email parameter required")
	}
	return ctx.JSON(fiber.Map{"notes": c.service.Notes(ctx.UserContext(), email)})
}

func (c *noteController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	note, err := c.service.SaveNote(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(dto.SaveNoteResponse{Success: true, Note: note})
}

// Delete takes no body and succeeds whether or not the note existed.
func (c *noteController) Delete(ctx *fiber.Ctx) error {
	c.service.DeleteNote(ctx.UserContext(), ctx.Params("id"))
	return ctx.JSON(dto.Ack{Success: true, Deleted: true})
}
