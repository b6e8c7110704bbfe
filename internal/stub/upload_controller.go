package stub

import (
	"studywise-client/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	UploadSyllabus(ctx *fiber.Ctx) error
	UploadPYQ(ctx *fiber.Ctx) error
	Uploads(ctx *fiber.Ctx) error
	Topics(ctx *fiber.Ctx) error
}

type uploadController struct {
	service IStudyService
}

func NewUploadController(service IStudyService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload")
	h.Post("/syllabus", c.UploadSyllabus)
	h.Post("/pyq", c.UploadPYQ)
	h.Get("/uploads/:email", c.Uploads)
	h.Get("/topics/:uploadId", c.Topics)
}

func (c *uploadController) UploadSyllabus(ctx *fiber.Ctx) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "No file uploaded. Please select a PDF file.")
	}
	content, err := readFormFile(fh)
	if err != nil {
		return err
	}

	res, err := c.service.UploadSyllabus(ctx.UserContext(), SyllabusInput{
		Email:    ctx.FormValue("email"),
		Name:     ctx.FormValue("name"),
		Subject:  ctx.FormValue("subject"),
		Mode:     ctx.FormValue("ai_mode", modeFree),
		Filename: fh.Filename,
		Content:  content,
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *uploadController) UploadPYQ(ctx *fiber.Ctx) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "No file uploaded")
	}
	content, err := readFormFile(fh)
	if err != nil {
		return err
	}

	res, err := c.service.UploadPYQ(ctx.UserContext(), ctx.FormValue("upload_id"), fh.Filename, content)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *uploadController) Uploads(ctx *fiber.Ctx) error {
	uploads := c.service.Uploads(ctx.UserContext(), ctx.Params("email"))
	return ctx.JSON(fiber.Map{"uploads": uploads})
}

func (c *uploadController) Topics(ctx *fiber.Ctx) error {
	topics := c.service.Topics(ctx.UserContext(), ctx.Params("uploadId"))
	return ctx.JSON(fiber.Map{"topics": topics})
}
