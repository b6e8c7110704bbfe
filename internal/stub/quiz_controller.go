package stub

import (
	"studywise-client/internal/dto"
	"studywise-client/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

const defaultQuizQuestions = 5

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type quizController struct {
	service IStudyService
}

func NewQuizController(service IStudyService) IQuizController {
	return &quizController{service: service}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quiz")
	h.Post("/generate", c.Generate)
	h.Post("/submit", c.Submit)
	h.Get("/history/:email", c.History)
}

func (c *quizController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	if req.TopicId == "" {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "topic_id required")
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = defaultQuizQuestions
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GenerateQuiz(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *quizController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitQuiz(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *quizController) History(ctx *fiber.Ctx) error {
	history := c.service.QuizHistory(ctx.UserContext(), ctx.Params("email"))
	return ctx.JSON(fiber.Map{"history": history})
}
