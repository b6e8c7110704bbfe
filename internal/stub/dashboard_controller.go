package stub

import (
	"studywise-client/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	Overview(ctx *fiber.Ctx) error
	Topics(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service IStudyService
}

func NewDashboardController(service IStudyService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard")
	h.Get("/stats/:email", c.Stats)
	h.Get("/overview/:email", c.Overview)
	h.Get("/topics/:uploadId", c.Topics)
}

func (c *dashboardController) Stats(ctx *fiber.Ctx) error {
	stats := c.service.DashboardStats(ctx.UserContext(), ctx.Params("email"))
	return ctx.JSON(dto.DashboardStatsResponse{Stats: stats})
}

// Overview answers {"overview":{}} for unknown users.
func (c *dashboardController) Overview(ctx *fiber.Ctx) error {
	email := ctx.Params("email")
	overview := c.service.DashboardOverview(ctx.UserContext(), email)
	if overview.RecentUploads == nil && overview.RecentQuizzes == nil && overview.UpcomingTopics == nil {
		return ctx.JSON(fiber.Map{"overview": fiber.Map{}})
	}
	return ctx.JSON(dto.DashboardOverviewResponse{Overview: overview})
}

func (c *dashboardController) Topics(ctx *fiber.Ctx) error {
	res := c.service.TopicsWithProgress(ctx.UserContext(), ctx.Params("uploadId"), ctx.Query("email"))
	return ctx.JSON(res)
}
