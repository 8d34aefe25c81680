package controller

import (
	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const secretKeyHeader = "X-Secret-Key"

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	CreateDemo(ctx *fiber.Ctx) error
	CreateServiceRequest(ctx *fiber.Ctx) error
	ListDemos(ctx *fiber.Ctx) error
	ListServiceRequests(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboard service.IDashboardService
	platform  service.IPlatformService
	auth      fiber.Handler
}

func NewDashboardController(dashboard service.IDashboardService, platform service.IPlatformService, auth fiber.Handler) IDashboardController {
	return &dashboardController{dashboard: dashboard, platform: platform, auth: auth}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard/stats", c.auth, c.Stats)

	p := r.Group("/platform")
	p.Post("/demo-requests", c.requireSecret, c.CreateDemo)
	p.Post("/service-requests", c.requireSecret, c.CreateServiceRequest)
	p.Get("/demo-requests", c.auth, c.ListDemos)
	p.Get("/service-requests", c.auth, c.ListServiceRequests)
}

func (c *dashboardController) requireSecret(ctx *fiber.Ctx) error {
	if err := c.platform.VerifySecret(ctx.Get(secretKeyHeader)); err != nil {
		return err
	}
	return ctx.Next()
}

func (c *dashboardController) Stats(ctx *fiber.Ctx) error {
	res, err := c.dashboard.Stats(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *dashboardController) CreateDemo(ctx *fiber.Ctx) error {
	var req dto.PlatformDemoRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.platform.CreateDemo(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Demo request received", res))
}

func (c *dashboardController) CreateServiceRequest(ctx *fiber.Ctx) error {
	var req dto.PlatformServiceRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.platform.CreateServiceRequest(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Service request received", res))
}

func (c *dashboardController) ListDemos(ctx *fiber.Ctx) error {
	res, err := c.platform.ListDemos(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Demo requests", res))
}

func (c *dashboardController) ListServiceRequests(ctx *fiber.Ctx) error {
	res, err := c.platform.ListServiceRequests(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service requests", res))
}
