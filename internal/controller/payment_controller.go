package controller

import (
	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"
	"travel-backoffice-be/pkg/access"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	MyHistory(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	BulkUpdate(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
	Modes(ctx *fiber.Ctx) error
	Statuses(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
	auth    fiber.Handler
}

func NewPaymentController(service service.IPaymentService, auth fiber.Handler) IPaymentController {
	return &paymentController{service: service, auth: auth}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	superadmin := serverutils.RequireRoles(access.RoleSuperAdmin)

	h := r.Group("/payments", c.auth)
	h.Get("/modes", c.Modes)
	h.Get("/statuses", c.Statuses)
	h.Get("/dashboard", c.Dashboard)
	h.Get("/my-history", c.MyHistory)
	h.Post("/bulk-update", superadmin, c.BulkUpdate)

	h.Post("/", c.Create)
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
	h.Patch("/:id/status", superadmin, c.UpdateStatus)
}

func (c *paymentController) Create(ctx *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Payment recorded successfully", res))
}

func (c *paymentController) List(ctx *fiber.Ctx) error {
	var q dto.PaymentListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.service.List(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payments", res))
}

func (c *paymentController) Get(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.Get(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment", res))
}

func (c *paymentController) MyHistory(ctx *fiber.Ctx) error {
	var q dto.PaymentListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.service.MyHistory(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment history", res))
}

func (c *paymentController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.PaymentStatusRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.UpdateStatus(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment status updated", res))
}

func (c *paymentController) BulkUpdate(ctx *fiber.Ctx) error {
	var req dto.BulkPaymentStatusRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.BulkUpdateStatus(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payments updated", res))
}

func (c *paymentController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.Dashboard(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment dashboard", res))
}

func (c *paymentController) Modes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Payment modes", c.service.Modes()))
}

func (c *paymentController) Statuses(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Payment statuses", c.service.Statuses()))
}
