package controller

import (
	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Statuses(ctx *fiber.Ctx) error
}

type leadController struct {
	service service.ILeadService
	auth    fiber.Handler
}

func NewLeadController(service service.ILeadService, auth fiber.Handler) ILeadController {
	return &leadController{service: service, auth: auth}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/leads", c.auth)
	h.Get("/statuses", c.Statuses)
	h.Post("/", c.Create)
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Patch("/:id/status", c.UpdateStatus)
}

func (c *leadController) Create(ctx *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Lead created successfully", res))
}

func (c *leadController) List(ctx *fiber.Ctx) error {
	var q dto.LeadListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.service.List(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Leads", res))
}

func (c *leadController) Get(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.Get(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Lead", res))
}

func (c *leadController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.LeadRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Update(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Lead updated successfully", res))
}

func (c *leadController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Lead deleted successfully", nil))
}

func (c *leadController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.LeadStatusRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.UpdateStatus(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Lead status updated", res))
}

func (c *leadController) Statuses(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Lead statuses", c.service.Statuses()))
}
