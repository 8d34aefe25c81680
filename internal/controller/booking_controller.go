package controller

import (
	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookingController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Confirm(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Receipt(ctx *fiber.Ctx) error

	// Quick bookings
	CreateQuick(ctx *fiber.Ctx) error
	ListQuick(ctx *fiber.Ctx) error
	GetQuick(ctx *fiber.Ctx) error
	UpdateQuick(ctx *fiber.Ctx) error
	DeleteQuick(ctx *fiber.Ctx) error
	QuickReceipt(ctx *fiber.Ctx) error
	ConvertQuick(ctx *fiber.Ctx) error
}

type bookingController struct {
	bookings service.IBookingService
	quick    service.IQuickBookingService
	auth     fiber.Handler
}

func NewBookingController(bookings service.IBookingService, quick service.IQuickBookingService, auth fiber.Handler) IBookingController {
	return &bookingController{bookings: bookings, quick: quick, auth: auth}
}

func (c *bookingController) RegisterRoutes(r fiber.Router) {
	q := r.Group("/quick-bookings", c.auth)
	q.Post("/", c.CreateQuick)
	q.Get("/", c.ListQuick)
	q.Get("/:id", c.GetQuick)
	q.Put("/:id", c.UpdateQuick)
	q.Delete("/:id", c.DeleteQuick)
	q.Get("/:id/receipt", c.QuickReceipt)
	q.Post("/:id/convert", c.ConvertQuick)

	h := r.Group("/bookings", c.auth)
	h.Post("/", c.Create)
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/confirm", c.Confirm)
	h.Post("/:id/cancel", c.Cancel)
	h.Post("/:id/complete", c.Complete)
	h.Get("/:id/receipt", c.Receipt)
}

func (c *bookingController) Create(ctx *fiber.Ctx) error {
	var req dto.BookingRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.bookings.Create(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Booking created successfully", res))
}

func (c *bookingController) List(ctx *fiber.Ctx) error {
	var q dto.BookingListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.bookings.List(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bookings", res))
}

func (c *bookingController) Get(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.bookings.Get(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Booking", res))
}

func (c *bookingController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.BookingRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.bookings.Update(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Booking updated successfully", res))
}

func (c *bookingController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.bookings.Delete(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Booking deleted successfully", nil))
}

func (c *bookingController) transition(ctx *fiber.Ctx, message string, fn func(ctx *fiber.Ctx, userId, id uuid.UUID) (*dto.BookingResponse, error)) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := fn(ctx, serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *bookingController) Confirm(ctx *fiber.Ctx) error {
	return c.transition(ctx, "Booking confirmed", func(ctx *fiber.Ctx, userId, id uuid.UUID) (*dto.BookingResponse, error) {
		return c.bookings.Confirm(ctx.UserContext(), userId, id)
	})
}

func (c *bookingController) Cancel(ctx *fiber.Ctx) error {
	return c.transition(ctx, "Booking cancelled", func(ctx *fiber.Ctx, userId, id uuid.UUID) (*dto.BookingResponse, error) {
		return c.bookings.Cancel(ctx.UserContext(), userId, id)
	})
}

func (c *bookingController) Complete(ctx *fiber.Ctx) error {
	return c.transition(ctx, "Booking completed", func(ctx *fiber.Ctx, userId, id uuid.UUID) (*dto.BookingResponse, error) {
		return c.bookings.Complete(ctx.UserContext(), userId, id)
	})
}

func (c *bookingController) Receipt(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	file, err := c.bookings.Receipt(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return sendFile(ctx, file, "inline")
}

func (c *bookingController) CreateQuick(ctx *fiber.Ctx) error {
	var req dto.QuickBookingRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.quick.Create(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Quick booking created successfully", res))
}

func (c *bookingController) ListQuick(ctx *fiber.Ctx) error {
	var q dto.QuickBookingListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.quick.List(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Quick bookings", res))
}

func (c *bookingController) GetQuick(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.quick.Get(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Quick booking", res))
}

func (c *bookingController) UpdateQuick(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.QuickBookingRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.quick.Update(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Quick booking updated successfully", res))
}

func (c *bookingController) DeleteQuick(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.quick.Delete(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Quick booking deleted successfully", nil))
}

func (c *bookingController) QuickReceipt(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	file, err := c.quick.Receipt(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return sendFile(ctx, file, "inline")
}

// ConvertQuick passes the raw body through: its fields override the values
// copied from the quick booking.
func (c *bookingController) ConvertQuick(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.quick.Convert(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, ctx.Body())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse(res.Message, res))
}
