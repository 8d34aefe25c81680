package controller

import (
	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVisaController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
	Types(ctx *fiber.Ctx) error
	Statuses(ctx *fiber.Ctx) error

	UploadDocument(ctx *fiber.Ctx) error
	ListDocuments(ctx *fiber.Ctx) error
	DownloadDocument(ctx *fiber.Ctx) error
	DeleteDocument(ctx *fiber.Ctx) error
	VerifyDocument(ctx *fiber.Ctx) error
}

type visaController struct {
	service service.IVisaService
	auth    fiber.Handler
}

func NewVisaController(service service.IVisaService, auth fiber.Handler) IVisaController {
	return &visaController{service: service, auth: auth}
}

func (c *visaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/visa", c.auth)
	h.Get("/types", c.Types)
	h.Get("/statuses", c.Statuses)
	h.Get("/dashboard", c.Dashboard)

	h.Post("/applications", c.Create)
	h.Get("/applications", c.List)
	h.Get("/applications/:id", c.Get)
	h.Put("/applications/:id", c.Update)
	h.Delete("/applications/:id", c.Delete)
	h.Post("/applications/:id/submit", c.Submit)
	h.Patch("/applications/:id/status", c.UpdateStatus)

	h.Post("/applications/:id/documents", c.UploadDocument)
	h.Get("/applications/:id/documents", c.ListDocuments)
	h.Get("/applications/:id/documents/:docId", c.DownloadDocument)
	h.Delete("/applications/:id/documents/:docId", c.DeleteDocument)
	h.Post("/applications/:id/documents/:docId/verify", c.VerifyDocument)
}

func (c *visaController) Create(ctx *fiber.Ctx) error {
	var req dto.VisaApplicationRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Visa application created successfully", res))
}

func (c *visaController) List(ctx *fiber.Ctx) error {
	var q dto.VisaListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.service.List(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visa applications", res))
}

func (c *visaController) Get(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.Get(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visa application", res))
}

func (c *visaController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.VisaApplicationRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Update(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visa application updated successfully", res))
}

func (c *visaController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Visa application deleted successfully", nil))
}

func (c *visaController) Submit(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.SubmitVisaRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Submit(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visa application submitted successfully", res))
}

func (c *visaController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.VisaStatusRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.UpdateStatus(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visa status updated", res))
}

func (c *visaController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.Dashboard(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visa dashboard", res))
}

func (c *visaController) Types(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Visa types", c.service.Types()))
}

func (c *visaController) Statuses(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Visa statuses", c.service.Statuses()))
}

func (c *visaController) UploadDocument(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UploadVisaDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	file, err := formFile(ctx, "file", true)
	if err != nil {
		return err
	}
	res, err := c.service.UploadDocument(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req, file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Document uploaded successfully", res))
}

func (c *visaController) ListDocuments(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.ListDocuments(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visa documents", res))
}

func (c *visaController) DownloadDocument(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	docId, err := serverutils.ParamUUID(ctx, "docId")
	if err != nil {
		return err
	}
	file, err := c.service.DownloadDocument(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, docId)
	if err != nil {
		return err
	}
	return sendFile(ctx, file, "attachment")
}

func (c *visaController) DeleteDocument(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	docId, err := serverutils.ParamUUID(ctx, "docId")
	if err != nil {
		return err
	}
	if err := c.service.DeleteDocument(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, docId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Document deleted successfully", nil))
}

func (c *visaController) VerifyDocument(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	docId, err := serverutils.ParamUUID(ctx, "docId")
	if err != nil {
		return err
	}
	var req dto.VerifyDocumentRequest
	if len(ctx.Body()) > 0 {
		if err := bindJSON(ctx, &req); err != nil {
			return err
		}
	}
	res, err := c.service.VerifyDocument(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, docId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document verification updated", res))
}
