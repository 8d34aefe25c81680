package controller

import (
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEnquiryController interface {
	RegisterRoutes(r fiber.Router)

	CreateKey(ctx *fiber.Ctx) error
	ListKeys(ctx *fiber.Ctx) error
	ToggleKey(ctx *fiber.Ctx) error
	DeleteKey(ctx *fiber.Ctx) error

	ListContacts(ctx *fiber.Ctx) error
	GetContact(ctx *fiber.Ctx) error
	DeleteContact(ctx *fiber.Ctx) error

	CreateEnquiry(ctx *fiber.Ctx) error
	ListEnquiries(ctx *fiber.Ctx) error
	GetEnquiry(ctx *fiber.Ctx) error
	DeleteEnquiry(ctx *fiber.Ctx) error

	// API-key gated
	SubmitContact(ctx *fiber.Ctx) error
	ExternalPackages(ctx *fiber.Ctx) error
	ExternalPackage(ctx *fiber.Ctx) error
	ValidateKey(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type enquiryController struct {
	enquiries service.IEnquiryService
	packages  service.IPackageService
	auth      fiber.Handler
	apiKey    fiber.Handler
}

func NewEnquiryController(
	enquiries service.IEnquiryService,
	packages service.IPackageService,
	auth fiber.Handler,
	apiKey fiber.Handler,
) IEnquiryController {
	return &enquiryController{
		enquiries: enquiries,
		packages:  packages,
		auth:      auth,
		apiKey:    apiKey,
	}
}

func (c *enquiryController) RegisterRoutes(r fiber.Router) {
	keys := r.Group("/api-keys", c.auth)
	keys.Post("/", c.CreateKey)
	keys.Get("/", c.ListKeys)
	keys.Post("/:id/toggle", c.ToggleKey)
	keys.Delete("/:id", c.DeleteKey)

	contacts := r.Group("/contacts", c.auth)
	contacts.Get("/", c.ListContacts)
	contacts.Get("/:id", c.GetContact)
	contacts.Delete("/:id", c.DeleteContact)

	enq := r.Group("/enquiries", c.auth)
	enq.Post("/", c.CreateEnquiry)
	enq.Get("/", c.ListEnquiries)
	enq.Get("/:id", c.GetEnquiry)
	enq.Delete("/:id", c.DeleteEnquiry)

	ext := r.Group("/external")
	ext.Get("/health", c.Health)
	ext.Post("/contact", c.apiKey, c.SubmitContact)
	ext.Get("/packages", c.apiKey, c.ExternalPackages)
	ext.Get("/packages/:id", c.apiKey, c.ExternalPackage)
	ext.Get("/validate-key", c.apiKey, c.ValidateKey)
}

func (c *enquiryController) CreateKey(ctx *fiber.Ctx) error {
	var req dto.APIKeyRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.enquiries.CreateKey(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("API key created successfully", res))
}

func (c *enquiryController) ListKeys(ctx *fiber.Ctx) error {
	res, err := c.enquiries.ListKeys(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("API keys", res))
}

func (c *enquiryController) ToggleKey(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.enquiries.ToggleKey(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("API key updated", res))
}

func (c *enquiryController) DeleteKey(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.enquiries.DeleteKey(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("API key deleted", nil))
}

func (c *enquiryController) ListContacts(ctx *fiber.Ctx) error {
	var q dto.ContactListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.enquiries.ListContacts(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact submissions", res))
}

func (c *enquiryController) GetContact(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.enquiries.GetContact(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact submission", res))
}

func (c *enquiryController) DeleteContact(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.enquiries.DeleteContact(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Contact submission deleted", nil))
}

func (c *enquiryController) CreateEnquiry(ctx *fiber.Ctx) error {
	var req dto.EnquiryRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.enquiries.CreateEnquiry(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Enquiry created successfully", res))
}

func (c *enquiryController) ListEnquiries(ctx *fiber.Ctx) error {
	var q dto.EnquiryListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.enquiries.ListEnquiries(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Enquiries", res))
}

func (c *enquiryController) GetEnquiry(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.enquiries.GetEnquiry(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Enquiry", res))
}

func (c *enquiryController) DeleteEnquiry(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.enquiries.DeleteEnquiry(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Enquiry deleted", nil))
}

func (c *enquiryController) SubmitContact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.enquiries.SubmitContact(ctx.UserContext(), serverutils.CurrentAPIKey(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Thank you for contacting us", res))
}

func (c *enquiryController) ExternalPackages(ctx *fiber.Ctx) error {
	var q dto.PackageListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.packages.ListForKey(ctx.UserContext(), serverutils.CurrentAPIKey(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Packages", res))
}

func (c *enquiryController) ExternalPackage(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.packages.GetForKey(ctx.UserContext(), serverutils.CurrentAPIKey(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package", res))
}

func (c *enquiryController) ValidateKey(ctx *fiber.Ctx) error {
	res, err := c.enquiries.ValidateKey(ctx.UserContext(), serverutils.CurrentAPIKey(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("API key is valid", res))
}

func (c *enquiryController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", dto.HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()}))
}
