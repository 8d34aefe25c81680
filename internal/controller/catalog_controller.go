package controller

import (
	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ICatalogController serves packages and poster generation.
type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	CreatePackage(ctx *fiber.Ctx) error
	ListPackages(ctx *fiber.Ctx) error
	GetPackage(ctx *fiber.Ctx) error
	UpdatePackage(ctx *fiber.Ctx) error
	DeletePackage(ctx *fiber.Ctx) error
	UploadPackageImage(ctx *fiber.Ctx) error
	PackageTypes(ctx *fiber.Ctx) error

	ListTemplates(ctx *fiber.Ctx) error
	CreateTemplate(ctx *fiber.Ctx) error
	UpdateTemplate(ctx *fiber.Ctx) error
	DeleteTemplate(ctx *fiber.Ctx) error
	GeneratePoster(ctx *fiber.Ctx) error
	ListPosters(ctx *fiber.Ctx) error
	DownloadPoster(ctx *fiber.Ctx) error
	DeletePoster(ctx *fiber.Ctx) error
}

type catalogController struct {
	packages service.IPackageService
	posters  service.IPosterService
	auth     fiber.Handler
}

func NewCatalogController(packages service.IPackageService, posters service.IPosterService, auth fiber.Handler) ICatalogController {
	return &catalogController{packages: packages, posters: posters, auth: auth}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	p := r.Group("/packages", c.auth)
	p.Get("/types", c.PackageTypes)
	p.Post("/", c.CreatePackage)
	p.Get("/", c.ListPackages)
	p.Get("/:id", c.GetPackage)
	p.Put("/:id", c.UpdatePackage)
	p.Delete("/:id", c.DeletePackage)
	p.Post("/:id/image", c.UploadPackageImage)

	t := r.Group("/poster-templates", c.auth)
	t.Get("/", c.ListTemplates)
	t.Post("/", c.CreateTemplate)
	t.Put("/:id", c.UpdateTemplate)
	t.Delete("/:id", c.DeleteTemplate)

	h := r.Group("/posters", c.auth)
	h.Post("/generate", c.GeneratePoster)
	h.Get("/", c.ListPosters)
	h.Get("/:id/download", c.DownloadPoster)
	h.Delete("/:id", c.DeletePoster)
}

func (c *catalogController) CreatePackage(ctx *fiber.Ctx) error {
	var req dto.PackageRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.packages.Create(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Package created successfully", res))
}

func (c *catalogController) ListPackages(ctx *fiber.Ctx) error {
	var q dto.PackageListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.packages.List(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Packages", res))
}

func (c *catalogController) GetPackage(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.packages.Get(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package", res))
}

func (c *catalogController) UpdatePackage(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.PackageRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.packages.Update(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package updated successfully", res))
}

func (c *catalogController) DeletePackage(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.packages.Delete(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Package deleted successfully", nil))
}

func (c *catalogController) UploadPackageImage(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	file, err := formFile(ctx, "image", true)
	if err != nil {
		return err
	}
	res, err := c.packages.UploadImage(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, file)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Package image uploaded", res))
}

func (c *catalogController) PackageTypes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Package types", c.packages.Types()))
}

func (c *catalogController) ListTemplates(ctx *fiber.Ctx) error {
	res, err := c.posters.ListTemplates(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Poster templates", res))
}

func (c *catalogController) bindTemplate(ctx *fiber.Ctx, requireImage bool) (*dto.PosterTemplateRequest, *dto.UploadedFile, error) {
	var req dto.PosterTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, nil, serverutils.NewValidationError("Invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, nil, err
	}
	file, err := formFile(ctx, "background_image", requireImage)
	if err != nil {
		return nil, nil, err
	}
	return &req, file, nil
}

func (c *catalogController) CreateTemplate(ctx *fiber.Ctx) error {
	req, file, err := c.bindTemplate(ctx, true)
	if err != nil {
		return err
	}
	res, err := c.posters.CreateTemplate(ctx.UserContext(), serverutils.CurrentUserID(ctx), req, file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Poster template created", res))
}

func (c *catalogController) UpdateTemplate(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	req, file, err := c.bindTemplate(ctx, false)
	if err != nil {
		return err
	}
	res, err := c.posters.UpdateTemplate(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, req, file)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Poster template updated", res))
}

func (c *catalogController) DeleteTemplate(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.posters.DeleteTemplate(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Poster template deleted", nil))
}

func (c *catalogController) GeneratePoster(ctx *fiber.Ctx) error {
	var req dto.GeneratePosterRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.posters.Generate(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Poster generated successfully", res))
}

func (c *catalogController) ListPosters(ctx *fiber.Ctx) error {
	res, err := c.posters.ListPosters(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Posters", res))
}

func (c *catalogController) DownloadPoster(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	file, err := c.posters.Download(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, ctx.Query("format", "png"))
	if err != nil {
		return err
	}
	return sendFile(ctx, file, "attachment")
}

func (c *catalogController) DeletePoster(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.posters.DeletePoster(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Poster deleted", nil))
}
