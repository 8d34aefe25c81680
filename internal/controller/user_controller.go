package controller

import (
	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
	UploadProfileImage(ctx *fiber.Ctx) error
	UploadCompanyLogo(ctx *fiber.Ctx) error
	Certificate(ctx *fiber.Ctx) error

	// Sub-users and administration
	CreateSubUser(ctx *fiber.Ctx) error
	ListSubUsers(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
	SetActive(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
	auth    fiber.Handler
}

func NewUserController(service service.IUserService, auth fiber.Handler) IUserController {
	return &userController{service: service, auth: auth}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users", c.auth)
	h.Get("/me", c.GetProfile)
	h.Put("/me", c.UpdateProfile)
	h.Post("/me/change-password", c.ChangePassword)
	h.Post("/me/profile-image", c.UploadProfileImage)
	h.Post("/me/company-logo", c.UploadCompanyLogo)
	h.Get("/me/certificate", c.Certificate)

	h.Post("/", c.CreateSubUser)
	h.Get("/sub-users", c.ListSubUsers)
	h.Get("/", c.ListUsers)
	h.Get("/:id", c.GetUser)
	h.Patch("/:id/active", c.SetActive)
	h.Delete("/:id", c.DeleteUser)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.UpdateProfile(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *userController) ChangePassword(ctx *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	if err := c.service.ChangePassword(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password changed successfully", nil))
}

func (c *userController) UploadProfileImage(ctx *fiber.Ctx) error {
	file, err := formFile(ctx, "profile_image", true)
	if err != nil {
		return err
	}
	res, err := c.service.UploadProfileImage(ctx.UserContext(), serverutils.CurrentUserID(ctx), file)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile image uploaded successfully", res))
}

func (c *userController) UploadCompanyLogo(ctx *fiber.Ctx) error {
	file, err := formFile(ctx, "company_logo", true)
	if err != nil {
		return err
	}
	res, err := c.service.UploadCompanyLogo(ctx.UserContext(), serverutils.CurrentUserID(ctx), file)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Company logo uploaded successfully", res))
}

func (c *userController) Certificate(ctx *fiber.Ctx) error {
	file, err := c.service.Certificate(ctx.UserContext(), serverutils.CurrentUserID(ctx))
	if err != nil {
		return err
	}
	return sendFile(ctx, file, "attachment")
}

func (c *userController) CreateSubUser(ctx *fiber.Ctx) error {
	var req dto.CreateSubUserRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.CreateSubUser(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("User created successfully", res))
}

func (c *userController) ListSubUsers(ctx *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.service.ListSubUsers(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sub-users", res))
}

func (c *userController) ListUsers(ctx *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := bindQuery(ctx, &q); err != nil {
		return err
	}
	res, err := c.service.ListUsers(ctx.UserContext(), serverutils.CurrentUserID(ctx), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Users", res))
}

func (c *userController) GetUser(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.GetUser(ctx.UserContext(), serverutils.CurrentUserID(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User", res))
}

func (c *userController) SetActive(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.SetActiveRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.SetActive(ctx.UserContext(), serverutils.CurrentUserID(ctx), id, *req.IsActive)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User updated", res))
}

func (c *userController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.DeleteUser(ctx.UserContext(), serverutils.CurrentUserID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User deleted", nil))
}
