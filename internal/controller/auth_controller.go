package controller

import (
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	VerifyResetOTP(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
	SendEmailOTP(ctx *fiber.Ctx) error
	ConfirmEmail(ctx *fiber.Ctx) error
	SendPhoneOTP(ctx *fiber.Ctx) error
	ConfirmPhone(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	auth        fiber.Handler
}

func NewAuthController(authService service.IAuthService, auth fiber.Handler) IAuthController {
	return &authController{authService: authService, auth: auth}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/refresh", c.Refresh)
	h.Post("/logout", c.auth, c.Logout)

	// Password reset
	h.Post("/forgot-password", c.ForgotPassword)
	h.Post("/verify-otp", c.VerifyResetOTP)
	h.Post("/reset-password", c.ResetPassword)

	// Contact changes
	h.Post("/email/otp", c.auth, c.SendEmailOTP)
	h.Post("/email/confirm", c.auth, c.ConfirmEmail)
	h.Post("/phone/otp", c.auth, c.SendPhoneOTP)
	h.Post("/phone/confirm", c.auth, c.ConfirmPhone)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.authService.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("User registered successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.authService.Login(ctx.UserContext(), &req, ctx.IP(), ctx.Get(fiber.HeaderUserAgent))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.authService.Refresh(ctx.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Token refreshed", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	// An empty body is fine: the access token is still revoked.
	_ = ctx.BodyParser(&req)

	jti, _ := ctx.Locals(serverutils.LocalTokenJTI).(string)
	exp, ok := serverutils.TokenExpiry(ctx)
	if !ok {
		exp = time.Now()
	}
	if err := c.authService.Logout(ctx.UserContext(), serverutils.CurrentUserID(ctx), jti, exp, req.RefreshToken); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logout successful", nil))
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	if err := c.authService.ForgotPassword(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("If the email is registered, an OTP has been sent", nil))
}

func (c *authController) VerifyResetOTP(ctx *fiber.Ctx) error {
	var req dto.VerifyResetOTPRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	res, err := c.authService.VerifyResetOTP(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("OTP verified", res))
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	if err := c.authService.ResetPassword(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password reset successfully", nil))
}

func (c *authController) SendEmailOTP(ctx *fiber.Ctx) error {
	var req dto.SendEmailOTPRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	if err := c.authService.SendEmailChangeOTP(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("OTP sent to the new email address", nil))
}

func (c *authController) ConfirmEmail(ctx *fiber.Ctx) error {
	var req dto.ConfirmOTPRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	if err := c.authService.ConfirmEmailChange(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Email updated", nil))
}

func (c *authController) SendPhoneOTP(ctx *fiber.Ctx) error {
	var req dto.SendPhoneOTPRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	if err := c.authService.SendPhoneChangeOTP(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("OTP sent to your registered email", nil))
}

func (c *authController) ConfirmPhone(ctx *fiber.Ctx) error {
	var req dto.ConfirmOTPRequest
	if err := bindJSON(ctx, &req); err != nil {
		return err
	}
	if err := c.authService.ConfirmPhoneChange(ctx.UserContext(), serverutils.CurrentUserID(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Phone number updated", nil))
}
