package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"travel-backoffice-be/internal/config"
	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/mailer"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/events"
	"travel-backoffice-be/pkg/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const authModule = "AuthService"

// TokenRevoker blacklists access tokens by jti until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, userId uuid.UUID, jti string, expiresAt time.Time, refreshToken string) error

	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	VerifyResetOTP(ctx context.Context, req *dto.VerifyResetOTPRequest) (*dto.VerifyResetOTPResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error

	SendEmailChangeOTP(ctx context.Context, userId uuid.UUID, req *dto.SendEmailOTPRequest) error
	ConfirmEmailChange(ctx context.Context, userId uuid.UUID, req *dto.ConfirmOTPRequest) error
	SendPhoneChangeOTP(ctx context.Context, userId uuid.UUID, req *dto.SendPhoneOTPRequest) error
	ConfirmPhoneChange(ctx context.Context, userId uuid.UUID, req *dto.ConfirmOTPRequest) error

	PurgeExpiredOTPs(ctx context.Context) (int64, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	revoker      TokenRevoker
	publisher    events.Publisher
	files        storage.Storage
	cfg          config.AuthConfig
	log          logger.ILogger
	now          func() time.Time
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	revoker TokenRevoker,
	publisher events.Publisher,
	files storage.Storage,
	cfg config.AuthConfig,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
		revoker:      revoker,
		publisher:    publisher,
		files:        files,
		cfg:          cfg,
		log:          log,
		now:          time.Now,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func generateOpaqueToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// checkUserUniqueness reports the first taken identity field of a new or
// updated user. exclude is the user being updated, if any.
func checkUserUniqueness(ctx context.Context, uow unitofwork.UnitOfWork, exclude uuid.UUID, username, email, phone string) error {
	repo := uow.UserRepository()
	checks := []struct {
		field   string
		message string
		spec    specification.Specification
		skip    bool
	}{
		{"email", "This email is already in use", specification.ByEmail{Email: email}, email == ""},
		{"username", "This username is already in use", specification.ByUsername{Username: username}, username == ""},
		{"phone", "This phone number is already in use", specification.ByPhone{Phone: phone}, phone == ""},
	}
	for _, c := range checks {
		if c.skip {
			continue
		}
		existing, err := repo.FindOne(ctx, c.spec)
		if err != nil {
			return err
		}
		if existing != nil && existing.Id != exclude {
			return serverutils.NewFieldError(c.field, c.message)
		}
	}
	return nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := access.NormalizeRole(req.Role)
	if !role.SelfRegistrable() {
		return nil, serverutils.NewFieldError("role", "This role cannot be chosen at registration")
	}

	email := normalizeEmail(req.Email)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := checkUserUniqueness(ctx, uow, uuid.Nil, req.Username, email, req.Phone); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Address:      req.Address,
		Role:         role,
		IsActive:     true,
		CompanyName:  req.CompanyName,
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(authModule, "User registered", map[string]interface{}{"user_id": user.Id.String(), "role": string(role)})
	publishEvent(ctx, s.publisher, s.log, authModule, events.New(events.UserRegistered, map[string]interface{}{
		"user_id": user.Id.String(),
		"role":    string(role),
	}))

	res := toUserResponse(user, s.files)
	return &res, nil
}

func (s *authService) issueAccessToken(user *entity.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"jti":     uuid.NewString(),
		"type":    "access",
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JwtSecret))
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: normalizeEmail(req.Email)})
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, serverutils.NewUnauthorizedError("Invalid credentials")
	}
	if !user.IsActive {
		return nil, serverutils.NewUnauthorizedError("User account is disabled")
	}

	accessToken, err := s.issueAccessToken(user)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to issue token", err)
	}
	refreshToken, err := generateOpaqueToken(32)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to issue token", err)
	}

	if err := uow.UserRepository().CreateRefreshToken(ctx, &entity.UserRefreshToken{
		UserId:    user.Id,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
		IpAddress: ipAddress,
		UserAgent: userAgent,
	}); err != nil {
		return nil, err
	}

	s.log.Info(authModule, "User logged in", map[string]interface{}{"user_id": user.Id.String(), "ip": ipAddress})
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.cfg.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user, s.files),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stored, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashToken(refreshToken)})
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Revoked || s.now().After(stored.ExpiresAt) {
		return nil, serverutils.NewUnauthorizedError("Invalid or expired refresh token")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, serverutils.NewUnauthorizedError("User not found or inactive")
	}

	accessToken, err := s.issueAccessToken(user)
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to issue token", err)
	}
	return &dto.RefreshResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, userId uuid.UUID, jti string, expiresAt time.Time, refreshToken string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if refreshToken != "" {
		hash := hashToken(refreshToken)
		stored, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hash})
		if err != nil {
			return err
		}
		if stored != nil && stored.UserId == userId {
			if err := uow.UserRepository().RevokeRefreshToken(ctx, hash); err != nil {
				return err
			}
		}
	}

	if jti != "" && s.revoker != nil {
		ttl := expiresAt.Sub(s.now())
		if expiresAt.IsZero() {
			ttl = s.cfg.AccessTokenTTL
		}
		if ttl > 0 {
			if err := s.revoker.Revoke(ctx, jti, ttl); err != nil {
				return serverutils.NewInternalError("Failed to revoke token", err)
			}
		}
	}

	s.log.Info(authModule, "User logged out", map[string]interface{}{"user_id": userId.String()})
	return nil
}

// issueOTP replaces any pending code of the same type for user.
func (s *authService) issueOTP(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, kind entity.VerificationType, newValue string) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", err
	}

	if err := uow.Begin(ctx); err != nil {
		return "", err
	}
	defer uow.Rollback()

	repo := uow.UserRepository()
	if _, err := repo.DeleteOTPs(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.ByVerificationType{Type: string(kind)},
	); err != nil {
		return "", err
	}
	if err := repo.CreateOTP(ctx, &entity.OTPVerification{
		UserId:           user.Id,
		VerificationType: kind,
		Otp:              code,
		NewValue:         newValue,
		ExpiresAt:        s.now().Add(s.cfg.OTPTTL),
	}); err != nil {
		return "", err
	}
	if err := uow.Commit(); err != nil {
		return "", err
	}
	return code, nil
}

func (s *authService) sendOTP(to, code, purpose string, user *entity.User) error {
	if err := s.emailService.SendOTP(to, code, purpose); err != nil {
		s.log.Error(authModule, "Failed to send OTP", map[string]interface{}{
			"user_id": user.Id.String(),
			"purpose": purpose,
			"error":   err.Error(),
		})
		return serverutils.NewInternalError("Failed to send OTP. Please try again.", err)
	}
	return nil
}

// findPendingOTP returns an unverified, unexpired code or a validation error.
func (s *authService) findPendingOTP(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, kind entity.VerificationType, code string) (*entity.OTPVerification, error) {
	otp, err := uow.UserRepository().FindOTP(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByVerificationType{Type: string(kind)},
		specification.ByOTPCode{Code: code},
		specification.Filter("is_verified", false),
	)
	if err != nil {
		return nil, err
	}
	if otp == nil || otp.Expired(s.now()) {
		return nil, serverutils.NewValidationError("Invalid or expired OTP", nil)
	}
	return otp, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	email := normalizeEmail(req.Email)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NewFieldError("email", "No account found with this email address")
	}

	code, err := s.issueOTP(ctx, uow, user, entity.VerificationPasswordReset, email)
	if err != nil {
		return err
	}
	return s.sendOTP(email, code, "password reset", user)
}

func (s *authService) VerifyResetOTP(ctx context.Context, req *dto.VerifyResetOTPRequest) (*dto.VerifyResetOTPResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: normalizeEmail(req.Email)})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewValidationError("Invalid request", nil)
	}

	otp, err := s.findPendingOTP(ctx, uow, user.Id, entity.VerificationPasswordReset, req.Otp)
	if err != nil {
		return nil, err
	}
	if err := uow.UserRepository().MarkOTPVerified(ctx, otp.Id); err != nil {
		return nil, err
	}
	return &dto.VerifyResetOTPResponse{ResetToken: otp.Id.String()}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	resetId, err := uuid.Parse(req.ResetToken)
	if err != nil {
		return serverutils.NewValidationError("Invalid or expired reset token", nil)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: normalizeEmail(req.Email)})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NewValidationError("Invalid request", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.UserRepository()
	otp, err := repo.FindOTP(ctx,
		specification.ByID{ID: resetId},
		specification.UserOwnedBy{UserID: user.Id},
		specification.ByVerificationType{Type: string(entity.VerificationPasswordReset)},
		specification.Filter("is_verified", true),
	)
	if err != nil {
		return err
	}
	if otp == nil || otp.Expired(s.now()) {
		return serverutils.NewValidationError("Invalid or expired reset token", nil)
	}

	if err := repo.UpdatePassword(ctx, user.Id, string(hash)); err != nil {
		return err
	}
	if err := repo.DeleteOTP(ctx, otp.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Info(authModule, "Password reset", map[string]interface{}{"user_id": user.Id.String()})
	return nil
}

func (s *authService) SendEmailChangeOTP(ctx context.Context, userId uuid.UUID, req *dto.SendEmailOTPRequest) error {
	email := normalizeEmail(req.Email)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	if err := checkUserUniqueness(ctx, uow, user.Id, "", email, ""); err != nil {
		return err
	}

	code, err := s.issueOTP(ctx, uow, user, entity.VerificationEmail, email)
	if err != nil {
		return err
	}
	return s.sendOTP(email, code, "email verification", user)
}

func (s *authService) ConfirmEmailChange(ctx context.Context, userId uuid.UUID, req *dto.ConfirmOTPRequest) error {
	return s.confirmContactChange(ctx, userId, entity.VerificationEmail, req.Otp, func(u *entity.User, value string) {
		u.Email = value
	})
}

// SendPhoneChangeOTP delivers the code to the account's current email
// address; no SMS gateway is configured.
func (s *authService) SendPhoneChangeOTP(ctx context.Context, userId uuid.UUID, req *dto.SendPhoneOTPRequest) error {
	phone := strings.TrimSpace(req.Phone)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	if err := checkUserUniqueness(ctx, uow, user.Id, "", "", phone); err != nil {
		return err
	}

	code, err := s.issueOTP(ctx, uow, user, entity.VerificationPhone, phone)
	if err != nil {
		return err
	}
	return s.sendOTP(user.Email, code, "phone number verification", user)
}

func (s *authService) ConfirmPhoneChange(ctx context.Context, userId uuid.UUID, req *dto.ConfirmOTPRequest) error {
	return s.confirmContactChange(ctx, userId, entity.VerificationPhone, req.Otp, func(u *entity.User, value string) {
		u.Phone = &value
	})
}

func (s *authService) confirmContactChange(ctx context.Context, userId uuid.UUID, kind entity.VerificationType, code string, apply func(*entity.User, string)) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	otp, err := s.findPendingOTP(ctx, uow, user.Id, kind, code)
	if err != nil {
		return err
	}
	apply(user, otp.NewValue)
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}
	if err := uow.UserRepository().MarkOTPVerified(ctx, otp.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Info(authModule, "Contact detail verified", map[string]interface{}{"user_id": user.Id.String(), "type": string(kind)})
	return nil
}

func (s *authService) PurgeExpiredOTPs(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().DeleteOTPs(ctx, specification.ExpiredBefore{At: s.now()})
}
