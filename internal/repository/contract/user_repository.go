package contract

import (
	"context"

	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error
	// DetachCreated clears created_by on every user provisioned by creatorId.
	DetachCreated(ctx context.Context, creatorId uuid.UUID) error

	CreateOTP(ctx context.Context, otp *entity.OTPVerification) error
	FindOTP(ctx context.Context, specs ...specification.Specification) (*entity.OTPVerification, error)
	MarkOTPVerified(ctx context.Context, id uuid.UUID) error
	DeleteOTP(ctx context.Context, id uuid.UUID) error
	DeleteOTPs(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error
	FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}
