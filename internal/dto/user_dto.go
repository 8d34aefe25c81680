package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	FullName      string     `json:"full_name"`
	Role          string     `json:"role"`
	Phone         *string    `json:"phone"`
	Address       string     `json:"address"`
	ProfileImage  *string    `json:"profile_image"`
	IsActive      bool       `json:"is_active"`
	CreatedBy     *uuid.UUID `json:"created_by"`
	Bio           string     `json:"bio"`
	Website       string     `json:"website"`
	CompanyName   string     `json:"company_name"`
	LicenseNumber string     `json:"license_number"`
	CompanyLogo   *string    `json:"company_logo"`
	CreatedAt     time.Time  `json:"created_at"`
}

// UpdateProfileRequest is a partial update; nil fields are left unchanged.
type UpdateProfileRequest struct {
	Username      *string `json:"username" validate:"omitempty,min=3,max=150"`
	FirstName     *string `json:"first_name" validate:"omitempty,max=150"`
	LastName      *string `json:"last_name" validate:"omitempty,max=150"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	Bio           *string `json:"bio" validate:"omitempty,max=1000"`
	Website       *string `json:"website" validate:"omitempty,url"`
	CompanyName   *string `json:"company_name" validate:"omitempty,max=200"`
	LicenseNumber *string `json:"license_number" validate:"omitempty,max=100"`
}

type CreateSubUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Role      string `json:"role" validate:"required"`
}

type UserListQuery struct {
	PageQuery
	Role   string `query:"role"`
	Search string `query:"search"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
