package entity

import (
	"strings"
	"time"

	"travel-backoffice-be/pkg/access"

	"github.com/google/uuid"
)

type VerificationType string

const (
	VerificationEmail         VerificationType = "email"
	VerificationPhone         VerificationType = "phone"
	VerificationPasswordReset VerificationType = "password_reset"
)

const DefaultCompanyName = "Your Travel Company"

type User struct {
	Id            uuid.UUID
	Username      string
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Phone         *string
	Address       string
	ProfileImage  *string
	Role          access.Role
	IsActive      bool
	CreatedBy     *uuid.UUID
	Bio           string
	Website       string
	CompanyName   string
	LicenseNumber string
	CompanyLogo   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) Viewer() access.Viewer {
	return access.Viewer{ID: u.Id, Role: u.Role, CreatedBy: u.CreatedBy}
}

func (u *User) OwnerRef() access.OwnerRef {
	return access.OwnerRef{ID: u.Id, Role: u.Role, CreatedBy: u.CreatedBy}
}

// CompanyProfile is the letterhead printed on receipts and certificates.
type CompanyProfile struct {
	Name          string
	Address       string
	Phone         string
	Email         string
	LicenseNumber string
	Logo          string
	Website       string
}

func (u *User) CompanyProfile() CompanyProfile {
	p := CompanyProfile{
		Name:          u.CompanyName,
		Address:       u.Address,
		Email:         u.Email,
		LicenseNumber: u.LicenseNumber,
		Website:       u.Website,
	}
	if p.Name == "" {
		p.Name = DefaultCompanyName
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.CompanyLogo != nil {
		p.Logo = *u.CompanyLogo
	}
	return p
}

type OTPVerification struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	VerificationType VerificationType
	Otp              string
	NewValue         string
	ExpiresAt        time.Time
	IsVerified       bool
	CreatedAt        time.Time
}

func (o *OTPVerification) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	IpAddress string
	UserAgent string
	CreatedAt time.Time
}
