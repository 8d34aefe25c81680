package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username      string     `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string     `gorm:"type:varchar(255);not null"`
	FirstName     string     `gorm:"type:varchar(150)"`
	LastName      string     `gorm:"type:varchar(150)"`
	Phone         *string    `gorm:"type:varchar(20);uniqueIndex"`
	Address       string     `gorm:"type:text"`
	ProfileImage  *string    `gorm:"type:text"`
	Role          string     `gorm:"type:varchar(30);not null;index"`
	IsActive      bool       `gorm:"not null"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid;index"`
	Bio           string     `gorm:"type:text"`
	Website       string     `gorm:"type:varchar(255)"`
	CompanyName   string     `gorm:"type:varchar(255)"`
	LicenseNumber string     `gorm:"type:varchar(100)"`
	CompanyLogo   *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type OTPVerification struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	VerificationType string    `gorm:"type:varchar(20);not null"`
	Otp              string    `gorm:"type:varchar(6);not null"`
	NewValue         string    `gorm:"type:varchar(255)"`
	ExpiresAt        time.Time `gorm:"not null;index"`
	IsVerified       bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (OTPVerification) TableName() string {
	return "otp_verifications"
}

type UserRefreshToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"not null;default:false"`
	IpAddress string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserRefreshToken) TableName() string {
	return "user_refresh_tokens"
}
