package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Package struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text"`
	PackageType   string          `gorm:"type:varchar(50);not null;index"`
	Destination   string          `gorm:"type:varchar(255);not null"`
	DurationDays  int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DiscountPrice decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Image         *string         `gorm:"type:text"`
	IsActive      bool            `gorm:"not null;index"`
	CreatedBy     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AssignedTo    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
}

func (Package) TableName() string {
	return "packages"
}

type PosterTemplate struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	TemplateType    string    `gorm:"type:varchar(20);not null;index"`
	BackgroundImage string    `gorm:"type:text"`
	IsActive        bool      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (PosterTemplate) TableName() string {
	return "poster_templates"
}

type PackagePoster struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PackageName  string          `gorm:"type:varchar(255);not null"`
	PackageType  string          `gorm:"type:varchar(20);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TemplateId   *uuid.UUID      `gorm:"type:uuid"`
	PosterPngKey *string         `gorm:"type:text"`
	PosterJpgKey *string         `gorm:"type:text"`
	PosterPdfKey *string         `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;index"`
}

func (PackagePoster) TableName() string {
	return "package_posters"
}

type PlatformDemoRequest struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SelectedDate datatypes.Date `gorm:"type:date;not null"`
	SelectedTime string         `gorm:"type:varchar(5);not null"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Email        string         `gorm:"type:varchar(255);index"`
	Phone        string         `gorm:"type:varchar(20);not null"`
	BusinessPlan string         `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
}

func (PlatformDemoRequest) TableName() string {
	return "platform_demo_requests"
}

type PlatformServiceRequest struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);index"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	BusinessPlan string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

func (PlatformServiceRequest) TableName() string {
	return "platform_service_requests"
}
