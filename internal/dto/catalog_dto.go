package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PackageRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description" validate:"max=5000"`
	PackageType   string          `json:"package_type" validate:"required,oneof=classic_hajj deluxe_hajj luxury_hajj classic_umrah deluxe_umrah luxury_umrah ramadan_20_days ramadan_18_days ramadan_full_month"`
	Destination   string          `json:"destination" validate:"max=200"`
	DurationDays  int             `json:"duration_days" validate:"gte=1"`
	Price         decimal.Decimal `json:"price" validate:"gte=0"`
	DiscountPrice decimal.Decimal `json:"discount_price" validate:"gte=0"`
	IsActive      *bool           `json:"is_active"`
	AssignedTo    *uuid.UUID      `json:"assigned_to"`
}

type PackageResponse struct {
	Id             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PackageType    string          `json:"package_type"`
	PackageLabel   string          `json:"package_type_label"`
	Destination    string          `json:"destination"`
	DurationDays   int             `json:"duration_days"`
	Price          decimal.Decimal `json:"price"`
	DiscountPrice  decimal.Decimal `json:"discount_price"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	Image          *string         `json:"image"`
	IsActive       bool            `json:"is_active"`
	CreatedBy      uuid.UUID       `json:"created_by"`
	AssignedTo     *uuid.UUID      `json:"assigned_to"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PackageListQuery struct {
	PageQuery
	PackageType string `query:"package_type"`
	Search      string `query:"search"`
	ActiveOnly  bool   `query:"active_only"`
}

type PosterTemplateRequest struct {
	Name         string `form:"name" json:"name" validate:"required,max=100"`
	TemplateType string `form:"template_type" json:"template_type" validate:"required,oneof=Umrah Hajj Ramadan"`
	IsActive     *bool  `form:"is_active" json:"is_active"`
}

type PosterTemplateResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	TemplateType    string    `json:"template_type"`
	BackgroundImage string    `json:"background_image"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type GeneratePosterRequest struct {
	PackageName string          `json:"package_name" validate:"required,max=200"`
	PackageType string          `json:"package_type" validate:"required,oneof=Umrah Hajj Ramadan"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	TemplateId  *uuid.UUID      `json:"template_id"`
	Format      string          `json:"format" validate:"omitempty,oneof=png jpg pdf"`
}

type PackagePosterResponse struct {
	Id          uuid.UUID         `json:"id"`
	PackageName string            `json:"package_name"`
	PackageType string            `json:"package_type"`
	Price       decimal.Decimal   `json:"price"`
	TemplateId  *uuid.UUID        `json:"template_id"`
	Files       map[string]string `json:"files"`
	CreatedAt   time.Time         `json:"created_at"`
}

type GeneratePosterResponse struct {
	Poster      PackagePosterResponse `json:"poster"`
	Format      string                `json:"format"`
	ContentType string                `json:"content_type"`
	Data        string                `json:"data"`
}
