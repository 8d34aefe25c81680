package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PackageType string

const (
	PackageClassicHajj      PackageType = "classic_hajj"
	PackageDeluxeHajj       PackageType = "deluxe_hajj"
	PackageLuxuryHajj       PackageType = "luxury_hajj"
	PackageClassicUmrah     PackageType = "classic_umrah"
	PackageDeluxeUmrah      PackageType = "deluxe_umrah"
	PackageLuxuryUmrah      PackageType = "luxury_umrah"
	PackageRamadan20Days    PackageType = "ramadan_20_days"
	PackageRamadan18Days    PackageType = "ramadan_18_days"
	PackageRamadanFullMonth PackageType = "ramadan_full_month"
)

type Package struct {
	Id            uuid.UUID
	Name          string
	Description   string
	PackageType   PackageType
	Destination   string
	DurationDays  int
	Price         decimal.Decimal
	DiscountPrice decimal.Decimal
	Image         *string
	IsActive      bool
	CreatedBy     uuid.UUID
	AssignedTo    *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice is the discounted price when a discount is set.
func (p *Package) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.IsPositive() && p.DiscountPrice.LessThan(p.Price) {
		return p.DiscountPrice
	}
	return p.Price
}

type PosterType string

const (
	PosterUmrah   PosterType = "Umrah"
	PosterHajj    PosterType = "Hajj"
	PosterRamadan PosterType = "Ramadan"
)

type PosterFormat string

const (
	PosterPNG PosterFormat = "png"
	PosterJPG PosterFormat = "jpg"
	PosterPDF PosterFormat = "pdf"
)

type PosterTemplate struct {
	Id              uuid.UUID
	Name            string
	TemplateType    PosterType
	BackgroundImage string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PackagePoster struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	PackageName  string
	PackageType  PosterType
	Price        decimal.Decimal
	TemplateId   *uuid.UUID
	PosterPngKey *string
	PosterJpgKey *string
	PosterPdfKey *string
	CreatedAt    time.Time
}

// FileKey returns the storage key of the rendition in format f, if any.
func (p *PackagePoster) FileKey(f PosterFormat) *string {
	switch f {
	case PosterPNG:
		return p.PosterPngKey
	case PosterJPG:
		return p.PosterJpgKey
	case PosterPDF:
		return p.PosterPdfKey
	}
	return nil
}

type BusinessPlan string

const (
	PlanAgency     BusinessPlan = "agency"
	PlanFranchise  BusinessPlan = "franchise"
	PlanFreelancer BusinessPlan = "freelancer"
)

type PlatformDemoRequest struct {
	Id           uuid.UUID
	SelectedDate time.Time
	SelectedTime string
	Name         string
	Email        string
	Phone        string
	BusinessPlan BusinessPlan
	CreatedAt    time.Time
}

type PlatformServiceRequest struct {
	Id           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	BusinessPlan BusinessPlan
	CreatedAt    time.Time
}
