package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	Id                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookingNumber      string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	FirstName          string          `gorm:"type:varchar(100);not null"`
	LastName           string          `gorm:"type:varchar(100)"`
	Email              string          `gorm:"type:varchar(255)"`
	MobileNo           string          `gorm:"type:varchar(20);not null"`
	PassportNo         string          `gorm:"type:varchar(20)"`
	PlaceOfIssue       string          `gorm:"type:varchar(100)"`
	Address            string          `gorm:"type:text"`
	TravelMonth        string          `gorm:"type:varchar(20)"`
	DepartureCity      string          `gorm:"type:varchar(100)"`
	PackageName        string          `gorm:"type:varchar(255)"`
	PackageDays        int             `gorm:"not null;default:0"`
	RoomSharing        string          `gorm:"type:varchar(10)"`
	Flight             string          `gorm:"type:varchar(255)"`
	SpecialRequest     string          `gorm:"type:text"`
	AdultPrice         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ChildPrice         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	InfantPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalAdults        int             `gorm:"not null;default:0"`
	TotalChildren      int             `gorm:"not null;default:0"`
	TotalInfants       int             `gorm:"not null;default:0"`
	TotalAdultPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalChildPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalInfantPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	DiscountAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalPrice         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	AdvancePayment     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	PayableAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Balance            decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	PaymentType        string          `gorm:"type:varchar(20)"`
	Status             string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Remarks            string          `gorm:"type:text"`
	CreatedBy          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt          time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}

type BookingTraveler struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingId      uuid.UUID `gorm:"type:uuid;not null;index"`
	TravelerType   string    `gorm:"type:varchar(10);not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Age            int       `gorm:"not null;default:0"`
	Gender         string    `gorm:"type:varchar(10)"`
	PassportNumber string    `gorm:"type:varchar(20)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (BookingTraveler) TableName() string {
	return "booking_travelers"
}

type QuickBooking struct {
	Id                       uuid.UUID           `gorm:"type:uuid;primaryKey"`
	QbNumber                 string              `gorm:"type:varchar(20);uniqueIndex;not null"`
	FirstName                string              `gorm:"type:varchar(100);not null"`
	LastName                 string              `gorm:"type:varchar(100)"`
	Email                    string              `gorm:"type:varchar(255)"`
	Mobile                   string              `gorm:"type:varchar(20);not null"`
	TravelMonth              string              `gorm:"type:varchar(20)"`
	Destination              string              `gorm:"type:varchar(255)"`
	NumberOfTravelers        int                 `gorm:"not null"`
	Budget                   decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	PreferredPayment         string              `gorm:"type:varchar(20)"`
	Payment                  decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Dues                     decimal.Decimal     `gorm:"type:numeric(12,2);not null;default:0"`
	IsConvertedToFullBooking bool                `gorm:"not null;default:false"`
	ConvertedBookingId       *uuid.UUID          `gorm:"type:uuid"`
	CreatedBy                uuid.UUID           `gorm:"type:uuid;not null;index"`
	CreatedAt                time.Time           `gorm:"autoCreateTime;index"`
	UpdatedAt                time.Time           `gorm:"autoUpdateTime"`
}

func (QuickBooking) TableName() string {
	return "quick_bookings"
}
