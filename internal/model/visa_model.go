package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type VisaApplication struct {
	Id                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ApplicationNumber  string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	ApplicantName      string          `gorm:"type:varchar(255);not null"`
	PassportNumber     string          `gorm:"type:varchar(20);not null"`
	Nationality        string          `gorm:"type:varchar(100);not null"`
	DestinationCountry string          `gorm:"type:varchar(100);not null"`
	VisaType           string          `gorm:"type:varchar(20);not null;index"`
	TravelDate         datatypes.Date  `gorm:"type:date;not null"`
	ReturnDate         datatypes.Date  `gorm:"type:date;not null"`
	PurposeOfVisit     string          `gorm:"type:text"`
	Status             string          `gorm:"type:varchar(20);not null;default:'draft';index"`
	ProcessingFee      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	EmbassyFee         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	ServiceFee         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	TotalFee           decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	AppliedBy          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Remarks            string          `gorm:"type:text"`
	ProcessedBy        *uuid.UUID      `gorm:"type:uuid"`
	ProcessedAt        *time.Time
	SubmittedAt        *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (VisaApplication) TableName() string {
	return "visa_applications"
}

type VisaDocument struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VisaApplicationId uuid.UUID  `gorm:"type:uuid;not null;index"`
	DocumentType      string     `gorm:"type:varchar(50);not null"`
	FileKey           string     `gorm:"type:text;not null"`
	FileName          string     `gorm:"type:varchar(255)"`
	ContentType       string     `gorm:"type:varchar(100)"`
	SizeBytes         int64      `gorm:"not null;default:0"`
	Description       string     `gorm:"type:varchar(255)"`
	IsVerified        bool       `gorm:"not null;default:false"`
	VerifiedBy        *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt        *time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (VisaDocument) TableName() string {
	return "visa_documents"
}

type Payment struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMode     string          `gorm:"type:varchar(20);not null;index"`
	NoOfTravelers   int             `gorm:"not null"`
	ReferenceNumber string          `gorm:"type:varchar(100)"`
	Status          string          `gorm:"type:varchar(20);not null;default:'inprocess';index"`
	Notes           string          `gorm:"type:text"`
	PaidBy          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProcessedBy     *uuid.UUID      `gorm:"type:uuid"`
	ProcessedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
