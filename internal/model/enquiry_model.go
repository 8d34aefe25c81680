package model

import (
	"time"

	"github.com/google/uuid"
)

type APIKey struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Key        string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	WebsiteURL string    `gorm:"type:varchar(255)"`
	IsActive   bool      `gorm:"not null"`
	LastUsed   *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (APIKey) TableName() string {
	return "api_keys"
}

type ContactUs struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"type:varchar(255);not null"`
	Email             string     `gorm:"type:varchar(255);not null"`
	Phone             string     `gorm:"type:varchar(20)"`
	Subject           string     `gorm:"type:varchar(255)"`
	Message           string     `gorm:"type:text;not null"`
	ApiKeyId          *uuid.UUID `gorm:"type:uuid;index"`
	SubmittedByUserId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time  `gorm:"autoCreateTime;index"`
}

func (ContactUs) TableName() string {
	return "contact_us"
}

type Enquiry struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Email       string     `gorm:"type:varchar(255);not null"`
	Phone       string     `gorm:"type:varchar(15);not null"`
	Message     string     `gorm:"type:text;not null"`
	Place       string     `gorm:"type:varchar(255)"`
	AgencyId    *uuid.UUID `gorm:"type:uuid;index"`
	FranchiseId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}

type Lead struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	MobileNumber string    `gorm:"type:varchar(20);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Status       string    `gorm:"type:varchar(20);not null;default:'NEW';index"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Lead) TableName() string {
	return "crm_leads"
}

type LeadNote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeadId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Note      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (LeadNote) TableName() string {
	return "crm_lead_notes"
}
