package dto

import (
	"time"

	"github.com/google/uuid"
)

type APIKeyRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	WebsiteURL string `json:"website_url" validate:"omitempty,url"`
}

type APIKeyResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Key        string     `json:"key"`
	WebsiteURL string     `json:"website_url"`
	IsActive   bool       `json:"is_active"`
	LastUsed   *time.Time `json:"last_used"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=20"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type ContactResponse struct {
	Id                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Subject           string     `json:"subject"`
	Message           string     `json:"message"`
	ApiKeyId          *uuid.UUID `json:"api_key"`
	SubmittedByUserId *uuid.UUID `json:"submitted_by_user"`
	CreatedAt         time.Time  `json:"created_at"`
}

type ContactListQuery struct {
	PageQuery
	Search string `query:"search"`
}

type ContactListResponse struct {
	TotalCount int64             `json:"total_count"`
	Data       []ContactResponse `json:"data"`
}

type ValidateKeyResponse struct {
	Valid      bool   `json:"valid"`
	User       string `json:"user"`
	ApiKeyName string `json:"api_key_name"`
	WebsiteURL string `json:"website_url"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type EnquiryRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Email       string     `json:"email" validate:"omitempty,email"`
	Phone       string     `json:"phone" validate:"required,max=20"`
	Message     string     `json:"message" validate:"max=5000"`
	Place       string     `json:"place" validate:"max=200"`
	AgencyId    *uuid.UUID `json:"agency"`
	FranchiseId *uuid.UUID `json:"franchise"`
}

type EnquiryResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Message     string     `json:"message"`
	Place       string     `json:"place"`
	AgencyId    *uuid.UUID `json:"agency"`
	FranchiseId *uuid.UUID `json:"franchise"`
	CreatedBy   *uuid.UUID `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

type EnquiryListQuery struct {
	PageQuery
	Search string `query:"search"`
}

// ContactSubmittedMessage is published on the in-process bus after intake.
type ContactSubmittedMessage struct {
	ContactId uuid.UUID `json:"contact_id"`
	ApiKeyId  uuid.UUID `json:"api_key_id"`
}
