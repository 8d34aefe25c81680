package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type VisaApplicationRequest struct {
	ApplicantName      string          `json:"applicant_name" validate:"required,max=200"`
	PassportNumber     string          `json:"passport_number" validate:"required,max=50"`
	Nationality        string          `json:"nationality" validate:"required,max=100"`
	DestinationCountry string          `json:"destination_country" validate:"required,max=100"`
	VisaType           string          `json:"visa_type" validate:"required,oneof=hajj umrah ramadan tourist"`
	TravelDate         string          `json:"travel_date" validate:"required,datetime=2006-01-02"`
	ReturnDate         string          `json:"return_date" validate:"required,datetime=2006-01-02"`
	PurposeOfVisit     string          `json:"purpose_of_visit" validate:"max=1000"`
	ProcessingFee      decimal.Decimal `json:"processing_fee" validate:"gte=0"`
	EmbassyFee         decimal.Decimal `json:"embassy_fee" validate:"gte=0"`
	ServiceFee         decimal.Decimal `json:"service_fee" validate:"gte=0"`
	Remarks            string          `json:"remarks" validate:"max=1000"`
}

type VisaDocumentResponse struct {
	Id           uuid.UUID  `json:"id"`
	DocumentType string     `json:"document_type"`
	FileName     string     `json:"file_name"`
	FileURL      string     `json:"file_url"`
	ContentType  string     `json:"content_type"`
	SizeBytes    int64      `json:"size_bytes"`
	Description  string     `json:"description"`
	IsVerified   bool       `json:"is_verified"`
	VerifiedBy   *uuid.UUID `json:"verified_by"`
	VerifiedAt   *time.Time `json:"verified_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

type VisaApplicationResponse struct {
	Id                 uuid.UUID              `json:"id"`
	ApplicationNumber  string                 `json:"application_number"`
	ApplicantName      string                 `json:"applicant_name"`
	PassportNumber     string                 `json:"passport_number"`
	Nationality        string                 `json:"nationality"`
	DestinationCountry string                 `json:"destination_country"`
	VisaType           string                 `json:"visa_type"`
	TravelDate         string                 `json:"travel_date"`
	ReturnDate         string                 `json:"return_date"`
	PurposeOfVisit     string                 `json:"purpose_of_visit"`
	Status             string                 `json:"status"`
	StatusLabel        string                 `json:"status_label"`
	ProcessingFee      decimal.Decimal        `json:"processing_fee"`
	EmbassyFee         decimal.Decimal        `json:"embassy_fee"`
	ServiceFee         decimal.Decimal        `json:"service_fee"`
	TotalFee           decimal.Decimal        `json:"total_fee"`
	AppliedBy          uuid.UUID              `json:"applied_by"`
	Remarks            string                 `json:"remarks"`
	ProcessedBy        *uuid.UUID             `json:"processed_by"`
	ProcessedAt        *time.Time             `json:"processed_at"`
	SubmittedAt        *time.Time             `json:"submitted_at"`
	Documents          []VisaDocumentResponse `json:"documents,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

type VisaListQuery struct {
	PageQuery
	Status   string `query:"status"`
	VisaType string `query:"visa_type"`
	Search   string `query:"search"`
}

type SubmitVisaRequest struct {
	Confirm bool `json:"confirm"`
}

type VisaStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof=submitted under_review approved rejected issued"`
	Remarks string `json:"remarks" validate:"max=1000"`
}

type UploadVisaDocumentRequest struct {
	DocumentType string `form:"document_type" validate:"required,oneof=passport photo invitation bank_statement employment_letter hotel_booking flight_booking other"`
	Description  string `form:"description" validate:"max=500"`
}

type VerifyDocumentRequest struct {
	IsVerified *bool `json:"is_verified"`
}

type VisaDashboardResponse struct {
	Total         int64            `json:"total"`
	PendingReview int64            `json:"pending_review"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByVisaType    map[string]int64 `json:"by_visa_type"`
	TotalFees     decimal.Decimal  `json:"total_fees"`
}
