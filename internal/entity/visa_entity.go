package entity

import (
	"time"

	"travel-backoffice-be/pkg/lifecycle"
	"travel-backoffice-be/pkg/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VisaType string

const (
	VisaHajj    VisaType = "hajj"
	VisaUmrah   VisaType = "umrah"
	VisaRamadan VisaType = "ramadan"
	VisaTourist VisaType = "tourist"
)

var VisaTypes = []VisaType{VisaHajj, VisaUmrah, VisaRamadan, VisaTourist}

type DocumentType string

const (
	DocumentPassport         DocumentType = "passport"
	DocumentPhoto            DocumentType = "photo"
	DocumentInvitation       DocumentType = "invitation"
	DocumentBankStatement    DocumentType = "bank_statement"
	DocumentEmploymentLetter DocumentType = "employment_letter"
	DocumentHotelBooking     DocumentType = "hotel_booking"
	DocumentFlightBooking    DocumentType = "flight_booking"
	DocumentOther            DocumentType = "other"
)

// RequiredVisaDocuments must be attached before an application is submitted.
var RequiredVisaDocuments = []DocumentType{DocumentPassport, DocumentPhoto}

var VisaStatuses = []lifecycle.State{
	lifecycle.VisaDraft,
	lifecycle.VisaSubmitted,
	lifecycle.VisaUnderReview,
	lifecycle.VisaApproved,
	lifecycle.VisaRejected,
	lifecycle.VisaIssued,
}

type VisaApplication struct {
	Id                 uuid.UUID
	ApplicationNumber  string
	ApplicantName      string
	PassportNumber     string
	Nationality        string
	DestinationCountry string
	VisaType           VisaType
	TravelDate         time.Time
	ReturnDate         time.Time
	PurposeOfVisit     string
	Status             lifecycle.State
	ProcessingFee      decimal.Decimal
	EmbassyFee         decimal.Decimal
	ServiceFee         decimal.Decimal
	TotalFee           decimal.Decimal
	AppliedBy          uuid.UUID
	Remarks            string
	ProcessedBy        *uuid.UUID
	ProcessedAt        *time.Time
	SubmittedAt        *time.Time
	Documents          []*VisaDocument
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (v *VisaApplication) Recalculate() {
	v.TotalFee = pricing.VisaTotalFee(v.ProcessingFee, v.EmbassyFee, v.ServiceFee)
}

func (v *VisaApplication) IsDraft() bool {
	return v.Status == lifecycle.VisaDraft
}

// AcceptsDocuments reports whether new documents may be attached.
func (v *VisaApplication) AcceptsDocuments() bool {
	return v.Status == lifecycle.VisaDraft || v.Status == lifecycle.VisaSubmitted
}

type VisaDocument struct {
	Id                uuid.UUID
	VisaApplicationId uuid.UUID
	DocumentType      DocumentType
	FileKey           string
	FileName          string
	ContentType       string
	SizeBytes         int64
	Description       string
	IsVerified        bool
	VerifiedBy        *uuid.UUID
	VerifiedAt        *time.Time
	CreatedAt         time.Time
}

// MissingDocuments returns the required types absent from docs, in order.
func MissingDocuments(docs []*VisaDocument) []DocumentType {
	present := make(map[DocumentType]bool, len(docs))
	for _, d := range docs {
		present[d.DocumentType] = true
	}
	var missing []DocumentType
	for _, required := range RequiredVisaDocuments {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	return missing
}

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
	PaymentModeUPI          PaymentMode = "upi"
	PaymentModeCard         PaymentMode = "card"
	PaymentModeCheque       PaymentMode = "cheque"
)

var PaymentModes = []PaymentMode{PaymentModeCash, PaymentModeBankTransfer, PaymentModeUPI, PaymentModeCard, PaymentModeCheque}

var PaymentStatuses = []lifecycle.State{lifecycle.PaymentInProcess, lifecycle.PaymentCompleted, lifecycle.PaymentRejected}

type Payment struct {
	Id              uuid.UUID
	PaymentAmount   decimal.Decimal
	PaymentMode     PaymentMode
	NoOfTravelers   int
	ReferenceNumber string
	Status          lifecycle.State
	Notes           string
	PaidBy          uuid.UUID
	ProcessedBy     *uuid.UUID
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
