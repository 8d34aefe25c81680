package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	PaymentAmount   decimal.Decimal `json:"payment_amount" validate:"gt=0"`
	PaymentMode     string          `json:"payment_mode" validate:"required,oneof=cash bank_transfer upi card cheque"`
	NoOfTravelers   int             `json:"no_of_travelers" validate:"gte=1"`
	ReferenceNumber string          `json:"reference_number" validate:"max=100"`
	Notes           string          `json:"notes" validate:"max=1000"`
}

type PaymentResponse struct {
	Id               uuid.UUID       `json:"id"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	PaymentMode      string          `json:"payment_mode"`
	PaymentModeLabel string          `json:"payment_mode_label"`
	NoOfTravelers    int             `json:"no_of_travelers"`
	ReferenceNumber  string          `json:"reference_number"`
	Status           string          `json:"status"`
	StatusLabel      string          `json:"status_label"`
	Notes            string          `json:"notes"`
	PaidBy           uuid.UUID       `json:"paid_by"`
	ProcessedBy      *uuid.UUID      `json:"processed_by"`
	ProcessedAt      *time.Time      `json:"processed_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type PaymentListQuery struct {
	PageQuery
	Status      string `query:"status"`
	PaymentMode string `query:"payment_mode"`
	Search      string `query:"search"`
}

type PaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=inprocess completed rejected"`
	Notes  string `json:"notes" validate:"max=1000"`
}

type BulkPaymentStatusRequest struct {
	PaymentIds []uuid.UUID `json:"payment_ids" validate:"required,min=1,max=500"`
	Status     string      `json:"status" validate:"required,oneof=completed rejected"`
	Notes      string      `json:"notes" validate:"max=1000"`
}

type BulkPaymentStatusResponse struct {
	Requested int   `json:"requested"`
	Updated   int64 `json:"updated"`
}

type PaymentDashboardResponse struct {
	TotalCount      int64             `json:"total_count"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	ThisMonthCount  int64             `json:"this_month_count"`
	ThisMonthAmount decimal.Decimal   `json:"this_month_amount"`
	ByStatus        []AggregateRow    `json:"by_status"`
	ByMode          []AggregateRow    `json:"by_mode"`
	Recent          []PaymentResponse `json:"recent"`
}
