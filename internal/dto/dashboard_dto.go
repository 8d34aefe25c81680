package dto

import "github.com/shopspring/decimal"

type BookingStats struct {
	Total      int64            `json:"total"`
	TotalValue decimal.Decimal  `json:"total_value"`
	ThisMonth  int64            `json:"this_month"`
	Today      int64            `json:"today"`
	ByStatus   map[string]int64 `json:"by_status"`
}

type QuickBookingStats struct {
	Total       int64           `json:"total"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	Converted   int64           `json:"converted"`
}

type VisaStats struct {
	Total         int64 `json:"total"`
	PendingReview int64 `json:"pending_review"`
}

type PaymentStats struct {
	InProcessAmount decimal.Decimal `json:"inprocess_amount"`
	CompletedAmount decimal.Decimal `json:"completed_amount"`
	InProcessCount  int64           `json:"inprocess_count"`
}

type DashboardStatsResponse struct {
	Bookings      BookingStats      `json:"bookings"`
	QuickBookings QuickBookingStats `json:"quick_bookings"`
	Visas         VisaStats         `json:"visa_applications"`
	Payments      PaymentStats      `json:"payments"`
	Contacts      int64             `json:"contacts"`
	Enquiries     int64             `json:"enquiries"`
	Leads         int64             `json:"leads"`
}
