package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TravelerRequest struct {
	TravelerType   string `json:"traveler_type" validate:"required,oneof=adult child infant"`
	Name           string `json:"name" validate:"required,max=200"`
	Age            int    `json:"age" validate:"gte=0,lte=120"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
	PassportNumber string `json:"passport_number" validate:"max=50"`
}

// BookingRequest carries only base inputs. Derived amounts sent by a client
// have no field here and are dropped at decode time.
type BookingRequest struct {
	FirstName          string            `json:"first_name" validate:"required,max=100"`
	LastName           string            `json:"last_name" validate:"max=100"`
	Email              string            `json:"email" validate:"required,email"`
	MobileNo           string            `json:"mobile_no" validate:"required,max=20"`
	PassportNo         string            `json:"passport_no" validate:"max=50"`
	PlaceOfIssue       string            `json:"place_of_issue" validate:"max=100"`
	Address            string            `json:"address" validate:"max=500"`
	TravelMonth        string            `json:"travel_month" validate:"max=50"`
	DepartureCity      string            `json:"departure_city" validate:"max=100"`
	PackageName        string            `json:"package_name" validate:"max=200"`
	PackageDays        int               `json:"package_days" validate:"gte=0"`
	RoomSharing        string            `json:"room_sharing" validate:"omitempty,oneof=single double triple quad"`
	Flight             string            `json:"flight" validate:"max=200"`
	SpecialRequest     string            `json:"special_request" validate:"max=1000"`
	AdultPrice         decimal.Decimal   `json:"adult_price" validate:"gte=0"`
	ChildPrice         decimal.Decimal   `json:"child_price" validate:"gte=0"`
	InfantPrice        decimal.Decimal   `json:"infant_price" validate:"gte=0"`
	TotalAdults        int               `json:"total_adults" validate:"gte=0"`
	TotalChildren      int               `json:"total_children" validate:"gte=0"`
	TotalInfants       int               `json:"total_infants" validate:"gte=0"`
	DiscountPercentage decimal.Decimal   `json:"discount_percentage" validate:"gte=0,lte=100"`
	AdvancePayment     decimal.Decimal   `json:"advance_payment" validate:"gte=0"`
	PaymentType        string            `json:"payment_type" validate:"omitempty,oneof=cash card upi net_banking cheque"`
	Remarks            string            `json:"remarks" validate:"max=1000"`
	Travelers          []TravelerRequest `json:"travelers" validate:"omitempty,dive"`
}

type TravelerResponse struct {
	Id             uuid.UUID `json:"id"`
	TravelerType   string    `json:"traveler_type"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	PassportNumber string    `json:"passport_number"`
}

type BookingResponse struct {
	Id                 uuid.UUID          `json:"id"`
	BookingNumber      string             `json:"booking_number"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Email              string             `json:"email"`
	MobileNo           string             `json:"mobile_no"`
	PassportNo         string             `json:"passport_no"`
	PlaceOfIssue       string             `json:"place_of_issue"`
	Address            string             `json:"address"`
	TravelMonth        string             `json:"travel_month"`
	DepartureCity      string             `json:"departure_city"`
	PackageName        string             `json:"package_name"`
	PackageDays        int                `json:"package_days"`
	RoomSharing        string             `json:"room_sharing"`
	Flight             string             `json:"flight"`
	SpecialRequest     string             `json:"special_request"`
	AdultPrice         decimal.Decimal    `json:"adult_price"`
	ChildPrice         decimal.Decimal    `json:"child_price"`
	InfantPrice        decimal.Decimal    `json:"infant_price"`
	TotalAdults        int                `json:"total_adults"`
	TotalChildren      int                `json:"total_children"`
	TotalInfants       int                `json:"total_infants"`
	TotalAdultPrice    decimal.Decimal    `json:"total_adult_price"`
	TotalChildPrice    decimal.Decimal    `json:"total_child_price"`
	TotalInfantPrice   decimal.Decimal    `json:"total_infant_price"`
	Subtotal           decimal.Decimal    `json:"subtotal"`
	DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal    `json:"discount_amount"`
	TotalPrice         decimal.Decimal    `json:"total_price"`
	AdvancePayment     decimal.Decimal    `json:"advance_payment"`
	PayableAmount      decimal.Decimal    `json:"payable_amount"`
	Balance            decimal.Decimal    `json:"balance"`
	PaymentType        string             `json:"payment_type"`
	Status             string             `json:"status"`
	Remarks            string             `json:"remarks"`
	CreatedBy          uuid.UUID          `json:"created_by"`
	Travelers          []TravelerResponse `json:"travelers,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type BookingListQuery struct {
	PageQuery
	Status string `query:"status"`
	Search string `query:"search"`
}

type QuickBookingRequest struct {
	FirstName         string           `json:"first_name" validate:"required,max=100"`
	LastName          string           `json:"last_name" validate:"max=100"`
	Email             string           `json:"email" validate:"omitempty,email"`
	Mobile            string           `json:"mobile" validate:"required,max=20"`
	TravelMonth       string           `json:"travel_month" validate:"max=50"`
	Destination       string           `json:"destination" validate:"max=200"`
	NumberOfTravelers int              `json:"number_of_travelers" validate:"gte=1"`
	Budget            *decimal.Decimal `json:"budget" validate:"omitempty,gte=0"`
	PreferredPayment  string           `json:"preferred_payment" validate:"omitempty,oneof=full_advance partial_advance pay_later"`
	Payment           *decimal.Decimal `json:"payment" validate:"omitempty,gte=0"`
}

type QuickBookingResponse struct {
	Id                       uuid.UUID        `json:"id"`
	QbNumber                 string           `json:"qb_number"`
	FirstName                string           `json:"first_name"`
	LastName                 string           `json:"last_name"`
	Email                    string           `json:"email"`
	Mobile                   string           `json:"mobile"`
	TravelMonth              string           `json:"travel_month"`
	Destination              string           `json:"destination"`
	NumberOfTravelers        int              `json:"number_of_travelers"`
	Budget                   *decimal.Decimal `json:"budget"`
	PreferredPayment         string           `json:"preferred_payment"`
	Payment                  *decimal.Decimal `json:"payment"`
	Dues                     decimal.Decimal  `json:"dues"`
	TotalAmount              decimal.Decimal  `json:"total_amount"`
	PaymentStatus            string           `json:"payment_status"`
	IsConvertedToFullBooking bool             `json:"is_converted_to_full_booking"`
	ConvertedBooking         *uuid.UUID       `json:"converted_booking"`
	CreatedBy                uuid.UUID        `json:"created_by"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
}

type QuickBookingListQuery struct {
	PageQuery
	Search    string `query:"search"`
	Converted *bool  `query:"converted"`
}

type ConvertQuickBookingResponse struct {
	Message       string    `json:"message"`
	BookingId     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
}
