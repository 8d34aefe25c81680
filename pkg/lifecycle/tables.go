package lifecycle

const (
	BookingPending   State = "pending"
	BookingConfirmed State = "confirmed"
	BookingCancelled State = "cancelled"
	BookingCompleted State = "completed"
)

var Booking = NewMachine("booking", BookingPending, map[State][]State{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
})

const (
	VisaDraft       State = "draft"
	VisaSubmitted   State = "submitted"
	VisaUnderReview State = "under_review"
	VisaApproved    State = "approved"
	VisaRejected    State = "rejected"
	VisaIssued      State = "issued"
)

// Visa covers the owner's submit edge and the superadmin processing edges.
var Visa = NewMachine("visa_application", VisaDraft, map[State][]State{
	VisaDraft:       {VisaSubmitted},
	VisaSubmitted:   {VisaUnderReview, VisaRejected},
	VisaUnderReview: {VisaApproved, VisaRejected},
	VisaApproved:    {VisaIssued, VisaRejected},
})

// VisaProcessing is the subset reachable through the superadmin status update.
func VisaProcessing(from, to State) error {
	if from == VisaDraft || to == VisaSubmitted {
		return &TransitionError{From: from, To: to}
	}
	return Visa.Transition(from, to)
}

const (
	PaymentInProcess State = "inprocess"
	PaymentCompleted State = "completed"
	PaymentRejected  State = "rejected"
)

var Payment = NewMachine("payment", PaymentInProcess, map[State][]State{
	PaymentInProcess: {PaymentCompleted, PaymentRejected},
	PaymentRejected:  {PaymentInProcess},
})

const (
	QuickBookingOpen      State = "open"
	QuickBookingConverted State = "converted"
)

// QuickBookingConversion models the one-way is_converted_to_full_booking flag.
var QuickBookingConversion = NewMachine("quick_booking", QuickBookingOpen, map[State][]State{
	QuickBookingOpen: {QuickBookingConverted},
})

func QuickBookingState(converted bool) State {
	if converted {
		return QuickBookingConverted
	}
	return QuickBookingOpen
}
