package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMachine(t *testing.T) {
	tests := []struct {
		from, to State
		ok       bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCompleted, BookingCancelled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, Booking.CanTransition(tt.from, tt.to))
		})
	}
	assert.True(t, Booking.IsTerminal(BookingCancelled))
	assert.True(t, Booking.IsTerminal(BookingCompleted))
	assert.False(t, Booking.IsTerminal(BookingPending))
}

func TestVisaProcessing(t *testing.T) {
	err := VisaProcessing(VisaSubmitted, VisaIssued)
	require.Error(t, err)
	assert.Equal(t, "Cannot change status from submitted to issued", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, VisaSubmitted, te.From)

	assert.NoError(t, VisaProcessing(VisaSubmitted, VisaUnderReview))
	assert.NoError(t, VisaProcessing(VisaUnderReview, VisaApproved))
	assert.NoError(t, VisaProcessing(VisaApproved, VisaIssued))
	assert.NoError(t, VisaProcessing(VisaApproved, VisaRejected))
	assert.Error(t, VisaProcessing(VisaDraft, VisaSubmitted), "submit is owner only")
	assert.Error(t, VisaProcessing(VisaRejected, VisaSubmitted))
	assert.Error(t, VisaProcessing(VisaIssued, VisaRejected))
}

func TestPaymentMachine(t *testing.T) {
	assert.NoError(t, Payment.Transition(PaymentInProcess, PaymentCompleted))
	assert.NoError(t, Payment.Transition(PaymentRejected, PaymentInProcess))
	assert.Error(t, Payment.Transition(PaymentCompleted, PaymentRejected))
	assert.True(t, Payment.IsTerminal(PaymentCompleted))
	assert.ElementsMatch(t, []State{PaymentCompleted, PaymentRejected}, Payment.Targets(PaymentInProcess))
}

func TestQuickBookingConversion(t *testing.T) {
	assert.NoError(t, QuickBookingConversion.Transition(QuickBookingState(false), QuickBookingConverted))
	assert.Error(t, QuickBookingConversion.Transition(QuickBookingState(true), QuickBookingConverted))
}

func TestKnown(t *testing.T) {
	assert.True(t, Visa.Known(VisaIssued))
	assert.True(t, Visa.Known(VisaDraft))
	assert.False(t, Visa.Known("archived"))
}
