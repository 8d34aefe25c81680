package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeKeepsTypeAndData(t *testing.T) {
	e := New(BookingCreated, map[string]interface{}{"booking_number": "BK1A2B3C4D"})

	raw, err := Marshal(e)
	require.NoError(t, err)

	back, err := Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, BookingCreated, back.EventType())
	assert.Equal(t, "BK1A2B3C4D", back.Payload()["booking_number"])
	assert.True(t, e.Timestamp().Equal(back.Timestamp()))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), New(PaymentCreated, nil)))
}
