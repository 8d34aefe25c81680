package service

import (
	"context"
	"testing"

	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/pkg/events"
	pktNats "travel-backoffice-be/pkg/nats"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSubscriber struct {
	subject string
	durable string
	handler pktNats.EventHandler
}

func (c *captureSubscriber) Subscribe(_ context.Context, subject, durable string, handler pktNats.EventHandler) error {
	c.subject, c.durable, c.handler = subject, durable, handler
	return nil
}

func TestActivityServiceConsumesDomainEvents(t *testing.T) {
	sub := &captureSubscriber{}
	m := metrics.New()
	svc := NewActivityService(sub, m, logger.NewNopLogger())

	require.NoError(t, svc.Start(bg))
	assert.Equal(t, "backoffice.>", sub.subject)
	assert.Equal(t, "backoffice-activity", sub.durable)
	require.NotNil(t, sub.handler)

	require.NoError(t, sub.handler(bg, events.New(events.BookingCreated, map[string]interface{}{"booking_number": "BK0000ABCD"})))
	require.NoError(t, sub.handler(bg, events.New(events.PaymentCreated, nil)))

	n, err := testutil.GatherAndCount(m.Registry(), "backoffice_domain_events_consumed_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
