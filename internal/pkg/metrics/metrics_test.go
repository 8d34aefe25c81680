package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", m.Handler())

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/ping", "200")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "http_requests_total")
}

func TestDomainCounters(t *testing.T) {
	m := New()
	m.EntityCreated("booking")
	m.EntityCreated("booking")
	m.Transition("payment", "inprocess", "completed")
	m.DocumentGenerated("receipt", nil)
	m.DocumentGenerated("receipt", errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.entitiesCreated.WithLabelValues("booking")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.transitions.WithLabelValues("payment", "inprocess", "completed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.documents.WithLabelValues("receipt", "error")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.EntityCreated("booking") })
}
