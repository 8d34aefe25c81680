package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	entitiesCreated *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	enquiries       *prometheus.CounterVec
	documents       *prometheus.CounterVec
	eventsConsumed  *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		entitiesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_entities_created_total",
			Help: "Bookings, quick bookings, visa applications and payments created.",
		}, []string{"entity"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_status_transitions_total",
			Help: "Status transitions applied per entity.",
		}, []string{"entity", "from", "to"}),
		enquiries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_enquiries_ingested_total",
			Help: "Enquiries and contact submissions received.",
		}, []string{"channel"}),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_documents_generated_total",
			Help: "Rendered receipts, certificates and posters by outcome.",
		}, []string{"kind", "outcome"}),
		eventsConsumed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_domain_events_consumed_total",
			Help: "Domain events read back from the JetStream activity consumer.",
		}, []string{"type"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.latency, m.entitiesCreated, m.transitions, m.enquiries, m.documents, m.eventsConsumed,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request count and latency keyed by the matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		route := ctx.Route().Path
		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.requests.WithLabelValues(ctx.Method(), route, strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(ctx.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) EntityCreated(entity string) {
	if m == nil {
		return
	}
	m.entitiesCreated.WithLabelValues(entity).Inc()
}

func (m *Metrics) Transition(entity, from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(entity, from, to).Inc()
}

func (m *Metrics) EnquiryIngested(channel string) {
	if m == nil {
		return
	}
	m.enquiries.WithLabelValues(channel).Inc()
}

func (m *Metrics) DocumentGenerated(kind string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.documents.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) EventConsumed(eventType string) {
	if m == nil {
		return
	}
	m.eventsConsumed.WithLabelValues(eventType).Inc()
}
