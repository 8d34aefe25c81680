package service

import (
	"context"

	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/pkg/events"
	pktNats "travel-backoffice-be/pkg/nats"
)

const activityDurable = "backoffice-activity"

type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

// ActivityService reads every published domain event back off JetStream
// and records it in the structured log and the metrics registry.
type ActivityService struct {
	subscriber EventSubscriber
	metrics    *metrics.Metrics
	logger     logger.ILogger
}

func NewActivityService(sub EventSubscriber, m *metrics.Metrics, log logger.ILogger) *ActivityService {
	return &ActivityService{subscriber: sub, metrics: m, logger: log}
}

func (s *ActivityService) Start(ctx context.Context) error {
	if err := s.subscriber.Subscribe(ctx, pktNats.SubjectPrefix+">", activityDurable, s.handleEvent); err != nil {
		return err
	}
	s.logger.Info("ActivityService", "Listening for domain events", map[string]interface{}{"durable": activityDurable})
	return nil
}

func (s *ActivityService) handleEvent(_ context.Context, event events.Event) error {
	details := map[string]interface{}{
		"type":        event.EventType(),
		"occurred_at": event.Timestamp(),
	}
	for k, v := range event.Payload() {
		details[k] = v
	}
	s.logger.Info("ActivityService", "Domain event", details)
	s.metrics.EventConsumed(event.EventType())
	return nil
}
