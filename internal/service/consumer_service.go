package service

import (
	"context"
	"encoding/json"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/mailer"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
)

const consumerModule = "ConsumerService"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService mails the API key owner about each new contact submission.
type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ContactSubmittedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error(consumerModule, "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: payload.ContactId})
	if err != nil {
		cs.log.Error(consumerModule, "Failed to load contact", map[string]interface{}{
			"contact_id": payload.ContactId.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}
	// Deleted before we got to it.
	if contact == nil {
		msg.Ack()
		return
	}

	key, err := uow.APIKeyRepository().FindOne(ctx, specification.ByID{ID: payload.ApiKeyId})
	if err != nil {
		msg.Nack()
		return
	}
	if key == nil {
		msg.Ack()
		return
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: key.UserId})
	if err != nil {
		msg.Nack()
		return
	}
	if owner == nil || owner.Email == "" {
		msg.Ack()
		return
	}

	err = cs.emailService.SendContactNotification(owner.Email, mailer.ContactNotice{
		Name:       contact.Name,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Subject:    contact.Subject,
		Message:    contact.Message,
		APIKeyName: key.Name,
	})
	if err != nil {
		// SMTP failures are not retried; the submission itself is stored.
		cs.log.Warn(consumerModule, "Failed to notify key owner", map[string]interface{}{
			"contact_id": contact.Id.String(),
			"owner_id":   owner.Id.String(),
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	cs.log.Info(consumerModule, "Key owner notified", map[string]interface{}{
		"contact_id": contact.Id.String(),
		"owner_id":   owner.Id.String(),
	})
	msg.Ack()
}
