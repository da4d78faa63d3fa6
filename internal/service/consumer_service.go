// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"roombuddy-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IConsumerService drains the connection alert topic and turns each
// message into an email.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(subscriber message.Subscriber, topicName string, emailService mailer.IEmailService) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var alert ConnectionAlert
	if err := json.Unmarshal(msg.Payload, &alert); err != nil {
		log.Printf("[ERROR] Failed to unmarshal alert message: %v", err)
		// Ack malformed messages, retrying cannot fix them.
		msg.Ack()
		return
	}

	if alert.RecipientEmail == "" {
		msg.Ack()
		return
	}

	var err error
	switch alert.Kind {
	case "accepted":
		err = cs.emailService.SendConnectionAccepted(alert.RecipientEmail, alert.RecipientName, alert.CounterpartName)
	default:
		err = cs.emailService.SendConnectionRequest(alert.RecipientEmail, alert.RecipientName, alert.CounterpartName, alert.PostCity)
	}

	if err != nil {
		log.Printf("[ERROR] Failed to send connection email to %s: %v", alert.RecipientEmail, err)
		msg.Nack() // retry
		return
	}

	msg.Ack()
}
