// FILE: internal/service/publisher_service.go
package service

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicConnectionAlerts carries in-process messages that end up as emails.
const TopicConnectionAlerts = "CONNECTION_ALERTS"

// ConnectionAlert is the payload for a connection email notification.
type ConnectionAlert struct {
	Kind            string `json:"kind"` // "sent" or "accepted"
	RecipientEmail  string `json:"recipient_email"`
	RecipientName   string `json:"recipient_name"`
	CounterpartName string `json:"counterpart_name"`
	PostCity        string `json:"post_city"`
}

type IPublisherService interface {
	PublishConnectionAlert(alert ConnectionAlert) error
	Subscriber() message.Subscriber
	Close() error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService() IPublisherService {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	return &publisherService{pubSub: pubSub}
}

func (s *publisherService) PublishConnectionAlert(alert ConnectionAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(TopicConnectionAlerts, msg)
}

func (s *publisherService) Subscriber() message.Subscriber {
	return s.pubSub
}

func (s *publisherService) Close() error {
	return s.pubSub.Close()
}
