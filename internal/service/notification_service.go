package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"roombuddy-be/internal/model"
	"roombuddy-be/internal/pkg/logger"
	"roombuddy-be/internal/repository"
	"roombuddy-be/pkg/events"
	pktNats "roombuddy-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery pushes real-time updates to connected clients.
// Implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject carries the type with an "events." prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Config not found for code: '%s'", typeCode), map[string]interface{}{"error": err.Error()})
		return nil
	}
	if !config.IsActive {
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, config, event)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error resolving recipients for %s", typeCode), map[string]interface{}{"error": err})
		return err // NATS redelivers on error
	}

	for _, userID := range recipients {
		notif := s.buildNotification(userID, config, event)

		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(userID, notif)
		}
	}

	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, config *model.NotificationType, event events.Event) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	switch config.TargetType {
	case "SELF":
		// Convention: the payload names its recipient as "user_id".
		if uidStr, ok := event.Payload()["user_id"].(string); ok {
			uid, err := uuid.Parse(uidStr)
			if err == nil {
				userIDs = append(userIDs, uid)
			}
		} else {
			s.logger.Warn("NotificationService", fmt.Sprintf("TargetType SELF but no user_id in payload for event %s", event.EventType()), nil)
		}

	case "BROADCAST":
		ids, err := s.repo.GetActiveUserIDs(ctx)
		if err != nil {
			return nil, err
		}
		userIDs = ids
	}

	return userIDs, nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, config *model.NotificationType, event events.Event) model.Notification {
	// Simple template engine: {key} placeholders filled from the payload.
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		valStr := fmt.Sprintf("%v", v)
		msg = strings.ReplaceAll(msg, placeholder, valStr)
	}

	var actorID *uuid.UUID
	if actorStr, ok := payload["actor_id"].(string); ok {
		if aid, err := uuid.Parse(actorStr); err == nil {
			actorID = &aid
		}
	}

	entityType := ""
	var entityID *uuid.UUID

	if et, ok := payload["entity_type"].(string); ok {
		entityType = et
	}
	if eidStr, ok := payload["entity_id"].(string); ok {
		if eid, err := uuid.Parse(eidStr); err == nil {
			entityID = &eid
		}
	}

	// Metadata carries the payload plus an action_url for deep linking.
	metaMap := make(map[string]interface{})
	for k, v := range payload {
		metaMap[k] = v
	}
	if entityType != "" && entityID != nil {
		metaMap["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID.String())
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		ActorID:    actorID,
		TypeCode:   config.Code,
		Title:      config.DisplayName,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
