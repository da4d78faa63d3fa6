package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes. These double as notification type codes in the registry.
const (
	TypeConnectionRequestSent     = "CONNECTION_REQUEST_SENT"
	TypeConnectionRequestAccepted = "CONNECTION_REQUEST_ACCEPTED"
	TypePaymentSucceeded          = "PAYMENT_SUCCEEDED"
)

// NewConnectionRequestSent is published when a request lands in a post
// owner's inbox. user_id is the notification recipient (the receiver).
func NewConnectionRequestSent(requestId, senderId, receiverId, postId uuid.UUID, senderName string) Event {
	return BaseEvent{
		Type: TypeConnectionRequestSent,
		Data: map[string]interface{}{
			"user_id":     receiverId.String(),
			"actor_id":    senderId.String(),
			"entity_type": "connection_request",
			"entity_id":   requestId.String(),
			"post_id":     postId.String(),
			"sender_name": senderName,
		},
		OccurredAt: time.Now(),
	}
}

// NewConnectionRequestAccepted notifies the original sender.
func NewConnectionRequestAccepted(requestId, senderId, receiverId uuid.UUID, receiverName string) Event {
	return BaseEvent{
		Type: TypeConnectionRequestAccepted,
		Data: map[string]interface{}{
			"user_id":       senderId.String(),
			"actor_id":      receiverId.String(),
			"entity_type":   "connection_request",
			"entity_id":     requestId.String(),
			"receiver_name": receiverName,
		},
		OccurredAt: time.Now(),
	}
}

// NewPaymentSucceeded notifies the paying user after premium is applied.
func NewPaymentSucceeded(paymentId, userId uuid.UUID, plan string, amount int) Event {
	return BaseEvent{
		Type: TypePaymentSucceeded,
		Data: map[string]interface{}{
			"user_id":     userId.String(),
			"entity_type": "payment",
			"entity_id":   paymentId.String(),
			"plan":        plan,
			"amount":      amount,
		},
		OccurredAt: time.Now(),
	}
}
