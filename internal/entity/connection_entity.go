package entity

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// ConnectionRequest links a sender to the owner of a post. At most one
// request may exist per (sender, post) pair.
type ConnectionRequest struct {
	Id         uuid.UUID
	SenderId   uuid.UUID
	ReceiverId uuid.UUID
	PostId     uuid.UUID
	Status     RequestStatus
	Message    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsParticipant reports whether the user is the sender or the receiver.
func (c *ConnectionRequest) IsParticipant(userId uuid.UUID) bool {
	return c.SenderId == userId || c.ReceiverId == userId
}
