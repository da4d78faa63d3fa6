package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionRequest enforces one request per sender per post at the
// database level via the composite unique index.
type ConnectionRequest struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connection_sender_post,priority:1;index"`
	PostId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connection_sender_post,priority:2;index"`
	ReceiverId uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Message    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (ConnectionRequest) TableName() string {
	return "connection_requests"
}
