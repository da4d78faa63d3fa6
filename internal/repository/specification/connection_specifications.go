package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySenderAndPost pins down the unique (sender, post) pair.
type BySenderAndPost struct {
	SenderID uuid.UUID
	PostID   uuid.UUID
}

func (s BySenderAndPost) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ? AND post_id = ?", s.SenderID, s.PostID)
}

type ReceiverIs struct {
	ReceiverID uuid.UUID
}

func (s ReceiverIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("receiver_id = ?", s.ReceiverID)
}

type SenderIs struct {
	SenderID uuid.UUID
}

func (s SenderIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ?", s.SenderID)
}

// ParticipantIs matches rows where the user is on either side.
type ParticipantIs struct {
	UserID uuid.UUID
}

func (s ParticipantIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ? OR receiver_id = ?", s.UserID, s.UserID)
}

type StatusIs struct {
	Status string
}

func (s StatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByOrderId matches a payment by its gateway order identifier.
type ByOrderId struct {
	OrderId string
}

func (s ByOrderId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_id = ?", s.OrderId)
}
