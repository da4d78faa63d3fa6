package model

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId   string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PaymentId *string   `gorm:"type:varchar(100)"`
	Plan      string    `gorm:"type:varchar(20);not null"`
	Amount    int       `gorm:"not null"`
	Currency  string    `gorm:"type:varchar(10);not null;default:'INR'"`
	Receipt   string    `gorm:"type:varchar(100)"`
	Status    string    `gorm:"type:varchar(20);not null;default:'created';index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
