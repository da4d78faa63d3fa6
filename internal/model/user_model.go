package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash    *string   `gorm:"type:varchar(255)"`
	FullName        string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(50);not null;default:'user'"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending'"`
	EmailVerified   bool      `gorm:"default:false"`
	EmailVerifiedAt *time.Time

	Phone            string                      `gorm:"type:varchar(20)"`
	Age              int                         `gorm:"default:0"`
	Gender           string                      `gorm:"type:varchar(20)"`
	Occupation       string                      `gorm:"type:varchar(100)"`
	City             string                      `gorm:"type:varchar(100);index"`
	About            string                      `gorm:"type:text"`
	PhotoURL         *string                     `gorm:"type:text"`
	Interests        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	SocialLinks      datatypes.JSONType[map[string]string]
	DocumentURLs     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Smoking          bool                        `gorm:"default:false"`
	Drinking         bool                        `gorm:"default:false"`
	Vegetarian       bool                        `gorm:"default:false"`
	Pets             bool                        `gorm:"default:false"`
	ProfileCompleted bool                        `gorm:"default:false"`

	IsPremium        bool `gorm:"default:false"`
	PremiumExpiry    *time.Time
	SubscriptionPlan *string `gorm:"type:varchar(20)"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

type UserProvider struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderName   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_provider_identity,priority:1"`
	ProviderUserId string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_provider_identity,priority:2"`
	AvatarURL      string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (UserProvider) TableName() string {
	return "user_providers"
}

type EmailVerificationToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(255);not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (EmailVerificationToken) TableName() string {
	return "email_verification_tokens"
}

type UserRefreshToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
	IpAddress string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserRefreshToken) TableName() string {
	return "user_refresh_tokens"
}
