package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// SubscriptionPlan identifies a purchasable premium plan.
type SubscriptionPlan string

const (
	PlanSixMonths SubscriptionPlan = "6_months"
	PlanOneYear   SubscriptionPlan = "1_year"
)

type User struct {
	Id              uuid.UUID
	Email           string
	PasswordHash    *string
	FullName        string
	Role            UserRole
	Status          UserStatus
	EmailVerified   bool
	EmailVerifiedAt *time.Time

	// Roommate profile
	Phone            string
	Age              int
	Gender           string
	Occupation       string
	City             string
	About            string
	PhotoURL         *string
	Interests        []string
	SocialLinks      map[string]string
	DocumentURLs     []string
	Smoking          bool
	Drinking         bool
	Vegetarian       bool
	Pets             bool
	ProfileCompleted bool

	// Premium entitlement
	IsPremium        bool
	PremiumExpiry    *time.Time
	SubscriptionPlan *SubscriptionPlan

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasActivePremium reports whether the entitlement is live at the given
// instant. Both the flag and the expiry must agree.
func (u *User) HasActivePremium(now time.Time) bool {
	return u.IsPremium && u.PremiumExpiry != nil && u.PremiumExpiry.After(now)
}

type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	AvatarURL      string
	CreatedAt      time.Time
}

type EmailVerificationToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	IpAddress string
	UserAgent string
}
