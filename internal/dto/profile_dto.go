// FILE: internal/dto/profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	FullName    string            `json:"full_name" validate:"required,min=3"`
	Phone       string            `json:"phone" validate:"omitempty,min=7,max=15"`
	Age         int               `json:"age" validate:"required,gte=18,lte=99"`
	Gender      string            `json:"gender" validate:"required,oneof=male female other"`
	Occupation  string            `json:"occupation" validate:"omitempty,max=100"`
	City        string            `json:"city" validate:"required,max=100"`
	About       string            `json:"about" validate:"omitempty,max=1000"`
	Interests   []string          `json:"interests" validate:"omitempty,max=20,dive,max=50"`
	SocialLinks map[string]string `json:"social_links" validate:"omitempty,max=10"`
	Smoking     bool              `json:"smoking"`
	Drinking    bool              `json:"drinking"`
	Vegetarian  bool              `json:"vegetarian"`
	Pets        bool              `json:"pets"`
}

type ProfileResponse struct {
	Id               uuid.UUID         `json:"id"`
	Email            string            `json:"email"`
	FullName         string            `json:"full_name"`
	Phone            string            `json:"phone,omitempty"`
	Age              int               `json:"age,omitempty"`
	Gender           string            `json:"gender,omitempty"`
	Occupation       string            `json:"occupation,omitempty"`
	City             string            `json:"city,omitempty"`
	About            string            `json:"about,omitempty"`
	PhotoURL         string            `json:"photo_url,omitempty"`
	Interests        []string          `json:"interests,omitempty"`
	SocialLinks      map[string]string `json:"social_links,omitempty"`
	DocumentURLs     []string          `json:"document_urls,omitempty"`
	Smoking          bool              `json:"smoking"`
	Drinking         bool              `json:"drinking"`
	Vegetarian       bool              `json:"vegetarian"`
	Pets             bool              `json:"pets"`
	ProfileCompleted bool              `json:"profile_completed"`
	IsPremium        bool              `json:"is_premium"`
	PremiumExpiry    *time.Time        `json:"premium_expiry,omitempty"`
	SubscriptionPlan string            `json:"subscription_plan,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
