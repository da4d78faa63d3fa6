// FILE: internal/dto/connection_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendRequestRequest struct {
	PostId  uuid.UUID `json:"post_id" validate:"required"`
	Message string    `json:"message" validate:"omitempty,max=500"`
}

type RespondRequestRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

type ConnectionRequestResponse struct {
	Id         uuid.UUID `json:"id"`
	SenderId   uuid.UUID `json:"sender_id"`
	ReceiverId uuid.UUID `json:"receiver_id"`
	PostId     uuid.UUID `json:"post_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RequestsInboxResponse holds both directions of the requests page:
// everything the user sent and everything addressed to them.
type RequestsInboxResponse struct {
	Sent     []*ConnectionRequestResponse `json:"sent"`
	Received []*ConnectionRequestResponse `json:"received"`
}

// PendingRequestDTO is one inbox entry for a post owner, with enough
// sender and post context to decide without extra lookups.
type PendingRequestDTO struct {
	Id        uuid.UUID     `json:"id"`
	Sender    PostOwnerDTO  `json:"sender"`
	Post      *PostResponse `json:"post,omitempty"`
	Message   string        `json:"message,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type PendingRequestsResponse struct {
	Requests []PendingRequestDTO `json:"requests"`
	Count    int                 `json:"count"`
}

// BuddyDTO is the counterparty of an accepted connection. Contact fields
// are blanked for non-premium viewers.
type BuddyDTO struct {
	Id          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Age         int               `json:"age,omitempty"`
	Gender      string            `json:"gender,omitempty"`
	City        string            `json:"city,omitempty"`
	PhotoURL    string            `json:"photo_url,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Email       string            `json:"email,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

type AcceptedConnectionDTO struct {
	Id          uuid.UUID     `json:"id"`
	Buddy       BuddyDTO      `json:"buddy"`
	PostId      uuid.UUID     `json:"post_id"`
	Post        *PostResponse `json:"post,omitempty"`
	ConnectedAt time.Time     `json:"connected_at"`
}
