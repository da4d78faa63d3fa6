// FILE: internal/dto/post_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Description string     `json:"description" validate:"required,min=10,max=2000"`
	City        string     `json:"city" validate:"required,max=100"`
	Area        string     `json:"area" validate:"omitempty,max=100"`
	BudgetMin   int        `json:"budget_min" validate:"required,gte=0"`
	BudgetMax   int        `json:"budget_max" validate:"required,gtefield=BudgetMin"`
	Gender      string     `json:"gender" validate:"required,oneof=male female any"`
	RoomType    string     `json:"room_type" validate:"omitempty,oneof=private shared studio"`
	MoveInDate  *time.Time `json:"move_in_date"`
}

type UpdatePostRequest struct {
	Description string     `json:"description" validate:"required,min=10,max=2000"`
	City        string     `json:"city" validate:"required,max=100"`
	Area        string     `json:"area" validate:"omitempty,max=100"`
	BudgetMin   int        `json:"budget_min" validate:"required,gte=0"`
	BudgetMax   int        `json:"budget_max" validate:"required,gtefield=BudgetMin"`
	Gender      string     `json:"gender" validate:"required,oneof=male female any"`
	RoomType    string     `json:"room_type" validate:"omitempty,oneof=private shared studio"`
	MoveInDate  *time.Time `json:"move_in_date"`
	IsActive    *bool      `json:"is_active"`
}

type SearchPostsRequest struct {
	City      string `query:"city" validate:"omitempty,max=100"`
	BudgetMin *int   `query:"budget_min" validate:"omitempty,gte=0"`
	BudgetMax *int   `query:"budget_max" validate:"omitempty,gte=0"`
	Gender    string `query:"gender" validate:"omitempty,oneof=male female any"`
	Limit     int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset    int    `query:"offset" validate:"omitempty,gte=0"`
}

type PostOwnerDTO struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	Interests  []string  `json:"interests,omitempty"`
	Smoking    bool      `json:"smoking"`
	Drinking   bool      `json:"drinking"`
	Vegetarian bool      `json:"vegetarian"`
	Pets       bool      `json:"pets"`
}

type PostResponse struct {
	Id          uuid.UUID    `json:"id"`
	Owner       PostOwnerDTO `json:"owner"`
	Description string       `json:"description"`
	City        string       `json:"city"`
	Area        string       `json:"area,omitempty"`
	BudgetMin   int          `json:"budget_min"`
	BudgetMax   int          `json:"budget_max"`
	Gender      string       `json:"gender"`
	RoomType    string       `json:"room_type,omitempty"`
	MoveInDate  *time.Time   `json:"move_in_date,omitempty"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
}
