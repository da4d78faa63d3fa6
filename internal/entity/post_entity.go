package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a roommate requirement listing. It carries a denormalized
// snapshot of the owner at publish time so search results render without
// joining the users table.
type Post struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Description string
	City        string
	Area        string
	BudgetMin   int
	BudgetMax   int
	Gender      string
	RoomType    string
	MoveInDate  *time.Time

	// Owner snapshot
	OwnerName   string
	OwnerAge    int
	OwnerGender string
	OwnerPhone  string
	PhotoURL    *string
	Interests   []string
	Smoking     bool
	Drinking    bool
	Vegetarian  bool
	Pets        bool

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostFilter holds optional search criteria, AND-combined.
type PostFilter struct {
	City      string
	BudgetMin *int
	BudgetMax *int
	Gender    string
	Limit     int
	Offset    int
}
