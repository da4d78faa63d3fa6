package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Post struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	City        string    `gorm:"type:varchar(100);not null;index"`
	Area        string    `gorm:"type:varchar(100)"`
	BudgetMin   int       `gorm:"not null;index"`
	BudgetMax   int       `gorm:"not null;index"`
	Gender      string    `gorm:"type:varchar(20);index"`
	RoomType    string    `gorm:"type:varchar(50)"`
	MoveInDate  *time.Time

	OwnerName   string                      `gorm:"type:varchar(255);not null"`
	OwnerAge    int                         `gorm:"default:0"`
	OwnerGender string                      `gorm:"type:varchar(20)"`
	OwnerPhone  string                      `gorm:"type:varchar(20)"`
	PhotoURL    *string                     `gorm:"type:text"`
	Interests   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Smoking     bool                        `gorm:"default:false"`
	Drinking    bool                        `gorm:"default:false"`
	Vegetarian  bool                        `gorm:"default:false"`
	Pets        bool                        `gorm:"default:false"`

	IsActive  bool           `gorm:"default:true;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Post) TableName() string {
	return "posts"
}
