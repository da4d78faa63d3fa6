package mapper

import (
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/model"

	"gorm.io/datatypes"
)

type PostMapper struct{}

func NewPostMapper() *PostMapper {
	return &PostMapper{}
}

func (m *PostMapper) ToEntity(p *model.Post) *entity.Post {
	if p == nil {
		return nil
	}
	return &entity.Post{
		Id:          p.Id,
		UserId:      p.UserId,
		Description: p.Description,
		City:        p.City,
		Area:        p.Area,
		BudgetMin:   p.BudgetMin,
		BudgetMax:   p.BudgetMax,
		Gender:      p.Gender,
		RoomType:    p.RoomType,
		MoveInDate:  p.MoveInDate,
		OwnerName:   p.OwnerName,
		OwnerAge:    p.OwnerAge,
		OwnerGender: p.OwnerGender,
		OwnerPhone:  p.OwnerPhone,
		PhotoURL:    p.PhotoURL,
		Interests:   p.Interests,
		Smoking:     p.Smoking,
		Drinking:    p.Drinking,
		Vegetarian:  p.Vegetarian,
		Pets:        p.Pets,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PostMapper) ToModel(p *entity.Post) *model.Post {
	if p == nil {
		return nil
	}
	return &model.Post{
		Id:          p.Id,
		UserId:      p.UserId,
		Description: p.Description,
		City:        p.City,
		Area:        p.Area,
		BudgetMin:   p.BudgetMin,
		BudgetMax:   p.BudgetMax,
		Gender:      p.Gender,
		RoomType:    p.RoomType,
		MoveInDate:  p.MoveInDate,
		OwnerName:   p.OwnerName,
		OwnerAge:    p.OwnerAge,
		OwnerGender: p.OwnerGender,
		OwnerPhone:  p.OwnerPhone,
		PhotoURL:    p.PhotoURL,
		Interests:   datatypes.NewJSONSlice(p.Interests),
		Smoking:     p.Smoking,
		Drinking:    p.Drinking,
		Vegetarian:  p.Vegetarian,
		Pets:        p.Pets,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PostMapper) ToEntities(posts []*model.Post) []*entity.Post {
	entities := make([]*entity.Post, len(posts))
	for i, p := range posts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
