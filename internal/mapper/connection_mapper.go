package mapper

import (
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/model"
)

type ConnectionMapper struct{}

func NewConnectionMapper() *ConnectionMapper {
	return &ConnectionMapper{}
}

func (m *ConnectionMapper) ToEntity(c *model.ConnectionRequest) *entity.ConnectionRequest {
	if c == nil {
		return nil
	}
	return &entity.ConnectionRequest{
		Id:         c.Id,
		SenderId:   c.SenderId,
		ReceiverId: c.ReceiverId,
		PostId:     c.PostId,
		Status:     entity.RequestStatus(c.Status),
		Message:    c.Message,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *ConnectionMapper) ToModel(c *entity.ConnectionRequest) *model.ConnectionRequest {
	if c == nil {
		return nil
	}
	return &model.ConnectionRequest{
		Id:         c.Id,
		SenderId:   c.SenderId,
		ReceiverId: c.ReceiverId,
		PostId:     c.PostId,
		Status:     string(c.Status),
		Message:    c.Message,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *ConnectionMapper) ToEntities(requests []*model.ConnectionRequest) []*entity.ConnectionRequest {
	entities := make([]*entity.ConnectionRequest, len(requests))
	for i, c := range requests {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
