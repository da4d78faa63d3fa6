package mapper

import (
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/model"
)

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:        p.Id,
		UserId:    p.UserId,
		OrderId:   p.OrderId,
		PaymentId: p.PaymentId,
		Plan:      entity.SubscriptionPlan(p.Plan),
		Amount:    p.Amount,
		Currency:  p.Currency,
		Receipt:   p.Receipt,
		Status:    entity.PaymentStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:        p.Id,
		UserId:    p.UserId,
		OrderId:   p.OrderId,
		PaymentId: p.PaymentId,
		Plan:      string(p.Plan),
		Amount:    p.Amount,
		Currency:  p.Currency,
		Receipt:   p.Receipt,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToEntities(payments []*model.Payment) []*entity.Payment {
	entities := make([]*entity.Payment, len(payments))
	for i, p := range payments {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
