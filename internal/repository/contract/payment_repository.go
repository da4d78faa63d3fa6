package contract

import (
	"context"

	"roombuddy-be/internal/entity"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByOrderId(ctx context.Context, orderId string) (*entity.Payment, error)
	// MarkStatus updates the status and optionally records the gateway
	// payment id delivered by the checkout callback.
	MarkStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paymentId *string) error
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Payment, error)
}
