package implementation

import (
	"context"
	"errors"

	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/mapper"
	"roombuddy-be/internal/model"
	"roombuddy-be/internal/repository/contract"
	"roombuddy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaymentMapper
}

func NewPaymentRepository(db *gorm.DB) contract.PaymentRepository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaymentMapper(),
	}
}

func (r *PaymentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *entity.Payment) error {
	m := r.mapper.ToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaymentRepositoryImpl) FindByOrderId(ctx context.Context, orderId string) (*entity.Payment, error) {
	var m model.Payment
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByOrderId{OrderId: orderId})

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *PaymentRepositoryImpl) MarkStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paymentId *string) error {
	updates := map[string]interface{}{
		"status": string(status),
	}
	if paymentId != nil {
		updates["payment_id"] = *paymentId
	}
	result := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) ListByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Payment, error) {
	var ms []*model.Payment
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}
