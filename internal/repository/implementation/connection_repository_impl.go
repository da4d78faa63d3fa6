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

type ConnectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConnectionMapper
}

func NewConnectionRepository(db *gorm.DB) contract.ConnectionRepository {
	return &ConnectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewConnectionMapper(),
	}
}

func (r *ConnectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConnectionRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.ConnectionRequest, error) {
	var m model.ConnectionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ConnectionRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConnectionRequest, error) {
	var ms []*model.ConnectionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *ConnectionRepositoryImpl) Create(ctx context.Context, request *entity.ConnectionRequest) error {
	m := r.mapper.ToModel(request)
	// TranslateError is enabled on the connection, so a duplicate
	// (sender_id, post_id) insert comes back as gorm.ErrDuplicatedKey.
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConnectionRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	// Only a pending row may transition, so a concurrent respond that
	// already settled it matches nothing.
	result := r.db.WithContext(ctx).
		Model(&model.ConnectionRequest{}).
		Where("id = ? AND status = ?", id, string(entity.RequestStatusPending)).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ConnectionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ConnectionRequest{}).Error
}

func (r *ConnectionRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.ConnectionRequest, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ConnectionRepositoryImpl) FindBySenderAndPost(ctx context.Context, senderId, postId uuid.UUID) (*entity.ConnectionRequest, error) {
	return r.findOne(ctx, specification.BySenderAndPost{SenderID: senderId, PostID: postId})
}

func (r *ConnectionRepositoryImpl) ListByReceiver(ctx context.Context, receiverId uuid.UUID, status entity.RequestStatus) ([]*entity.ConnectionRequest, error) {
	return r.findAll(ctx,
		specification.ReceiverIs{ReceiverID: receiverId},
		specification.StatusIs{Status: string(status)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (r *ConnectionRepositoryImpl) ListReceived(ctx context.Context, receiverId uuid.UUID) ([]*entity.ConnectionRequest, error) {
	return r.findAll(ctx,
		specification.ReceiverIs{ReceiverID: receiverId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (r *ConnectionRepositoryImpl) ListBySender(ctx context.Context, senderId uuid.UUID) ([]*entity.ConnectionRequest, error) {
	return r.findAll(ctx,
		specification.SenderIs{SenderID: senderId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (r *ConnectionRepositoryImpl) ListAcceptedFor(ctx context.Context, userId uuid.UUID) ([]*entity.ConnectionRequest, error) {
	return r.findAll(ctx,
		specification.StatusIs{Status: string(entity.RequestStatusAccepted)},
		specification.ParticipantIs{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
}
