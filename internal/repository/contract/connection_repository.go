package contract

import (
	"context"

	"roombuddy-be/internal/entity"

	"github.com/google/uuid"
)

type ConnectionRepository interface {
	// Create relies on the (sender_id, post_id) unique constraint and
	// surfaces gorm.ErrDuplicatedKey on a duplicate send.
	Create(ctx context.Context, request *entity.ConnectionRequest) error
	// UpdateStatus transitions a pending request only; it returns
	// gorm.ErrRecordNotFound when the row is missing or already settled.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindById(ctx context.Context, id uuid.UUID) (*entity.ConnectionRequest, error)
	FindBySenderAndPost(ctx context.Context, senderId, postId uuid.UUID) (*entity.ConnectionRequest, error)

	ListByReceiver(ctx context.Context, receiverId uuid.UUID, status entity.RequestStatus) ([]*entity.ConnectionRequest, error)
	// ListReceived returns every request addressed to the user,
	// whatever its status.
	ListReceived(ctx context.Context, receiverId uuid.UUID) ([]*entity.ConnectionRequest, error)
	ListBySender(ctx context.Context, senderId uuid.UUID) ([]*entity.ConnectionRequest, error)
	// ListAcceptedFor returns accepted requests where the user is on
	// either side, most recently updated first.
	ListAcceptedFor(ctx context.Context, userId uuid.UUID) ([]*entity.ConnectionRequest, error)
}
