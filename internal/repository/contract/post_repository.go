package contract

import (
	"context"

	"roombuddy-be/internal/entity"

	"github.com/google/uuid"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error)
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Post, error)

	// Search returns active posts matching the filter, newest first.
	Search(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
}
