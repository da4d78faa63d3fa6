package contract

import (
	"context"
	"time"

	"roombuddy-be/internal/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// Business Specific
	ActivateUser(ctx context.Context, userId uuid.UUID) error
	GrantPremium(ctx context.Context, userId uuid.UUID, plan entity.SubscriptionPlan, expiry time.Time) error
	UpdatePhoto(ctx context.Context, userId uuid.UUID, photoURL string) error

	// Federated Identity
	SaveProvider(ctx context.Context, provider *entity.UserProvider) error
	FindProvider(ctx context.Context, providerName, providerUserId string) (*entity.UserProvider, error)

	// Token Management
	CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error
	FindEmailVerificationToken(ctx context.Context, userId uuid.UUID, token string) (*entity.EmailVerificationToken, error)
	DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error
	CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}
