// FILE: internal/service/identity_service.go
package service

import (
	"context"
	"errors"
	"time"

	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/pkg/apperror"
	"roombuddy-be/internal/repository/memory"
	"roombuddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExternalIdentity is what an auth provider tells us about a person.
type ExternalIdentity struct {
	Provider       string
	ProviderUserId string
	Email          string
	Name           string
	AvatarURL      string
}

// IIdentityService resolves an external identity to a local account,
// creating the account lazily on first sight. Resolution is idempotent:
// the same identity always lands on the same user, including under
// concurrent first logins.
type IIdentityService interface {
	Resolve(ctx context.Context, ident ExternalIdentity) (*entity.User, error)
}

type identityService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.IdentityCache
}

func NewIdentityService(uowFactory unitofwork.RepositoryFactory, cache *memory.IdentityCache) IIdentityService {
	return &identityService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *identityService) Resolve(ctx context.Context, ident ExternalIdentity) (*entity.User, error) {
	if ident.Provider == "" || ident.ProviderUserId == "" || ident.Email == "" {
		return nil, apperror.InvalidInput("incomplete provider identity")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	userRepo := uow.UserRepository()

	// Fast path: recently resolved identity.
	if userId, ok := s.cache.Get(ident.Provider, ident.ProviderUserId); ok {
		user, err := userRepo.FindById(ctx, userId)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
		// Stale entry, fall through to the full lookup.
		s.cache.Delete(ident.Provider, ident.ProviderUserId)
	}

	// Known provider identity.
	provider, err := userRepo.FindProvider(ctx, ident.Provider, ident.ProviderUserId)
	if err != nil {
		return nil, err
	}
	if provider != nil {
		user, err := userRepo.FindById(ctx, provider.UserId)
		if err != nil {
			return nil, err
		}
		if user != nil {
			s.cache.Save(ident.Provider, ident.ProviderUserId, user.Id)
			return user, nil
		}
	}

	// Same email registered through another path: link, don't duplicate.
	user, err := userRepo.FindByEmail(ctx, ident.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		newUser := &entity.User{
			Id:            uuid.New(),
			Email:         ident.Email,
			FullName:      ident.Name,
			Role:          entity.UserRoleUser,
			Status:        entity.UserStatusActive,
			EmailVerified: true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			// A concurrent resolve won the insert race on the email
			// unique index. Re-read and continue with that row.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				user, err = userRepo.FindByEmail(ctx, ident.Email)
				if err != nil {
					return nil, err
				}
				if user == nil {
					return nil, apperror.Wrap(err, "failed to resolve identity after duplicate insert")
				}
			} else {
				return nil, err
			}
		} else {
			user = newUser
		}
	}

	userProvider := &entity.UserProvider{
		Id:             uuid.New(),
		UserId:         user.Id,
		ProviderName:   ident.Provider,
		ProviderUserId: ident.ProviderUserId,
		AvatarURL:      ident.AvatarURL,
		CreatedAt:      time.Now(),
	}
	if err := userRepo.SaveProvider(ctx, userProvider); err != nil {
		return nil, err
	}

	s.cache.Save(ident.Provider, ident.ProviderUserId, user.Id)
	return user, nil
}
