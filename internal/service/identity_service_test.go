package service

import (
	"context"
	"testing"

	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/pkg/apperror"
	"roombuddy-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func googleIdentity() ExternalIdentity {
	return ExternalIdentity{
		Provider:       "google",
		ProviderUserId: "goog-12345",
		Email:          "arjun@example.com",
		Name:           "Arjun Mehta",
		AvatarURL:      "https://lh3.example.com/photo.jpg",
	}
}

func TestResolveIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("first login creates an active verified user", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewIdentityService(factory, memory.NewIdentityCache())

		user, err := svc.Resolve(ctx, googleIdentity())
		require.NoError(t, err)
		assert.Equal(t, "arjun@example.com", user.Email)
		assert.Equal(t, entity.UserStatusActive, user.Status)
		assert.True(t, user.EmailVerified)

		provider, _ := factory.uow.users.FindProvider(ctx, "google", "goog-12345")
		require.NotNil(t, provider)
		assert.Equal(t, user.Id, provider.UserId)
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewIdentityService(factory, memory.NewIdentityCache())

		first, err := svc.Resolve(ctx, googleIdentity())
		require.NoError(t, err)
		second, err := svc.Resolve(ctx, googleIdentity())
		require.NoError(t, err)
		assert.Equal(t, first.Id, second.Id)
		assert.Len(t, factory.uow.users.users, 1)
	})

	t.Run("matching email links instead of duplicating", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewIdentityService(factory, memory.NewIdentityCache())

		existing := regularUser("Arjun Mehta")
		existing.Email = "arjun@example.com"
		factory.uow.users.users[existing.Id] = existing

		user, err := svc.Resolve(ctx, googleIdentity())
		require.NoError(t, err)
		assert.Equal(t, existing.Id, user.Id)
		assert.Len(t, factory.uow.users.users, 1)

		provider, _ := factory.uow.users.FindProvider(ctx, "google", "goog-12345")
		require.NotNil(t, provider)
		assert.Equal(t, existing.Id, provider.UserId)
	})

	t.Run("cache serves repeat resolves", func(t *testing.T) {
		factory := newFakeFactory()
		cache := memory.NewIdentityCache()
		svc := NewIdentityService(factory, cache)

		user, err := svc.Resolve(ctx, googleIdentity())
		require.NoError(t, err)

		cached, ok := cache.Get("google", "goog-12345")
		require.True(t, ok)
		assert.Equal(t, user.Id, cached)
	})

	t.Run("stale cache entry falls back to lookup", func(t *testing.T) {
		factory := newFakeFactory()
		cache := memory.NewIdentityCache()
		svc := NewIdentityService(factory, cache)

		user, err := svc.Resolve(ctx, googleIdentity())
		require.NoError(t, err)

		// The cached user vanishes from the store.
		delete(factory.uow.users.users, user.Id)
		delete(factory.uow.users.providers, "google:goog-12345")

		resolved, err := svc.Resolve(ctx, googleIdentity())
		require.NoError(t, err)
		assert.NotEqual(t, user.Id, resolved.Id)
	})

	t.Run("incomplete identity is rejected", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewIdentityService(factory, memory.NewIdentityCache())

		ident := googleIdentity()
		ident.Email = ""
		_, err := svc.Resolve(ctx, ident)
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)
	})
}
