package service

import (
	"context"
	"testing"
	"time"

	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePost() *dto.CreatePostRequest {
	return &dto.CreatePostRequest{
		Description: "2BHK near the metro, looking for one flatmate.",
		City:        "Bangalore",
		Area:        "Indiranagar",
		BudgetMin:   10000,
		BudgetMax:   20000,
		Gender:      "any",
		RoomType:    "private",
	}
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the owner profile", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewPostService(factory)
		owner := regularUser("Priya Sharma")
		owner.Interests = []string{"yoga", "reading"}
		owner.Vegetarian = true
		factory.uow.users.users[owner.Id] = owner

		res, err := svc.Create(ctx, owner.Id, validCreatePost())
		require.NoError(t, err)
		assert.True(t, res.IsActive)
		assert.Equal(t, owner.FullName, res.Owner.Name)
		assert.Equal(t, owner.Age, res.Owner.Age)
		assert.Equal(t, owner.Interests, res.Owner.Interests)
		assert.True(t, res.Owner.Vegetarian)

		stored, _ := factory.uow.posts.FindById(ctx, res.Id)
		require.NotNil(t, stored)
		assert.Equal(t, owner.Phone, stored.OwnerPhone)
	})

	t.Run("incomplete profile cannot post", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewPostService(factory)
		owner := regularUser("Priya Sharma")
		owner.ProfileCompleted = false
		factory.uow.users.users[owner.Id] = owner

		_, err := svc.Create(ctx, owner.Id, validCreatePost())
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)
	})

	t.Run("inverted budget range", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewPostService(factory)
		owner := regularUser("Priya Sharma")
		factory.uow.users.users[owner.Id] = owner

		req := validCreatePost()
		req.BudgetMin = 30000
		req.BudgetMax = 20000
		_, err := svc.Create(ctx, owner.Id, req)
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)
	})
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can edit and deactivate", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewPostService(factory)
		owner := regularUser("Priya Sharma")
		post := activePost(owner)
		factory.uow.users.users[owner.Id] = owner
		factory.uow.posts.posts[post.Id] = post

		inactive := false
		res, err := svc.Update(ctx, owner.Id, post.Id, &dto.UpdatePostRequest{
			Description: "Updated description for the listing.",
			City:        "Pune",
			BudgetMin:   12000,
			BudgetMax:   18000,
			Gender:      "female",
			RoomType:    "shared",
			IsActive:    &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, "Pune", res.City)
		assert.False(t, res.IsActive)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewPostService(factory)
		owner := regularUser("Priya Sharma")
		post := activePost(owner)
		factory.uow.posts.posts[post.Id] = post

		_, err := svc.Update(ctx, uuid.New(), post.Id, &dto.UpdatePostRequest{
			Description: "Hijacked description attempt.",
			City:        "Delhi",
			BudgetMin:   1,
			BudgetMax:   2,
			Gender:      "any",
		})
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindForbidden, appErr.Kind)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	svc := NewPostService(factory)
	owner := regularUser("Priya Sharma")
	post := activePost(owner)
	factory.uow.posts.posts[post.Id] = post

	err := svc.Delete(ctx, uuid.New(), post.Id)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindForbidden, appErr.Kind)

	require.NoError(t, svc.Delete(ctx, owner.Id, post.Id))
	stored, _ := factory.uow.posts.FindById(ctx, post.Id)
	assert.Nil(t, stored)
}

func TestSearchPosts(t *testing.T) {
	ctx := context.Background()
	factory := newFakeFactory()
	svc := NewPostService(factory)

	owner := regularUser("Priya Sharma")

	blr := activePost(owner)
	blr.City = "Bangalore"
	blr.BudgetMin = 15000
	blr.BudgetMax = 20000
	blr.Gender = "male"
	blr.CreatedAt = time.Now().Add(-time.Hour)

	mum := activePost(owner)
	mum.Id = uuid.New()
	mum.City = "Mumbai"
	mum.BudgetMin = 25000
	mum.BudgetMax = 35000
	mum.Gender = "any"

	hidden := activePost(owner)
	hidden.Id = uuid.New()
	hidden.City = "Bangalore"
	hidden.IsActive = false

	factory.uow.posts.posts[blr.Id] = blr
	factory.uow.posts.posts[mum.Id] = mum
	factory.uow.posts.posts[hidden.Id] = hidden

	t.Run("city filter is case insensitive", func(t *testing.T) {
		res, err := svc.Search(ctx, &dto.SearchPostsRequest{City: "bangalore"})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, blr.Id, res[0].Id)
	})

	t.Run("city filter matches substrings", func(t *testing.T) {
		factory := newFakeFactory()
		svc := NewPostService(factory)

		navi := activePost(owner)
		navi.Id = uuid.New()
		navi.City = "Navi Mumbai"
		pune := activePost(owner)
		pune.Id = uuid.New()
		pune.City = "Pune"
		factory.uow.posts.posts[navi.Id] = navi
		factory.uow.posts.posts[pune.Id] = pune

		res, err := svc.Search(ctx, &dto.SearchPostsRequest{City: "mumbai"})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, navi.Id, res[0].Id)
	})

	t.Run("inactive posts never match", func(t *testing.T) {
		res, err := svc.Search(ctx, &dto.SearchPostsRequest{})
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("budget range bounds", func(t *testing.T) {
		min := 20000
		res, err := svc.Search(ctx, &dto.SearchPostsRequest{BudgetMin: &min})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, mum.Id, res[0].Id)

		max := 20000
		res, err = svc.Search(ctx, &dto.SearchPostsRequest{BudgetMax: &max})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, blr.Id, res[0].Id)
	})

	t.Run("gender exact match", func(t *testing.T) {
		res, err := svc.Search(ctx, &dto.SearchPostsRequest{Gender: "male"})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, blr.Id, res[0].Id)
	})

	t.Run("newest first with limit", func(t *testing.T) {
		res, err := svc.Search(ctx, &dto.SearchPostsRequest{Limit: 1})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, mum.Id, res[0].Id)
	})
}
