package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/repository/unitofwork"
	"roombuddy-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.PostRepository())
	assert.NotNil(t, uow.ConnectionRepository())
	assert.NotNil(t, uow.PaymentRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("User And Post Round Trip", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:               uuid.New(),
			Email:            "test-integration-" + uuid.New().String() + "@example.com",
			FullName:         "Integration Test User",
			Role:             entity.UserRoleUser,
			Status:           entity.UserStatusActive,
			Age:              25,
			Gender:           "male",
			City:             "Bangalore",
			ProfileCompleted: true,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		post := &entity.Post{
			Id:          uuid.New(),
			UserId:      user.Id,
			Description: "Integration test listing",
			City:        "Bangalore",
			BudgetMin:   10000,
			BudgetMax:   20000,
			Gender:      "any",
			OwnerName:   user.FullName,
			IsActive:    true,
		}
		require.NoError(t, uow.PostRepository().Create(ctx, post))

		found, err := uow.PostRepository().FindById(ctx, post.Id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.Id, found.UserId)

		results, err := uow.PostRepository().Search(ctx, entity.PostFilter{City: "bangalore", Limit: 50})
		require.NoError(t, err)
		assert.NotEmpty(t, results)

		// Cleanup
		assert.NoError(t, uow.PostRepository().Delete(ctx, post.Id))
		assert.NoError(t, uow.UserRepository().Delete(ctx, user.Id))
	})

	t.Run("Transactional Premium Grant", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-premium-" + uuid.New().String() + "@example.com",
			FullName: "Premium Test User",
			Role:     entity.UserRoleUser,
			Status:   entity.UserStatusActive,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))

		expiry := time.Now().AddDate(0, 6, 0)
		require.NoError(t, txUow.UserRepository().GrantPremium(ctx, user.Id, entity.PlanSixMonths, expiry))
		require.NoError(t, txUow.Commit())

		granted, err := uow.UserRepository().FindById(ctx, user.Id)
		require.NoError(t, err)
		require.NotNil(t, granted)
		assert.True(t, granted.HasActivePremium(time.Now()))

		// Cleanup
		assert.NoError(t, uow.UserRepository().Delete(ctx, user.Id))
	})
}
