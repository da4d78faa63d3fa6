package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
	"time"

	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeySecret = "test_secret"

type fakeGateway struct {
	orders     int
	lastAmount int64
	lastNotes  map[string]interface{}
	err        error
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.orders++
	g.lastAmount = amount
	g.lastNotes = notes
	return fmt.Sprintf("order_test%03d", g.orders), nil
}

func signPayment(orderId, paymentId string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderId + "|" + paymentId))
	return hex.EncodeToString(mac.Sum(nil))
}

func newPaymentFixture(t *testing.T) (*fakeFactory, *fakeGateway, IPaymentService) {
	t.Helper()
	factory := newFakeFactory()
	gateway := &fakeGateway{}
	svc := NewPaymentService(factory, gateway, "rzp_test_key", testKeySecret, nil)
	return factory, gateway, svc
}

func TestGetPlans(t *testing.T) {
	_, _, svc := newPaymentFixture(t)

	plans := svc.GetPlans(context.Background())
	require.Len(t, plans, 2)
	assert.Equal(t, "6_months", plans[0].Code)
	assert.Equal(t, 399, plans[0].Price)
	assert.Equal(t, "1_year", plans[1].Code)
	assert.Equal(t, 599, plans[1].Price)
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("records payment and converts to paise", func(t *testing.T) {
		factory, gateway, svc := newPaymentFixture(t)
		user := regularUser("Arjun Mehta")
		factory.uow.users.users[user.Id] = user

		res, err := svc.CreateOrder(ctx, user.Id, &dto.CreateOrderRequest{Plan: "6_months"})
		require.NoError(t, err)
		assert.Equal(t, int64(39900), res.Amount)
		assert.Equal(t, int64(39900), gateway.lastAmount)
		assert.Equal(t, "INR", res.Currency)
		assert.Equal(t, "rzp_test_key", res.KeyId)
		assert.True(t, strings.HasPrefix(res.Receipt, "rcpt_"))
		assert.LessOrEqual(t, len(res.Receipt), 40)
		assert.Equal(t, string(entity.PlanSixMonths), gateway.lastNotes["plan"])

		stored, _ := factory.uow.payments.FindByOrderId(ctx, res.OrderId)
		require.NotNil(t, stored)
		assert.Equal(t, entity.PaymentStatusCreated, stored.Status)
		assert.Equal(t, 399, stored.Amount)
		assert.Equal(t, user.Id, stored.UserId)
	})

	t.Run("unknown plan", func(t *testing.T) {
		factory, _, svc := newPaymentFixture(t)
		user := regularUser("Arjun Mehta")
		factory.uow.users.users[user.Id] = user

		_, err := svc.CreateOrder(ctx, user.Id, &dto.CreateOrderRequest{Plan: "lifetime"})
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)
	})

	t.Run("gateway failure surfaces wrapped", func(t *testing.T) {
		factory, gateway, svc := newPaymentFixture(t)
		gateway.err = fmt.Errorf("gateway down")
		user := regularUser("Arjun Mehta")
		factory.uow.users.users[user.Id] = user

		_, err := svc.CreateOrder(ctx, user.Id, &dto.CreateOrderRequest{Plan: "1_year"})
		require.Error(t, err)
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindUnexpected, appErr.Kind)
	})
}

func TestVerifyPayment(t *testing.T) {
	ctx := context.Background()

	seedOrder := func(factory *fakeFactory, svc IPaymentService, plan string) (*entity.User, string) {
		user := regularUser("Arjun Mehta")
		factory.uow.users.users[user.Id] = user
		res, err := svc.CreateOrder(ctx, user.Id, &dto.CreateOrderRequest{Plan: plan})
		if err != nil {
			panic(err)
		}
		return user, res.OrderId
	}

	t.Run("valid signature grants premium atomically", func(t *testing.T) {
		factory, _, svc := newPaymentFixture(t)
		user, orderId := seedOrder(factory, svc, "1_year")

		before := time.Now()
		res, err := svc.Verify(ctx, user.Id, &dto.VerifyPaymentRequest{
			OrderId:   orderId,
			PaymentId: "pay_abc123",
			Signature: signPayment(orderId, "pay_abc123"),
		})
		require.NoError(t, err)
		assert.Equal(t, "success", res.Status)
		assert.Equal(t, "1_year", res.Plan)
		require.NotNil(t, res.PremiumExpiry)
		assert.WithinDuration(t, before.AddDate(1, 0, 0), *res.PremiumExpiry, time.Minute)

		stored, _ := factory.uow.payments.FindByOrderId(ctx, orderId)
		assert.Equal(t, entity.PaymentStatusSuccess, stored.Status)
		require.NotNil(t, stored.PaymentId)
		assert.Equal(t, "pay_abc123", *stored.PaymentId)

		granted, _ := factory.uow.users.FindById(ctx, user.Id)
		assert.True(t, granted.IsPremium)
		require.NotNil(t, granted.SubscriptionPlan)
		assert.Equal(t, entity.PlanOneYear, *granted.SubscriptionPlan)

		// Settled inside one transaction.
		assert.Equal(t, 1, factory.uow.begins)
		assert.Equal(t, 1, factory.uow.commits)
	})

	t.Run("tampered signature leaves everything untouched", func(t *testing.T) {
		factory, _, svc := newPaymentFixture(t)
		user, orderId := seedOrder(factory, svc, "6_months")

		_, err := svc.Verify(ctx, user.Id, &dto.VerifyPaymentRequest{
			OrderId:   orderId,
			PaymentId: "pay_abc123",
			Signature: signPayment(orderId, "pay_other"),
		})
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindInvalidSignature, appErr.Kind)

		stored, _ := factory.uow.payments.FindByOrderId(ctx, orderId)
		assert.Equal(t, entity.PaymentStatusCreated, stored.Status)
		assert.Nil(t, stored.PaymentId)

		untouched, _ := factory.uow.users.FindById(ctx, user.Id)
		assert.False(t, untouched.IsPremium)
		assert.Equal(t, 0, factory.uow.begins)
	})

	t.Run("bad signature on settled order still fails", func(t *testing.T) {
		factory, _, svc := newPaymentFixture(t)
		user, orderId := seedOrder(factory, svc, "6_months")

		_, err := svc.Verify(ctx, user.Id, &dto.VerifyPaymentRequest{
			OrderId:   orderId,
			PaymentId: "pay_abc123",
			Signature: signPayment(orderId, "pay_abc123"),
		})
		require.NoError(t, err)

		_, err = svc.Verify(ctx, user.Id, &dto.VerifyPaymentRequest{
			OrderId:   orderId,
			PaymentId: "pay_abc123",
			Signature: "deadbeef",
		})
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindInvalidSignature, appErr.Kind)

		stored, _ := factory.uow.payments.FindByOrderId(ctx, orderId)
		assert.Equal(t, entity.PaymentStatusSuccess, stored.Status)
	})

	t.Run("re-verify of settled payment is idempotent", func(t *testing.T) {
		factory, _, svc := newPaymentFixture(t)
		user, orderId := seedOrder(factory, svc, "6_months")

		req := &dto.VerifyPaymentRequest{
			OrderId:   orderId,
			PaymentId: "pay_abc123",
			Signature: signPayment(orderId, "pay_abc123"),
		}
		first, err := svc.Verify(ctx, user.Id, req)
		require.NoError(t, err)

		second, err := svc.Verify(ctx, user.Id, req)
		require.NoError(t, err)
		assert.Equal(t, "success", second.Status)
		require.NotNil(t, second.PremiumExpiry)
		assert.Equal(t, first.PremiumExpiry.Unix(), second.PremiumExpiry.Unix())

		// Only the first verify opened a transaction.
		assert.Equal(t, 1, factory.uow.begins)
	})

	t.Run("unknown order", func(t *testing.T) {
		factory, _, svc := newPaymentFixture(t)
		user := regularUser("Arjun Mehta")
		factory.uow.users.users[user.Id] = user

		_, err := svc.Verify(ctx, user.Id, &dto.VerifyPaymentRequest{
			OrderId:   "order_missing",
			PaymentId: "pay_abc123",
			Signature: signPayment("order_missing", "pay_abc123"),
		})
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	})

	t.Run("order owned by someone else", func(t *testing.T) {
		factory, _, svc := newPaymentFixture(t)
		_, orderId := seedOrder(factory, svc, "6_months")
		intruder := premiumUser("Rahul Verma")
		factory.uow.users.users[intruder.Id] = intruder

		_, err := svc.Verify(ctx, intruder.Id, &dto.VerifyPaymentRequest{
			OrderId:   orderId,
			PaymentId: "pay_abc123",
			Signature: signPayment(orderId, "pay_abc123"),
		})
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindForbidden, appErr.Kind)
	})
}

func TestPaymentHistory(t *testing.T) {
	ctx := context.Background()
	factory, _, svc := newPaymentFixture(t)
	user := regularUser("Arjun Mehta")
	factory.uow.users.users[user.Id] = user

	first, err := svc.CreateOrder(ctx, user.Id, &dto.CreateOrderRequest{Plan: "6_months"})
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, user.Id, &dto.CreateOrderRequest{Plan: "1_year"})
	require.NoError(t, err)

	_, err = svc.Verify(ctx, user.Id, &dto.VerifyPaymentRequest{
		OrderId:   first.OrderId,
		PaymentId: "pay_abc123",
		Signature: signPayment(first.OrderId, "pay_abc123"),
	})
	require.NoError(t, err)

	history, err := svc.History(ctx, user.Id)
	require.NoError(t, err)
	require.Len(t, history, 2)

	byOrder := map[string]string{}
	for _, h := range history {
		byOrder[h.OrderId] = h.Status
	}
	assert.Equal(t, "success", byOrder[first.OrderId])
}
