// FILE: internal/service/payment_service.go
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/pkg/apperror"
	"roombuddy-be/internal/repository/unitofwork"

	"roombuddy-be/pkg/events"
	pktNats "roombuddy-be/pkg/nats"
	"roombuddy-be/pkg/payment"

	"github.com/google/uuid"
)

type IPaymentService interface {
	GetPlans(ctx context.Context) []dto.PlanDTO
	CreateOrder(ctx context.Context, userId uuid.UUID, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	Verify(ctx context.Context, userId uuid.UUID, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]*dto.PaymentHistoryDTO, error)
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	gateway        payment.Gateway
	keyId          string
	keySecret      string
	eventPublisher *pktNats.Publisher
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, gateway payment.Gateway, keyId, keySecret string, eventPublisher *pktNats.Publisher) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		gateway:        gateway,
		keyId:          keyId,
		keySecret:      keySecret,
		eventPublisher: eventPublisher,
	}
}

const receiptAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateReceipt builds a receipt id the gateway accepts (max 40 chars):
// "rcpt_" + last 10 digits of the ms timestamp + "_" + 6 random chars.
func generateReceipt() (string, error) {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ms) > 10 {
		ms = ms[len(ms)-10:]
	}

	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(receiptAlphabet))))
		if err != nil {
			return "", err
		}
		suffix[i] = receiptAlphabet[n.Int64()]
	}

	return fmt.Sprintf("rcpt_%s_%s", ms, string(suffix)), nil
}

func (s *paymentService) GetPlans(ctx context.Context) []dto.PlanDTO {
	return []dto.PlanDTO{
		{Code: string(entity.PlanSixMonths), Name: "Premium 6 Months", Price: 399, Currency: "INR", DurationMos: 6},
		{Code: string(entity.PlanOneYear), Name: "Premium 1 Year", Price: 599, Currency: "INR", DurationMos: 12},
	}
}

func (s *paymentService) CreateOrder(ctx context.Context, userId uuid.UUID, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	plan := entity.SubscriptionPlan(req.Plan)
	price, ok := entity.PlanPriceRupees(plan)
	if !ok {
		return nil, apperror.InvalidInput("unknown plan")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	receipt, err := generateReceipt()
	if err != nil {
		return nil, apperror.Wrap(err, "failed to generate receipt")
	}

	// The gateway wants the smallest currency unit.
	amountPaise := int64(price) * 100

	orderId, err := s.gateway.CreateOrder(ctx, amountPaise, "INR", receipt, map[string]interface{}{
		"user_id": userId.String(),
		"plan":    string(plan),
	})
	if err != nil {
		return nil, apperror.Wrap(err, "failed to create payment order")
	}

	paymentEntity := &entity.Payment{
		Id:        uuid.New(),
		UserId:    userId,
		OrderId:   orderId,
		Plan:      plan,
		Amount:    price,
		Currency:  "INR",
		Receipt:   receipt,
		Status:    entity.PaymentStatusCreated,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.PaymentRepository().Create(ctx, paymentEntity); err != nil {
		return nil, apperror.Wrap(err, "failed to record payment")
	}

	return &dto.CreateOrderResponse{
		OrderId:  orderId,
		Amount:   amountPaise,
		Currency: "INR",
		Receipt:  receipt,
		KeyId:    s.keyId,
	}, nil
}

func (s *paymentService) Verify(ctx context.Context, userId uuid.UUID, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paymentEntity, err := uow.PaymentRepository().FindByOrderId(ctx, req.OrderId)
	if err != nil {
		return nil, err
	}
	if paymentEntity == nil {
		return nil, apperror.NotFound("payment order not found")
	}
	if paymentEntity.UserId != userId {
		return nil, apperror.Forbidden("payment belongs to another user")
	}

	// A bad signature never touches the row, settled or not.
	if !payment.VerifySignature(req.OrderId, req.PaymentId, req.Signature, s.keySecret) {
		return nil, apperror.InvalidSignature()
	}

	// A retried callback on an already settled payment is fine.
	if paymentEntity.Status == entity.PaymentStatusSuccess {
		user, _ := uow.UserRepository().FindById(ctx, userId)
		res := &dto.VerifyPaymentResponse{
			Status: string(entity.PaymentStatusSuccess),
			Plan:   string(paymentEntity.Plan),
		}
		if user != nil {
			res.PremiumExpiry = user.PremiumExpiry
		}
		return res, nil
	}

	expiry := entity.PlanExpiry(paymentEntity.Plan, time.Now())

	// Settle the payment and grant premium together.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PaymentRepository().MarkStatus(ctx, paymentEntity.Id, entity.PaymentStatusSuccess, &req.PaymentId); err != nil {
		return nil, apperror.Wrap(err, "failed to settle payment")
	}

	if err := uow.UserRepository().GrantPremium(ctx, userId, paymentEntity.Plan, expiry); err != nil {
		return nil, apperror.Wrap(err, "failed to grant premium")
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.NewPaymentSucceeded(paymentEntity.Id, userId, string(paymentEntity.Plan), paymentEntity.Amount)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", event.EventType(), err)
		}
	}

	return &dto.VerifyPaymentResponse{
		Status:        string(entity.PaymentStatusSuccess),
		Plan:          string(paymentEntity.Plan),
		PremiumExpiry: &expiry,
	}, nil
}

func (s *paymentService) History(ctx context.Context, userId uuid.UUID) ([]*dto.PaymentHistoryDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.PaymentRepository().ListByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PaymentHistoryDTO, 0, len(items))
	for _, p := range items {
		result = append(result, &dto.PaymentHistoryDTO{
			Id:        p.Id,
			OrderId:   p.OrderId,
			Plan:      string(p.Plan),
			Amount:    p.Amount,
			Currency:  p.Currency,
			Status:    string(p.Status),
			CreatedAt: p.CreatedAt,
		})
	}
	return result, nil
}
