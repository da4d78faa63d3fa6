// FILE: internal/service/connection_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/pkg/apperror"
	"roombuddy-be/internal/repository/unitofwork"

	"roombuddy-be/pkg/events"
	pktNats "roombuddy-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IConnectionService interface {
	Send(ctx context.Context, senderId uuid.UUID, req *dto.SendRequestRequest) (*dto.ConnectionRequestResponse, error)
	Respond(ctx context.Context, userId, requestId uuid.UUID, req *dto.RespondRequestRequest) (*dto.ConnectionRequestResponse, error)
	Remove(ctx context.Context, userId, requestId uuid.UUID) error
	ListPending(ctx context.Context, receiverId uuid.UUID) (*dto.PendingRequestsResponse, error)
	ListSent(ctx context.Context, senderId uuid.UUID) ([]*dto.ConnectionRequestResponse, error)
	ListInbox(ctx context.Context, userId uuid.UUID) (*dto.RequestsInboxResponse, error)
	ListAccepted(ctx context.Context, userId uuid.UUID) ([]*dto.AcceptedConnectionDTO, error)
}

type connectionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	alertPublisher IPublisherService
}

func NewConnectionService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, alertPublisher IPublisherService) IConnectionService {
	return &connectionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		alertPublisher: alertPublisher,
	}
}

func toConnectionResponse(req *entity.ConnectionRequest) *dto.ConnectionRequestResponse {
	return &dto.ConnectionRequestResponse{
		Id:         req.Id,
		SenderId:   req.SenderId,
		ReceiverId: req.ReceiverId,
		PostId:     req.PostId,
		Status:     string(req.Status),
		Message:    req.Message,
		CreatedAt:  req.CreatedAt,
	}
}

func (s *connectionService) Send(ctx context.Context, senderId uuid.UUID, req *dto.SendRequestRequest) (*dto.ConnectionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sender, err := uow.UserRepository().FindById(ctx, senderId)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, apperror.NotFound("user not found")
	}

	// Sending requests is the premium feature.
	if !sender.HasActivePremium(time.Now()) {
		return nil, apperror.PremiumRequired()
	}

	post, err := uow.PostRepository().FindById(ctx, req.PostId)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsActive {
		return nil, apperror.NotFound("post not found")
	}

	if post.UserId == senderId {
		return nil, apperror.SelfRequest("you cannot send a request to your own post")
	}

	request := &entity.ConnectionRequest{
		Id:         uuid.New(),
		SenderId:   senderId,
		ReceiverId: post.UserId,
		PostId:     post.Id,
		Status:     entity.RequestStatusPending,
		Message:    req.Message,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uow.ConnectionRepository().Create(ctx, request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := uow.ConnectionRepository().FindBySenderAndPost(ctx, senderId, post.Id)
			if findErr == nil && existing != nil {
				return nil, apperror.Conflict("a request for this post already exists", string(existing.Status))
			}
			return nil, apperror.Conflict("a request for this post already exists", "")
		}
		return nil, err
	}

	s.publishEvent(ctx, events.NewConnectionRequestSent(request.Id, senderId, post.UserId, post.Id, sender.FullName))

	if receiver, rErr := uow.UserRepository().FindById(ctx, post.UserId); rErr == nil && receiver != nil {
		s.publishAlert(ConnectionAlert{
			Kind:            "sent",
			RecipientEmail:  receiver.Email,
			RecipientName:   receiver.FullName,
			CounterpartName: sender.FullName,
			PostCity:        post.City,
		})
	}

	return toConnectionResponse(request), nil
}

func (s *connectionService) Respond(ctx context.Context, userId, requestId uuid.UUID, req *dto.RespondRequestRequest) (*dto.ConnectionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ConnectionRepository().FindById(ctx, requestId)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("connection request not found")
	}

	// Only the post owner decides.
	if request.ReceiverId != userId {
		return nil, apperror.Forbidden("only the receiver can respond to this request")
	}

	if request.Status != entity.RequestStatusPending {
		return nil, apperror.AlreadyProcessed("request has already been processed", string(request.Status))
	}

	newStatus := entity.RequestStatusRejected
	if req.Action == "accept" {
		newStatus = entity.RequestStatusAccepted
	}

	if err := uow.ConnectionRepository().UpdateStatus(ctx, requestId, newStatus); err != nil {
		// A concurrent respond may have settled the request between our
		// read and the guarded update.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			current, findErr := uow.ConnectionRepository().FindById(ctx, requestId)
			if findErr == nil && current != nil {
				return nil, apperror.AlreadyProcessed("request has already been processed", string(current.Status))
			}
			return nil, apperror.NotFound("connection request not found")
		}
		return nil, err
	}
	request.Status = newStatus
	request.UpdatedAt = time.Now()

	if newStatus == entity.RequestStatusAccepted {
		receiver, rErr := uow.UserRepository().FindById(ctx, userId)
		receiverName := ""
		if rErr == nil && receiver != nil {
			receiverName = receiver.FullName
		}

		s.publishEvent(ctx, events.NewConnectionRequestAccepted(request.Id, request.SenderId, userId, receiverName))

		if sender, sErr := uow.UserRepository().FindById(ctx, request.SenderId); sErr == nil && sender != nil {
			s.publishAlert(ConnectionAlert{
				Kind:            "accepted",
				RecipientEmail:  sender.Email,
				RecipientName:   sender.FullName,
				CounterpartName: receiverName,
			})
		}
	}

	return toConnectionResponse(request), nil
}

func (s *connectionService) Remove(ctx context.Context, userId, requestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ConnectionRepository().FindById(ctx, requestId)
	if err != nil {
		return err
	}
	if request == nil {
		return apperror.NotFound("connection request not found")
	}

	// Either side may withdraw or disconnect, regardless of status.
	if !request.IsParticipant(userId) {
		return apperror.Forbidden("you are not part of this connection")
	}

	return uow.ConnectionRepository().Delete(ctx, requestId)
}

func (s *connectionService) ListPending(ctx context.Context, receiverId uuid.UUID) (*dto.PendingRequestsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.ConnectionRepository().ListByReceiver(ctx, receiverId, entity.RequestStatusPending)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PendingRequestDTO, 0, len(requests))
	for _, r := range requests {
		item := dto.PendingRequestDTO{
			Id:        r.Id,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		}

		if sender, sErr := uow.UserRepository().FindById(ctx, r.SenderId); sErr == nil && sender != nil {
			item.Sender = dto.PostOwnerDTO{
				Id:         sender.Id,
				Name:       sender.FullName,
				Age:        sender.Age,
				Gender:     sender.Gender,
				Interests:  sender.Interests,
				Smoking:    sender.Smoking,
				Drinking:   sender.Drinking,
				Vegetarian: sender.Vegetarian,
				Pets:       sender.Pets,
			}
			if sender.PhotoURL != nil {
				item.Sender.PhotoURL = *sender.PhotoURL
			}
		}

		// The post may have been deleted since the request arrived.
		if post, pErr := uow.PostRepository().FindById(ctx, r.PostId); pErr == nil && post != nil {
			item.Post = toPostResponse(post)
		}

		items = append(items, item)
	}

	return &dto.PendingRequestsResponse{
		Requests: items,
		Count:    len(items),
	}, nil
}

func (s *connectionService) ListSent(ctx context.Context, senderId uuid.UUID) ([]*dto.ConnectionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.ConnectionRepository().ListBySender(ctx, senderId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ConnectionRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, toConnectionResponse(r))
	}
	return result, nil
}

func (s *connectionService) ListInbox(ctx context.Context, userId uuid.UUID) (*dto.RequestsInboxResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sent, err := uow.ConnectionRepository().ListBySender(ctx, userId)
	if err != nil {
		return nil, err
	}
	received, err := uow.ConnectionRepository().ListReceived(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := &dto.RequestsInboxResponse{
		Sent:     make([]*dto.ConnectionRequestResponse, 0, len(sent)),
		Received: make([]*dto.ConnectionRequestResponse, 0, len(received)),
	}
	for _, r := range sent {
		res.Sent = append(res.Sent, toConnectionResponse(r))
	}
	for _, r := range received {
		res.Received = append(res.Received, toConnectionResponse(r))
	}
	return res, nil
}

func (s *connectionService) ListAccepted(ctx context.Context, userId uuid.UUID) ([]*dto.AcceptedConnectionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	viewer, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, apperror.NotFound("user not found")
	}
	viewerPremium := viewer.HasActivePremium(time.Now())

	requests, err := uow.ConnectionRepository().ListAcceptedFor(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AcceptedConnectionDTO, 0, len(requests))
	for _, r := range requests {
		buddyId := r.SenderId
		if buddyId == userId {
			buddyId = r.ReceiverId
		}

		buddy, bErr := uow.UserRepository().FindById(ctx, buddyId)
		if bErr != nil || buddy == nil {
			continue
		}

		item := &dto.AcceptedConnectionDTO{
			Id: r.Id,
			Buddy: dto.BuddyDTO{
				Id:     buddy.Id,
				Name:   buddy.FullName,
				Age:    buddy.Age,
				Gender: buddy.Gender,
				City:   buddy.City,
			},
			PostId:      r.PostId,
			ConnectedAt: r.UpdatedAt,
		}
		if buddy.PhotoURL != nil {
			item.Buddy.PhotoURL = *buddy.PhotoURL
		}

		// The post may be gone; the connection still renders.
		if post, pErr := uow.PostRepository().FindById(ctx, r.PostId); pErr == nil && post != nil {
			item.Post = toPostResponse(post)
		}

		// Contact details stay hidden unless the viewer holds premium.
		if viewerPremium {
			item.Buddy.Phone = buddy.Phone
			item.Buddy.Email = buddy.Email
			item.Buddy.SocialLinks = buddy.SocialLinks
		}

		result = append(result, item)
	}

	return result, nil
}

func (s *connectionService) publishEvent(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", event.EventType(), err)
	}
}

func (s *connectionService) publishAlert(alert ConnectionAlert) {
	if s.alertPublisher == nil {
		return
	}
	if err := s.alertPublisher.PublishConnectionAlert(alert); err != nil {
		fmt.Printf("[WARN] Failed to publish connection alert: %v\n", err)
	}
}
