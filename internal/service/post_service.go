// FILE: internal/service/post_service.go
package service

import (
	"context"
	"time"

	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/pkg/apperror"
	"roombuddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPostService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	Update(ctx context.Context, userId, postId uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	Delete(ctx context.Context, userId, postId uuid.UUID) error
	Get(ctx context.Context, postId uuid.UUID) (*dto.PostResponse, error)
	Mine(ctx context.Context, userId uuid.UUID) ([]*dto.PostResponse, error)
	Search(ctx context.Context, req *dto.SearchPostsRequest) ([]*dto.PostResponse, error)
}

type postService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPostService(uowFactory unitofwork.RepositoryFactory) IPostService {
	return &postService{
		uowFactory: uowFactory,
	}
}

func toPostResponse(post *entity.Post) *dto.PostResponse {
	res := &dto.PostResponse{
		Id: post.Id,
		Owner: dto.PostOwnerDTO{
			Id:         post.UserId,
			Name:       post.OwnerName,
			Age:        post.OwnerAge,
			Gender:     post.OwnerGender,
			Interests:  post.Interests,
			Smoking:    post.Smoking,
			Drinking:   post.Drinking,
			Vegetarian: post.Vegetarian,
			Pets:       post.Pets,
		},
		Description: post.Description,
		City:        post.City,
		Area:        post.Area,
		BudgetMin:   post.BudgetMin,
		BudgetMax:   post.BudgetMax,
		Gender:      post.Gender,
		RoomType:    post.RoomType,
		MoveInDate:  post.MoveInDate,
		IsActive:    post.IsActive,
		CreatedAt:   post.CreatedAt,
	}
	if post.PhotoURL != nil {
		res.Owner.PhotoURL = *post.PhotoURL
	}
	return res
}

func toPostResponses(posts []*entity.Post) []*dto.PostResponse {
	result := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		result = append(result, toPostResponse(p))
	}
	return result
}

func (s *postService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	owner, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NotFound("user not found")
	}
	if !owner.ProfileCompleted {
		return nil, apperror.InvalidInput("complete your profile before posting")
	}

	if req.BudgetMin > req.BudgetMax {
		return nil, apperror.InvalidInput("budget_min cannot exceed budget_max")
	}

	post := &entity.Post{
		Id:          uuid.New(),
		UserId:      userId,
		Description: req.Description,
		City:        req.City,
		Area:        req.Area,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Gender:      req.Gender,
		RoomType:    req.RoomType,
		MoveInDate:  req.MoveInDate,

		OwnerName:   owner.FullName,
		OwnerAge:    owner.Age,
		OwnerGender: owner.Gender,
		OwnerPhone:  owner.Phone,
		PhotoURL:    owner.PhotoURL,
		Interests:   owner.Interests,
		Smoking:     owner.Smoking,
		Drinking:    owner.Drinking,
		Vegetarian:  owner.Vegetarian,
		Pets:        owner.Pets,

		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.PostRepository().Create(ctx, post); err != nil {
		return nil, err
	}

	return toPostResponse(post), nil
}

func (s *postService) Update(ctx context.Context, userId, postId uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PostRepository()

	post, err := repo.FindById(ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("post not found")
	}
	if post.UserId != userId {
		return nil, apperror.Forbidden("only the post owner can edit it")
	}

	if req.BudgetMin > req.BudgetMax {
		return nil, apperror.InvalidInput("budget_min cannot exceed budget_max")
	}

	post.Description = req.Description
	post.City = req.City
	post.Area = req.Area
	post.BudgetMin = req.BudgetMin
	post.BudgetMax = req.BudgetMax
	post.Gender = req.Gender
	post.RoomType = req.RoomType
	post.MoveInDate = req.MoveInDate
	if req.IsActive != nil {
		post.IsActive = *req.IsActive
	}
	post.UpdatedAt = time.Now()

	if err := repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return toPostResponse(post), nil
}

func (s *postService) Delete(ctx context.Context, userId, postId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PostRepository()

	post, err := repo.FindById(ctx, postId)
	if err != nil {
		return err
	}
	if post == nil {
		return apperror.NotFound("post not found")
	}
	if post.UserId != userId {
		return apperror.Forbidden("only the post owner can delete it")
	}

	return repo.Delete(ctx, postId)
}

func (s *postService) Get(ctx context.Context, postId uuid.UUID) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindById(ctx, postId)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("post not found")
	}

	return toPostResponse(post), nil
}

func (s *postService) Mine(ctx context.Context, userId uuid.UUID) ([]*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	posts, err := uow.PostRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	return toPostResponses(posts), nil
}

func (s *postService) Search(ctx context.Context, req *dto.SearchPostsRequest) ([]*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filter := entity.PostFilter{
		City:      req.City,
		BudgetMin: req.BudgetMin,
		BudgetMax: req.BudgetMax,
		Gender:    req.Gender,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	posts, err := uow.PostRepository().Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toPostResponses(posts), nil
}
