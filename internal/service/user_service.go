// FILE: internal/service/user_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/pkg/apperror"
	"roombuddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UploadPhoto(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (string, error)
	UploadDocument(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (string, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func toProfileResponse(user *entity.User) *dto.ProfileResponse {
	res := &dto.ProfileResponse{
		Id:               user.Id,
		Email:            user.Email,
		FullName:         user.FullName,
		Age:              user.Age,
		Gender:           user.Gender,
		Occupation:       user.Occupation,
		City:             user.City,
		About:            user.About,
		Interests:        user.Interests,
		SocialLinks:      user.SocialLinks,
		DocumentURLs:     user.DocumentURLs,
		Smoking:          user.Smoking,
		Drinking:         user.Drinking,
		Vegetarian:       user.Vegetarian,
		Pets:             user.Pets,
		ProfileCompleted: user.ProfileCompleted,
		IsPremium:        user.HasActivePremium(time.Now()),
		PremiumExpiry:    user.PremiumExpiry,
		CreatedAt:        user.CreatedAt,
	}
	res.Phone = user.Phone
	if user.PhotoURL != nil {
		res.PhotoURL = *user.PhotoURL
	}
	if user.SubscriptionPlan != nil {
		res.SubscriptionPlan = string(*user.SubscriptionPlan)
	}
	return res
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	return toProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.Age = req.Age
	user.Gender = req.Gender
	user.Occupation = req.Occupation
	user.City = req.City
	user.About = req.About
	user.Interests = req.Interests
	user.SocialLinks = req.SocialLinks
	user.Smoking = req.Smoking
	user.Drinking = req.Drinking
	user.Vegetarian = req.Vegetarian
	user.Pets = req.Pets
	// Posts and connection requests require a filled-out profile.
	user.ProfileCompleted = user.FullName != "" && user.Age >= 18 && user.Gender != "" && user.City != ""
	user.UpdatedAt = time.Now()

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return toProfileResponse(user), nil
}

func (s *userService) saveUpload(userId uuid.UUID, file *multipart.FileHeader, subdir string, maxSize int64) (string, error) {
	if file.Size > maxSize {
		return "", apperror.InvalidInput(fmt.Sprintf("file too large (max %dMB)", maxSize/(1024*1024)))
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	uploadDir := filepath.Join("./uploads", subdir)
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s_%d%s", userId.String(), time.Now().Unix(), ext)
	dstPath := filepath.Join(uploadDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", err
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/uploads/%s/%s", baseURL, subdir, filename), nil
}

func (s *userService) UploadPhoto(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (string, error) {
	publicURL, err := s.saveUpload(userId, file, "photos", 2*1024*1024)
	if err != nil {
		return "", err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().UpdatePhoto(ctx, userId, publicURL); err != nil {
		return "", err
	}

	return publicURL, nil
}

func (s *userService) UploadDocument(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (string, error) {
	publicURL, err := s.saveUpload(userId, file, "documents", 5*1024*1024)
	if err != nil {
		return "", err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindById(ctx, userId)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperror.NotFound("user not found")
	}

	user.DocumentURLs = append(user.DocumentURLs, publicURL)
	user.UpdatedAt = time.Now()
	if err := repo.Update(ctx, user); err != nil {
		return "", err
	}

	return publicURL, nil
}
