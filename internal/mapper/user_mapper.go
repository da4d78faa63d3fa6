package mapper

import (
	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	var plan *entity.SubscriptionPlan
	if u.SubscriptionPlan != nil {
		p := entity.SubscriptionPlan(*u.SubscriptionPlan)
		plan = &p
	}
	return &entity.User{
		Id:               u.Id,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FullName:         u.FullName,
		Role:             entity.UserRole(u.Role),
		Status:           entity.UserStatus(u.Status),
		EmailVerified:    u.EmailVerified,
		EmailVerifiedAt:  u.EmailVerifiedAt,
		Phone:            u.Phone,
		Age:              u.Age,
		Gender:           u.Gender,
		Occupation:       u.Occupation,
		City:             u.City,
		About:            u.About,
		PhotoURL:         u.PhotoURL,
		Interests:        u.Interests,
		SocialLinks:      u.SocialLinks.Data(),
		DocumentURLs:     u.DocumentURLs,
		Smoking:          u.Smoking,
		Drinking:         u.Drinking,
		Vegetarian:       u.Vegetarian,
		Pets:             u.Pets,
		ProfileCompleted: u.ProfileCompleted,
		IsPremium:        u.IsPremium,
		PremiumExpiry:    u.PremiumExpiry,
		SubscriptionPlan: plan,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	var plan *string
	if u.SubscriptionPlan != nil {
		p := string(*u.SubscriptionPlan)
		plan = &p
	}
	return &model.User{
		Id:               u.Id,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FullName:         u.FullName,
		Role:             string(u.Role),
		Status:           string(u.Status),
		EmailVerified:    u.EmailVerified,
		EmailVerifiedAt:  u.EmailVerifiedAt,
		Phone:            u.Phone,
		Age:              u.Age,
		Gender:           u.Gender,
		Occupation:       u.Occupation,
		City:             u.City,
		About:            u.About,
		PhotoURL:         u.PhotoURL,
		Interests:        datatypes.NewJSONSlice(u.Interests),
		SocialLinks:      datatypes.NewJSONType(u.SocialLinks),
		DocumentURLs:     datatypes.NewJSONSlice(u.DocumentURLs),
		Smoking:          u.Smoking,
		Drinking:         u.Drinking,
		Vegetarian:       u.Vegetarian,
		Pets:             u.Pets,
		ProfileCompleted: u.ProfileCompleted,
		IsPremium:        u.IsPremium,
		PremiumExpiry:    u.PremiumExpiry,
		SubscriptionPlan: plan,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

// Provider and Token Mappers

func (m *UserMapper) UserProviderToEntity(p *model.UserProvider) *entity.UserProvider {
	if p == nil {
		return nil
	}
	return &entity.UserProvider{
		Id:             p.Id,
		UserId:         p.UserId,
		ProviderName:   p.ProviderName,
		ProviderUserId: p.ProviderUserId,
		AvatarURL:      p.AvatarURL,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *UserMapper) UserProviderToModel(p *entity.UserProvider) *model.UserProvider {
	if p == nil {
		return nil
	}
	return &model.UserProvider{
		Id:             p.Id,
		UserId:         p.UserId,
		ProviderName:   p.ProviderName,
		ProviderUserId: p.ProviderUserId,
		AvatarURL:      p.AvatarURL,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *UserMapper) EmailVerificationTokenToEntity(t *model.EmailVerificationToken) *entity.EmailVerificationToken {
	if t == nil {
		return nil
	}
	return &entity.EmailVerificationToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) EmailVerificationTokenToModel(t *entity.EmailVerificationToken) *model.EmailVerificationToken {
	if t == nil {
		return nil
	}
	return &model.EmailVerificationToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) UserRefreshTokenToModel(t *entity.UserRefreshToken) *model.UserRefreshToken {
	if t == nil {
		return nil
	}
	return &model.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}
