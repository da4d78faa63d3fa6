// FILE: internal/service/oauth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/pkg/apperror"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error)
}

type oauthService struct {
	identityService IIdentityService
	googleConf      *oauth2.Config
}

func NewOAuthService(identityService IIdentityService, clientID, clientSecret, redirectURL string) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		identityService: identityService,
		googleConf:      conf,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", apperror.InvalidInput("unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	if provider != "google" {
		return nil, apperror.InvalidInput("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, apperror.Wrap(err, "code exchange failed")
	}

	userInfoURL := "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken
	resp, err := http.Get(userInfoURL)
	if err != nil {
		return nil, apperror.Wrap(err, "failed getting user info")
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Wrap(err, "failed reading provider response")
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, apperror.Wrap(err, "failed to parse user info")
	}

	user, err := s.identityService.Resolve(ctx, ExternalIdentity{
		Provider:       "google",
		ProviderUserId: googleUser.ID,
		Email:          googleUser.Email,
		Name:           googleUser.Name,
		AvatarURL:      googleUser.Picture,
	})
	if err != nil {
		return nil, err
	}

	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, apperror.Wrap(err, "failed to sign access token")
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User: dto.UserDTO{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      string(user.Role),
			IsPremium: user.HasActivePremium(time.Now()),
		},
	}, nil
}
