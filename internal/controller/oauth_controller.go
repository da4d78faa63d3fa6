// FILE: internal/controller/oauth_controller.go
package controller

import (
	"fmt"
	"log"
	"os"

	"roombuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service service.IOAuthService
}

func NewOAuthController(service service.IOAuthService) IOAuthController {
	return &oauthController{service: service}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	// e.g., /oauth/google
	h := r.Group("/oauth")
	h.Get("/:provider", c.Login)
	h.Get("/:provider/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")

	url, err := c.service.GetLoginURL(provider)
	if err != nil {
		return err
	}

	return ctx.Redirect(url)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")
	code := ctx.Query("code")

	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing code")
	}

	res, err := c.service.HandleCallback(ctx.Context(), provider, code)
	if err != nil {
		return err
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
		log.Printf("[OAuth] FRONTEND_URL not set, using default: %s", frontendURL)
	}

	redirectURL := fmt.Sprintf("%s/app?token=%s", frontendURL, res.AccessToken)
	return ctx.Redirect(redirectURL, fiber.StatusTemporaryRedirect)
}
