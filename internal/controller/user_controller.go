// FILE: internal/controller/user_controller.go
package controller

import (
	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/pkg/serverutils"
	"roombuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	UploadPhoto(ctx *fiber.Ctx) error
	UploadDocument(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/profile", c.GetProfile)
	h.Put("/profile", c.UpdateProfile)
	h.Post("/photo", c.UploadPhoto)
	h.Post("/documents", c.UploadDocument)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *userController) UploadPhoto(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	file, err := ctx.FormFile("photo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}

	url, err := c.service.UploadPhoto(ctx.Context(), userId, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Photo uploaded", dto.UploadResponse{URL: url}))
}

func (c *userController) UploadDocument(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	file, err := ctx.FormFile("document")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "document file is required")
	}

	url, err := c.service.UploadDocument(ctx.Context(), userId, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document uploaded", dto.UploadResponse{URL: url}))
}
