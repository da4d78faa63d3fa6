// FILE: internal/controller/payment_controller.go
package controller

import (
	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/pkg/serverutils"
	"roombuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	GetPlans(ctx *fiber.Ctx) error
	CreateOrder(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment")
	h.Get("/plans", c.GetPlans)

	// Protected routes
	h.Post("/order", serverutils.JwtMiddleware, c.CreateOrder)
	h.Post("/verify", serverutils.JwtMiddleware, c.Verify)
	h.Get("/history", serverutils.JwtMiddleware, c.History)
}

func (c *paymentController) GetPlans(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Available plans", c.service.GetPlans(ctx.Context())))
}

func (c *paymentController) CreateOrder(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateOrder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Order created", res))
}

func (c *paymentController) Verify(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Verify(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment verified", res))
}

func (c *paymentController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.History(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment history", res))
}
