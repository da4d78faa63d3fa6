// FILE: internal/controller/connection_controller.go
package controller

import (
	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/pkg/serverutils"
	"roombuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConnectionController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Respond(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	ListPending(ctx *fiber.Ctx) error
	ListSent(ctx *fiber.Ctx) error
	ListInbox(ctx *fiber.Ctx) error
	ListAccepted(ctx *fiber.Ctx) error
}

type connectionController struct {
	service service.IConnectionService
}

func NewConnectionController(service service.IConnectionService) IConnectionController {
	return &connectionController{service: service}
}

func (c *connectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/connections")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/requests", c.Send)
	h.Get("/requests", c.ListInbox)
	h.Get("/requests/pending", c.ListPending)
	h.Get("/requests/sent", c.ListSent)
	h.Put("/requests/:id", c.Respond)
	h.Delete("/requests/:id", c.Remove)
	h.Get("/accepted", c.ListAccepted)
}

func (c *connectionController) Send(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Request sent", res))
}

func (c *connectionController) Respond(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request id")
	}

	var req dto.RespondRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Respond(ctx.Context(), userId, requestId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Request updated", res))
}

func (c *connectionController) Remove(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request id")
	}

	if err := c.service.Remove(ctx.Context(), userId, requestId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Request removed", nil))
}

func (c *connectionController) ListPending(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.ListPending(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending requests", res))
}

func (c *connectionController) ListSent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.ListSent(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sent requests", res))
}

func (c *connectionController) ListInbox(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.ListInbox(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Connection requests", res))
}

func (c *connectionController) ListAccepted(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.ListAccepted(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Accepted connections", res))
}
