// FILE: internal/controller/post_controller.go
package controller

import (
	"roombuddy-be/internal/dto"
	"roombuddy-be/internal/pkg/serverutils"
	"roombuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPostController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type postController struct {
	service service.IPostService
}

func NewPostController(service service.IPostService) IPostController {
	return &postController{service: service}
}

func (c *postController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/posts")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.Search)
	h.Post("/", c.Create)
	h.Get("/mine", c.Mine)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *postController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Post created", res))
}

func (c *postController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	postId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	var req dto.UpdatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, postId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Post updated", res))
}

func (c *postController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	postId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	if err := c.service.Delete(ctx.Context(), userId, postId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Post deleted", nil))
}

func (c *postController) Get(ctx *fiber.Ctx) error {
	postId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	res, err := c.service.Get(ctx.Context(), postId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Post detail", res))
}

func (c *postController) Mine(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.Mine(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("My posts", res))
}

func (c *postController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchPostsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}
