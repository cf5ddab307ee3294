// FILE: internal/controller/idea_controller.go
package controller

import (
	"idea-garden-be/internal/dto"
	"idea-garden-be/internal/pkg/serverutils"
	"idea-garden-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIdeaController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type ideaController struct {
	ideaService service.IIdeaService
	authService service.IAuthService
}

func NewIdeaController(ideaService service.IIdeaService, authService service.IAuthService) IIdeaController {
	return &ideaController{
		ideaService: ideaService,
		authService: authService,
	}
}

func (c *ideaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/idea/v1")
	h.Use(serverutils.NewAuthMiddleware(c.authService))
	h.Get("/search", c.Search)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
}

func (c *ideaController) Create(ctx *fiber.Ctx) error {
	principal := serverutils.PrincipalFromCtx(ctx)

	var req dto.CreateIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ideaService.Create(ctx.Context(), principal, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create idea", res))
}

func (c *ideaController) List(ctx *fiber.Ctx) error {
	principal := serverutils.PrincipalFromCtx(ctx)
	status := ctx.Query("status", "")

	res, err := c.ideaService.List(ctx.Context(), principal, status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list ideas", res))
}

func (c *ideaController) Show(ctx *fiber.Ctx) error {
	principal := serverutils.PrincipalFromCtx(ctx)
	id := ctx.Params("id")

	res, err := c.ideaService.Show(ctx.Context(), principal, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show idea", res))
}

func (c *ideaController) Update(ctx *fiber.Ctx) error {
	principal := serverutils.PrincipalFromCtx(ctx)

	var req dto.UpdateIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed request body")
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ideaService.Update(ctx.Context(), principal, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update idea", res))
}

func (c *ideaController) Search(ctx *fiber.Ctx) error {
	principal := serverutils.PrincipalFromCtx(ctx)
	q := ctx.Query("q", "")

	res, err := c.ideaService.Search(ctx.Context(), principal, q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search ideas", res))
}
