package controller

import (
	"child-screening-be/internal/dto"
	"child-screening-be/internal/pkg/serverutils"
	"child-screening-be/internal/repository/contract"
	"child-screening-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	sessions contract.SessionRepository
}

func NewAuthController(service service.IAuthService, sessions contract.SessionRepository) IAuthController {
	return &authController{
		service:  service,
		sessions: sessions,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/register", c.Register)
	r.Post("/login", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if _, err := c.service.Register(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.Redirect("/login.html", fiber.StatusFound)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	user, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	session, err := c.sessions.Create(ctx.Context(), user.Id)
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		HTTPOnly: true,
	})

	return ctx.Redirect("/child_info.html", fiber.StatusFound)
}
