package controller

import (
	"child-screening-be/internal/pkg/apperror"
	"child-screening-be/internal/pkg/serverutils"
	"child-screening-be/internal/repository/contract"
	"child-screening-be/internal/service"
	"child-screening-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IResultController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type resultController struct {
	service  service.IResultService
	sessions contract.SessionRepository
}

func NewResultController(service service.IResultService, sessions contract.SessionRepository) IResultController {
	return &resultController{
		service:  service,
		sessions: sessions,
	}
}

func (c *resultController) RegisterRoutes(r fiber.Router) {
	requireSession := serverutils.NewSessionMiddleware(c.sessions)
	r.Get("/results", requireSession, c.Show)
}

func (c *resultController) Show(ctx *fiber.Ctx) error {
	session := ctx.Locals(serverutils.LocalsSession).(*store.Session)

	// No questionnaire scored in this session yet.
	if session.ResultId == nil {
		return apperror.NotFound("no results found")
	}

	res, err := c.service.GetResult(ctx.Context(), *session.ResultId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch result", res))
}
