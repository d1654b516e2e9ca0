package controller

import (
	"child-screening-be/internal/dto"
	"child-screening-be/internal/pkg/serverutils"
	"child-screening-be/internal/repository/contract"
	"child-screening-be/internal/service"
	"child-screening-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IScreeningController interface {
	RegisterRoutes(r fiber.Router)
	SubmitChildInfo(ctx *fiber.Ctx) error
	SubmitQuestionnaire(ctx *fiber.Ctx) error
}

type screeningController struct {
	service  service.IScreeningService
	sessions contract.SessionRepository
}

func NewScreeningController(service service.IScreeningService, sessions contract.SessionRepository) IScreeningController {
	return &screeningController{
		service:  service,
		sessions: sessions,
	}
}

func (c *screeningController) RegisterRoutes(r fiber.Router) {
	requireSession := serverutils.NewSessionMiddleware(c.sessions)
	r.Post("/child_info", requireSession, c.SubmitChildInfo)
	r.Post("/questionaries", requireSession, c.SubmitQuestionnaire)
}

func (c *screeningController) SubmitChildInfo(ctx *fiber.Ctx) error {
	session := ctx.Locals(serverutils.LocalsSession).(*store.Session)

	var req dto.ChildInfoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	profile, proceed, err := c.service.SubmitChildInfo(ctx.Context(), session.UserId, &req)
	if err != nil {
		return err
	}

	if err := c.sessions.SetActiveChild(ctx.Context(), session.Token, profile.Id); err != nil {
		return err
	}

	if !proceed {
		return ctx.Redirect("/thankyou", fiber.StatusFound)
	}
	return ctx.Redirect("/questionaries.html", fiber.StatusFound)
}

func (c *screeningController) SubmitQuestionnaire(ctx *fiber.Ctx) error {
	session := ctx.Locals(serverutils.LocalsSession).(*store.Session)

	// Questionnaire without a prior child profile is out of sequence;
	// send the client back to the start of the flow.
	if session.ChildId == nil {
		return ctx.Redirect("/login.html", fiber.StatusFound)
	}

	var req dto.QuestionnaireRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	result, err := c.service.SubmitQuestionnaire(ctx.Context(), session.UserId, *session.ChildId, &req)
	if err != nil {
		return err
	}

	if err := c.sessions.SetActiveResult(ctx.Context(), session.Token, result.Id); err != nil {
		return err
	}

	return ctx.Redirect("/questionaries_result.html", fiber.StatusFound)
}
