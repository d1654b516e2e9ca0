package service

import (
	"context"
	"strings"
	"time"

	"child-screening-be/internal/dto"
	"child-screening-be/internal/entity"
	"child-screening-be/internal/pkg/apperror"
	"child-screening-be/internal/pkg/logger"
	"child-screening-be/internal/repository/unitofwork"
	"child-screening-be/pkg/scoring"

	"github.com/google/uuid"
)

type IScreeningService interface {
	// SubmitChildInfo stores the profile and reports whether the flow
	// proceeds to the questionnaire (false when symptoms is "no").
	SubmitChildInfo(ctx context.Context, userId uuid.UUID, req *dto.ChildInfoRequest) (*entity.ChildProfile, bool, error)
	// SubmitQuestionnaire stores the raw answers, scores them and
	// persists the result, all in one causally ordered transaction.
	SubmitQuestionnaire(ctx context.Context, userId, childId uuid.UUID, req *dto.QuestionnaireRequest) (*entity.ScreeningResult, error)
}

type screeningService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewScreeningService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IScreeningService {
	return &screeningService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *screeningService) SubmitChildInfo(ctx context.Context, userId uuid.UUID, req *dto.ChildInfoRequest) (*entity.ChildProfile, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile := &entity.ChildProfile{
		Id:        uuid.New(),
		UserId:    userId,
		ChildName: req.ChildName,
		ChildAge:  req.ChildAge,
		Gender:    req.Gender,
		Symptoms:  req.Symptoms,
		CreatedAt: time.Now(),
	}

	if err := uow.ScreeningRepository().CreateChildProfile(ctx, profile); err != nil {
		return nil, false, apperror.Storage("error saving child info", err)
	}

	// "no" ends the screening here; anything else continues.
	proceed := !strings.EqualFold(req.Symptoms, "no")

	return profile, proceed, nil
}

func (s *screeningService) SubmitQuestionnaire(ctx context.Context, userId, childId uuid.UUID, req *dto.QuestionnaireRequest) (*entity.ScreeningResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Storage("error saving answers", err)
	}
	defer uow.Rollback()

	response := &entity.QuestionnaireResponse{
		Id:        uuid.New(),
		UserId:    userId,
		Answers:   req.Answers(),
		CreatedAt: time.Now(),
	}

	if err := uow.ScreeningRepository().CreateQuestionnaire(ctx, response); err != nil {
		return nil, apperror.Storage("error saving answers", err)
	}

	outcome := scoring.Evaluate(response.Answers)

	result := &entity.ScreeningResult{
		Id:              uuid.New(),
		ChildId:         childId,
		Likelihood:      string(outcome.Likelihood),
		Percentage:      outcome.Percentage,
		Recommendations: outcome.Recommendation,
		CreatedAt:       time.Now(),
	}

	if err := uow.ResultRepository().Create(ctx, result); err != nil {
		return nil, apperror.Storage("error saving results", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Storage("error saving results", err)
	}

	s.log.Info("screening", "questionnaire scored", map[string]interface{}{
		"child_id":   childId,
		"score":      outcome.Score,
		"percentage": outcome.Percentage,
		"likelihood": outcome.Likelihood,
	})

	return result, nil
}
