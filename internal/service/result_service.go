package service

import (
	"context"

	"child-screening-be/internal/dto"
	"child-screening-be/internal/pkg/apperror"
	"child-screening-be/internal/repository/specification"
	"child-screening-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IResultService interface {
	GetResult(ctx context.Context, resultId uuid.UUID) (*dto.ScreeningResultResponse, error)
}

type resultService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewResultService(uowFactory unitofwork.RepositoryFactory) IResultService {
	return &resultService{
		uowFactory: uowFactory,
	}
}

func (s *resultService) GetResult(ctx context.Context, resultId uuid.UUID) (*dto.ScreeningResultResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	result, err := uow.ResultRepository().FindOne(ctx, specification.ByID{ID: resultId})
	if err != nil {
		return nil, apperror.Storage("failed to load result", err)
	}
	if result == nil {
		return nil, apperror.NotFound("no results found")
	}

	return &dto.ScreeningResultResponse{
		Id:              result.Id,
		ChildId:         result.ChildId,
		Likelihood:      result.Likelihood,
		Percentage:      result.Percentage,
		Recommendations: result.Recommendations,
		CreatedAt:       result.CreatedAt,
	}, nil
}
