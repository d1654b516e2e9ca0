package contract

import (
	"context"

	"child-screening-be/internal/entity"
	"child-screening-be/internal/repository/specification"
)

type ResultRepository interface {
	Create(ctx context.Context, result *entity.ScreeningResult) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScreeningResult, error)
}
