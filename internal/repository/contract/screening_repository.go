package contract

import (
	"context"

	"child-screening-be/internal/entity"
	"child-screening-be/internal/repository/specification"
)

type ScreeningRepository interface {
	CreateChildProfile(ctx context.Context, profile *entity.ChildProfile) error
	FindChildProfile(ctx context.Context, specs ...specification.Specification) (*entity.ChildProfile, error)
	CreateQuestionnaire(ctx context.Context, response *entity.QuestionnaireResponse) error
	FindQuestionnaire(ctx context.Context, specs ...specification.Specification) (*entity.QuestionnaireResponse, error)
}
