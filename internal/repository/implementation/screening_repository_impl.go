package implementation

import (
	"context"
	"errors"

	"child-screening-be/internal/entity"
	"child-screening-be/internal/mapper"
	"child-screening-be/internal/model"
	"child-screening-be/internal/repository/contract"
	"child-screening-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ScreeningRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScreeningMapper
}

func NewScreeningRepository(db *gorm.DB) contract.ScreeningRepository {
	return &ScreeningRepositoryImpl{
		db:     db,
		mapper: mapper.NewScreeningMapper(),
	}
}

func (r *ScreeningRepositoryImpl) CreateChildProfile(ctx context.Context, profile *entity.ChildProfile) error {
	m := r.mapper.ChildProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ChildProfileToEntity(m)
	return nil
}

func (r *ScreeningRepositoryImpl) FindChildProfile(ctx context.Context, specs ...specification.Specification) (*entity.ChildProfile, error) {
	var m model.ChildProfile
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ChildProfileToEntity(&m), nil
}

func (r *ScreeningRepositoryImpl) CreateQuestionnaire(ctx context.Context, response *entity.QuestionnaireResponse) error {
	m := r.mapper.QuestionnaireToModel(response)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*response = *r.mapper.QuestionnaireToEntity(m)
	return nil
}

func (r *ScreeningRepositoryImpl) FindQuestionnaire(ctx context.Context, specs ...specification.Specification) (*entity.QuestionnaireResponse, error) {
	var m model.QuestionnaireResponse
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.QuestionnaireToEntity(&m), nil
}
