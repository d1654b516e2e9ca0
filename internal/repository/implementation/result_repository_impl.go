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

type ResultRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScreeningMapper
}

func NewResultRepository(db *gorm.DB) contract.ResultRepository {
	return &ResultRepositoryImpl{
		db:     db,
		mapper: mapper.NewScreeningMapper(),
	}
}

func (r *ResultRepositoryImpl) Create(ctx context.Context, result *entity.ScreeningResult) error {
	m := r.mapper.ResultToModel(result)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*result = *r.mapper.ResultToEntity(m)
	return nil
}

func (r *ResultRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScreeningResult, error) {
	var m model.ScreeningResult
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ResultToEntity(&m), nil
}
