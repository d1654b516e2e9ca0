package mapper

import (
	"child-screening-be/internal/entity"
	"child-screening-be/internal/model"
)

type ScreeningMapper struct{}

func NewScreeningMapper() *ScreeningMapper {
	return &ScreeningMapper{}
}

func (m *ScreeningMapper) ChildProfileToEntity(c *model.ChildProfile) *entity.ChildProfile {
	if c == nil {
		return nil
	}
	return &entity.ChildProfile{
		Id:        c.Id,
		UserId:    c.UserId,
		ChildName: c.ChildName,
		ChildAge:  c.ChildAge,
		Gender:    c.Gender,
		Symptoms:  c.Symptoms,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ScreeningMapper) ChildProfileToModel(c *entity.ChildProfile) *model.ChildProfile {
	if c == nil {
		return nil
	}
	return &model.ChildProfile{
		Id:        c.Id,
		UserId:    c.UserId,
		ChildName: c.ChildName,
		ChildAge:  c.ChildAge,
		Gender:    c.Gender,
		Symptoms:  c.Symptoms,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ScreeningMapper) QuestionnaireToEntity(q *model.QuestionnaireResponse) *entity.QuestionnaireResponse {
	if q == nil {
		return nil
	}
	return &entity.QuestionnaireResponse{
		Id:     q.Id,
		UserId: q.UserId,
		Answers: [10]string{
			q.Q1, q.Q2, q.Q3, q.Q4, q.Q5,
			q.Q6, q.Q7, q.Q8, q.Q9, q.Q10,
		},
		CreatedAt: q.CreatedAt,
	}
}

func (m *ScreeningMapper) QuestionnaireToModel(q *entity.QuestionnaireResponse) *model.QuestionnaireResponse {
	if q == nil {
		return nil
	}
	return &model.QuestionnaireResponse{
		Id:        q.Id,
		UserId:    q.UserId,
		Q1:        q.Answers[0],
		Q2:        q.Answers[1],
		Q3:        q.Answers[2],
		Q4:        q.Answers[3],
		Q5:        q.Answers[4],
		Q6:        q.Answers[5],
		Q7:        q.Answers[6],
		Q8:        q.Answers[7],
		Q9:        q.Answers[8],
		Q10:       q.Answers[9],
		CreatedAt: q.CreatedAt,
	}
}

func (m *ScreeningMapper) ResultToEntity(r *model.ScreeningResult) *entity.ScreeningResult {
	if r == nil {
		return nil
	}
	return &entity.ScreeningResult{
		Id:              r.Id,
		ChildId:         r.ChildId,
		Likelihood:      r.Likelihood,
		Percentage:      r.Percentage,
		Recommendations: r.Recommendations,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *ScreeningMapper) ResultToModel(r *entity.ScreeningResult) *model.ScreeningResult {
	if r == nil {
		return nil
	}
	return &model.ScreeningResult{
		Id:              r.Id,
		ChildId:         r.ChildId,
		Likelihood:      r.Likelihood,
		Percentage:      r.Percentage,
		Recommendations: r.Recommendations,
		CreatedAt:       r.CreatedAt,
	}
}
