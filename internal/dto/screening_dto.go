package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChildInfoRequest is stored as submitted; the profile form has no
// presence rules beyond what the storage layer tolerates.
type ChildInfoRequest struct {
	ChildName string `json:"child-name" form:"child-name"`
	ChildAge  int    `json:"child-age" form:"child-age"`
	Gender    string `json:"child-gender" form:"child-gender"`
	Symptoms  string `json:"symptoms" form:"symptoms"`
}

type ChildInfoResponse struct {
	ChildId uuid.UUID `json:"child_id"`
	// Proceed is false when the symptoms answer was "no" and the
	// questionnaire step is skipped.
	Proceed bool `json:"proceed"`
}

// QuestionnaireRequest has no validate tags on purpose: absent answers
// are stored empty and score zero.
type QuestionnaireRequest struct {
	Q1  string `json:"q1" form:"q1"`
	Q2  string `json:"q2" form:"q2"`
	Q3  string `json:"q3" form:"q3"`
	Q4  string `json:"q4" form:"q4"`
	Q5  string `json:"q5" form:"q5"`
	Q6  string `json:"q6" form:"q6"`
	Q7  string `json:"q7" form:"q7"`
	Q8  string `json:"q8" form:"q8"`
	Q9  string `json:"q9" form:"q9"`
	Q10 string `json:"q10" form:"q10"`
}

// Answers collapses the named slots into the fixed-size array the
// scoring engine takes, in question order.
func (r *QuestionnaireRequest) Answers() [10]string {
	return [10]string{r.Q1, r.Q2, r.Q3, r.Q4, r.Q5, r.Q6, r.Q7, r.Q8, r.Q9, r.Q10}
}

type QuestionnaireResponse struct {
	ResultId uuid.UUID `json:"result_id"`
}

type ScreeningResultResponse struct {
	Id              uuid.UUID `json:"id"`
	ChildId         uuid.UUID `json:"child_id"`
	Likelihood      string    `json:"likelihood"`
	Percentage      float64   `json:"percentage"`
	Recommendations string    `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at"`
}
