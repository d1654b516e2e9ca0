package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChildProfile is one screened child. A user may own many profiles.
type ChildProfile struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ChildName string
	ChildAge  int
	Gender    string
	Symptoms  string
	CreatedAt time.Time
}

// QuestionnaireResponse holds the ten raw answers exactly as submitted,
// including values outside the recognized set. It is keyed by user, not
// by child profile: a user with several profiles cannot tell which
// questionnaire belongs to which child. That ambiguity is inherited
// from the data this system was built around and is kept on purpose.
type QuestionnaireResponse struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Answers   [10]string
	CreatedAt time.Time
}

// ScreeningResult is the computed outcome for one child profile.
// Created once, never mutated.
type ScreeningResult struct {
	Id              uuid.UUID
	ChildId         uuid.UUID
	Likelihood      string
	Percentage      float64
	Recommendations string
	CreatedAt       time.Time
}
