package model

import (
	"time"

	"github.com/google/uuid"
)

type ChildProfile struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	ChildName string    `gorm:"type:varchar(255)"`
	ChildAge  int
	Gender    string    `gorm:"type:varchar(50)"`
	Symptoms  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChildProfile) TableName() string {
	return "child_info"
}

// QuestionnaireResponse keeps the ten answer slots as named columns,
// mirroring the form field names q1..q10.
type QuestionnaireResponse struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Q1        string    `gorm:"type:text"`
	Q2        string    `gorm:"type:text"`
	Q3        string    `gorm:"type:text"`
	Q4        string    `gorm:"type:text"`
	Q5        string    `gorm:"type:text"`
	Q6        string    `gorm:"type:text"`
	Q7        string    `gorm:"type:text"`
	Q8        string    `gorm:"type:text"`
	Q9        string    `gorm:"type:text"`
	Q10       string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (QuestionnaireResponse) TableName() string {
	return "questions"
}

type ScreeningResult struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChildId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Likelihood      string    `gorm:"type:varchar(50);not null"`
	Percentage      float64   `gorm:"not null"`
	Recommendations string    `gorm:"type:text;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (ScreeningResult) TableName() string {
	return "results"
}
