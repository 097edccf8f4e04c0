package types

import (
	"time"

	"gorm.io/datatypes"
)

// AssessmentAttempt is append-only. Answers holds the submitted answer
// indexes alongside the graded question set for audit.
type AssessmentAttempt struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	StepID    uint              `gorm:"index;not null;column:step_id" json:"step_id"`
	Step      *LearningPathStep `gorm:"constraint:OnDelete:CASCADE;foreignKey:StepID;references:ID" json:"-"`
	Score     int               `gorm:"not null;column:score" json:"score"`
	Passed    bool              `gorm:"not null;column:passed" json:"passed"`
	Answers   datatypes.JSON    `gorm:"column:answers" json:"answers,omitempty"`
	CreatedAt time.Time         `gorm:"not null;column:attempt_date" json:"attempt_date"`
}

func (AssessmentAttempt) TableName() string {
	return "assessment_attempts"
}
