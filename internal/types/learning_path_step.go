package types

import (
	"time"
)

// Learning path step statuses. "Completed" means the course content is done
// and the assessment is pending; "Passed"/"Failed" record the assessment
// outcome.
const (
	StepStatusNotStarted = "Not Started"
	StepStatusInProgress = "In Progress"
	StepStatusCompleted  = "Completed"
	StepStatusFailed     = "Failed"
	StepStatusPassed     = "Passed"
)

// LearningPathStep is one ordered course assignment in an employee's path.
// StepOrder is unique per employee and defines presentation sequence.
type LearningPathStep struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"index:idx_employee_step,unique;not null;column:employee_id" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnDelete:CASCADE;foreignKey:EmployeeID;references:ID" json:"-"`
	CourseID   uint      `gorm:"index;not null;column:course_id" json:"course_id"`
	Course     *Course   `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	StepOrder  int       `gorm:"index:idx_employee_step,unique;not null;column:step_order" json:"step_order"`
	Status     string    `gorm:"not null;default:'Not Started';column:status" json:"status"`
	Progress   int       `gorm:"not null;default:0;column:progress" json:"progress"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (LearningPathStep) TableName() string {
	return "learning_path_steps"
}
