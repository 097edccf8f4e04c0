package types

import (
	"time"
)

// Employee carries one numeric proficiency column per skill domain. The
// columns are fixed; Skill.ScoreColumn names which one a skill reads.
type Employee struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null;column:name" json:"name"`
	HTMLScore        int       `gorm:"not null;default:0;column:html_score" json:"html_score"`
	CSSScore         int       `gorm:"not null;default:0;column:css_score" json:"css_score"`
	JavascriptScore  int       `gorm:"not null;default:0;column:javascript_score" json:"javascript_score"`
	PythonScore      int       `gorm:"not null;default:0;column:python_score" json:"python_score"`
	JavaScore        int       `gorm:"not null;default:0;column:java_score" json:"java_score"`
	CScore           int       `gorm:"not null;default:0;column:c_score" json:"c_score"`
	CppScore         int       `gorm:"not null;default:0;column:cpp_score" json:"cpp_score"`
	SQLTestingScore  int       `gorm:"not null;default:0;column:sql_testing_score" json:"sql_testing_score"`
	ToolsCourseScore int       `gorm:"not null;default:0;column:tools_course_score" json:"tools_course_score"`
	RoleID           uint      `gorm:"index;not null;column:role_id" json:"role_id"`
	Role             *Role     `gorm:"foreignKey:RoleID;references:ID" json:"role,omitempty"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// ScoreColumns lists every per-skill score column in presentation order.
var ScoreColumns = []string{
	"html_score",
	"css_score",
	"javascript_score",
	"python_score",
	"java_score",
	"c_score",
	"cpp_score",
	"sql_testing_score",
	"tools_course_score",
}

// ScoreFor resolves a score column name against this row. Unknown columns
// read as 0, mirroring how a missing mapping behaved in the source schema.
func (e *Employee) ScoreFor(column string) int {
	switch column {
	case "html_score":
		return e.HTMLScore
	case "css_score":
		return e.CSSScore
	case "javascript_score":
		return e.JavascriptScore
	case "python_score":
		return e.PythonScore
	case "java_score":
		return e.JavaScore
	case "c_score":
		return e.CScore
	case "cpp_score":
		return e.CppScore
	case "sql_testing_score":
		return e.SQLTestingScore
	case "tools_course_score":
		return e.ToolsCourseScore
	}
	return 0
}

// SetScoreFor writes a score column by name. Used by onboarding, which
// receives scores keyed by upper-cased tabular column headers.
func (e *Employee) SetScoreFor(column string, score int) {
	switch column {
	case "html_score":
		e.HTMLScore = score
	case "css_score":
		e.CSSScore = score
	case "javascript_score":
		e.JavascriptScore = score
	case "python_score":
		e.PythonScore = score
	case "java_score":
		e.JavaScore = score
	case "c_score":
		e.CScore = score
	case "cpp_score":
		e.CppScore = score
	case "sql_testing_score":
		e.SQLTestingScore = score
	case "tools_course_score":
		e.ToolsCourseScore = score
	}
}
