package services

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

// CareerReport is the HR-facing skill analysis for one employee. Analysis
// holds the model's markdown roadmap, or its raw/error text when the model
// misbehaved.
type CareerReport struct {
	Employee   map[string]string `json:"employee"`
	TopSkills  map[string]int    `json:"top_skills"`
	WeakSkills map[string]int    `json:"weak_skills"`
	Analysis   string            `json:"analysis"`
}

var ErrEmployeeNotFound = errors.New("employee not found")

// AnalysisService generates the admin career-development report.
type AnalysisService interface {
	CareerReport(ctx context.Context, employeeID uint) (*CareerReport, error)
}

type analysisService struct {
	log          *logger.Logger
	employeeRepo repos.EmployeeRepo
	aiClient     AIClient
}

func NewAnalysisService(log *logger.Logger, employeeRepo repos.EmployeeRepo, aiClient AIClient) AnalysisService {
	return &analysisService{
		log:          log.With("service", "AnalysisService"),
		employeeRepo: employeeRepo,
		aiClient:     aiClient,
	}
}

func (s *analysisService) CareerReport(ctx context.Context, employeeID uint) (*CareerReport, error) {
	employee, err := s.employeeRepo.GetByIDWithRole(ctx, nil, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	skills := skillProfile(employee)
	top, weak := splitSkills(skills, 3)

	roleName := ""
	if employee.Role != nil {
		roleName = employee.Role.Name
	}
	analysis := s.aiClient.Complete(ctx, buildCareerReportPrompt(employee.Name, roleName, skills))

	return &CareerReport{
		Employee:   map[string]string{"name": employee.Name, "role": roleName},
		TopSkills:  top,
		WeakSkills: weak,
		Analysis:   analysis,
	}, nil
}

// skillProfile maps display skill names onto the employee's score columns.
func skillProfile(employee *types.Employee) map[string]int {
	return map[string]int{
		"HTML":          employee.HTMLScore,
		"CSS":           employee.CSSScore,
		"JavaScript":    employee.JavascriptScore,
		"Python":        employee.PythonScore,
		"Java":          employee.JavaScore,
		"C":             employee.CScore,
		"C++":           employee.CppScore,
		"SQL Testing":   employee.SQLTestingScore,
		"Testing Tools": employee.ToolsCourseScore,
	}
}

func splitSkills(skills map[string]int, n int) (top, weak map[string]int) {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if skills[names[i]] != skills[names[j]] {
			return skills[names[i]] > skills[names[j]]
		}
		return names[i] < names[j]
	})

	top = map[string]int{}
	weak = map[string]int{}
	for i, name := range names {
		if i < n {
			top[name] = skills[name]
		}
		if i >= len(names)-n {
			weak[name] = skills[name]
		}
	}
	return top, weak
}
