package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

// PathGenerationResult is the business outcome of a recommender run.
// Data-access failures are returned as errors instead.
type PathGenerationResult struct {
	Success    bool   `json:"success"`
	PathExists bool   `json:"path_exists,omitempty"`
	Message    string `json:"message"`
}

// RecommenderService computes the employee's skill gaps against their role's
// requirements and replaces their learning path with a model-ranked course
// sequence.
type RecommenderService interface {
	GeneratePath(ctx context.Context, employeeID uint) (*PathGenerationResult, error)
}

type recommenderService struct {
	db           *gorm.DB
	log          *logger.Logger
	employeeRepo repos.EmployeeRepo
	roleRepo     repos.RoleRepo
	courseRepo   repos.CourseRepo
	pathRepo     repos.LearningPathRepo
	aiClient     AIClient
}

func NewRecommenderService(db *gorm.DB, log *logger.Logger, employeeRepo repos.EmployeeRepo, roleRepo repos.RoleRepo, courseRepo repos.CourseRepo, pathRepo repos.LearningPathRepo, aiClient AIClient) RecommenderService {
	return &recommenderService{
		db:           db,
		log:          log.With("service", "RecommenderService"),
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		courseRepo:   courseRepo,
		pathRepo:     pathRepo,
		aiClient:     aiClient,
	}
}

func (s *recommenderService) GeneratePath(ctx context.Context, employeeID uint) (*PathGenerationResult, error) {
	employee, err := s.employeeRepo.GetByIDWithRole(ctx, nil, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &PathGenerationResult{Success: false, Message: "Employee not found."}, nil
		}
		return nil, err
	}

	requirements, err := s.roleRepo.GetRequirements(ctx, nil, employee.RoleID)
	if err != nil {
		return nil, err
	}

	gaps, gapSkillIDs := computeSkillGaps(employee, requirements)
	if len(gaps) == 0 {
		return &PathGenerationResult{Success: true, PathExists: true, Message: "No skill gaps found!"}, nil
	}

	courses, err := s.courseRepo.GetBySkillIDs(ctx, nil, gapSkillIDs)
	if err != nil {
		return nil, err
	}

	candidates := make([]RankedCourse, 0, len(courses))
	for _, c := range courses {
		skillName := ""
		if c.Skill != nil {
			skillName = c.Skill.Name
		}
		candidates = append(candidates, RankedCourse{CourseID: c.ID, CourseName: c.Name, SkillName: skillName})
	}

	roleName := ""
	if employee.Role != nil {
		roleName = employee.Role.Name
	}
	raw := s.aiClient.Complete(ctx, buildLearningPathPrompt(employee.Name, roleName, gaps, candidates))
	if obj := DecodeObject(raw); IsErrorResult(obj) {
		if msg, ok := obj["error"].(string); ok && strings.HasPrefix(msg, "AI Error:") {
			// Completion failed outright: leave the existing path untouched.
			return &PathGenerationResult{Success: false, Message: msg}, nil
		}
	}

	rankedNames := parseRankedCourses(raw)
	steps := resolveSteps(employeeID, rankedNames, candidates)
	if len(steps) == 0 {
		s.log.Warn("Model ranking produced no resolvable courses", "employee_id", employeeID)
		return &PathGenerationResult{Success: false, Message: "The model did not return any recognizable courses."}, nil
	}

	// Delete-then-insert runs inside one transaction so a failed insert never
	// leaves the prior path partially removed.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.pathRepo.DeleteByEmployeeID(ctx, tx, employeeID); err != nil {
			return err
		}
		if _, err := s.pathRepo.CreateSteps(ctx, tx, steps); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to replace learning path: %w", err)
	}

	return &PathGenerationResult{Success: true, Message: "A new learning path has been generated for you!"}, nil
}

func computeSkillGaps(employee *types.Employee, requirements []*types.RoleSkillRequirement) ([]SkillGap, []uint) {
	var gaps []SkillGap
	var skillIDs []uint
	for _, req := range requirements {
		if req.Skill == nil {
			continue
		}
		current := employee.ScoreFor(req.Skill.ScoreColumn)
		if current < req.RequiredProficiency {
			gaps = append(gaps, SkillGap{
				SkillName:     req.Skill.Name,
				CurrentScore:  current,
				RequiredScore: req.RequiredProficiency,
			})
			skillIDs = append(skillIDs, req.SkillID)
		}
	}
	return gaps, skillIDs
}

// parseRankedCourses expects a strict JSON array of course names and falls
// back to parseNumberedList when the model ignored the format directive.
func parseRankedCourses(raw string) []string {
	cleaned := CleanModelOutput(raw)
	var names []string
	if err := json.Unmarshal([]byte(cleaned), &names); err == nil {
		return names
	}
	return parseNumberedList(cleaned)
}

// parseNumberedList is the documented degradation path for models that
// answer with "N. name" lines instead of JSON. Each line splits on the first
// ". " delimiter; lines without a leading number are dropped.
func parseNumberedList(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		idx := strings.Index(line, ". ")
		if idx < 0 {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimSpace(line[:idx])); err != nil {
			continue
		}
		name := strings.TrimSpace(line[idx+2:])
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// resolveSteps maps ranked names back to course ids by exact name match.
// Unmatched names are dropped; surviving courses are numbered from 1 in the
// model's order.
func resolveSteps(employeeID uint, rankedNames []string, candidates []RankedCourse) []*types.LearningPathStep {
	byName := make(map[string]uint, len(candidates))
	for _, c := range candidates {
		byName[c.CourseName] = c.CourseID
	}
	var steps []*types.LearningPathStep
	for _, name := range rankedNames {
		courseID, ok := byName[strings.TrimSpace(name)]
		if !ok {
			continue
		}
		steps = append(steps, &types.LearningPathStep{
			EmployeeID: employeeID,
			CourseID:   courseID,
			StepOrder:  len(steps) + 1,
			Status:     types.StepStatusNotStarted,
		})
	}
	return steps
}
