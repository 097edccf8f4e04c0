package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

// PassThreshold is the minimum percentage score that passes an assessment.
const PassThreshold = 70

// AssessmentResult reports one graded submission.
type AssessmentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Score   int    `json:"score"`
	Passed  bool   `json:"passed"`
}

// AssessmentService grades quiz submissions locally (no model call) and
// records immutable attempt rows.
type AssessmentService interface {
	Submit(ctx context.Context, employeeID, stepID uint, questions []QuizQuestion, answers []int) (*AssessmentResult, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	pathRepo       repos.LearningPathRepo
	assessmentRepo repos.AssessmentRepo
}

func NewAssessmentService(db *gorm.DB, log *logger.Logger, pathRepo repos.LearningPathRepo, assessmentRepo repos.AssessmentRepo) AssessmentService {
	return &assessmentService{
		db:             db,
		log:            log.With("service", "AssessmentService"),
		pathRepo:       pathRepo,
		assessmentRepo: assessmentRepo,
	}
}

// ScoreQuiz computes score = round(100 * correct/total) and the pass flag.
// Independent of question order; answers beyond the question count are
// ignored, missing answers count as wrong.
func ScoreQuiz(questions []QuizQuestion, answers []int) (int, bool, error) {
	if len(questions) == 0 {
		return 0, false, fmt.Errorf("No questions to grade")
	}
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswerIndex {
			correct++
		}
	}
	score := int(math.Round(float64(correct) / float64(len(questions)) * 100))
	return score, score >= PassThreshold, nil
}

func (s *assessmentService) Submit(ctx context.Context, employeeID, stepID uint, questions []QuizQuestion, answers []int) (*AssessmentResult, error) {
	step, err := s.pathRepo.GetStepForEmployee(ctx, nil, stepID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStepNotFound
		}
		return nil, err
	}

	score, passed, err := ScoreQuiz(questions, answers)
	if err != nil {
		return nil, err
	}

	detail, err := json.Marshal(map[string]interface{}{
		"answers":   answers,
		"questions": questions,
	})
	if err != nil {
		return nil, err
	}

	newStatus := types.StepStatusFailed
	if passed {
		newStatus = types.StepStatusPassed
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt := &types.AssessmentAttempt{
			StepID:  step.ID,
			Score:   score,
			Passed:  passed,
			Answers: datatypes.JSON(detail),
		}
		if _, err := s.assessmentRepo.Create(ctx, tx, []*types.AssessmentAttempt{attempt}); err != nil {
			return err
		}
		return s.pathRepo.UpdateStatus(ctx, tx, step.ID, newStatus)
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to record assessment attempt: %w", err)
	}

	message := fmt.Sprintf("You scored %d%%. Please try again.", score)
	if passed {
		message = fmt.Sprintf("You Passed with %d%%!", score)
	}
	return &AssessmentResult{Success: true, Message: message, Score: score, Passed: passed}, nil
}
