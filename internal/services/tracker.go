package services

import (
	"context"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
)

// TrackerAnalysis is the two-field narrative the tracker agent produces: a
// one-sentence headline and a longer markdown body.
type TrackerAnalysis struct {
	Summary string `json:"summary"`
	Details string `json:"details"`
}

// Fixed results for the degenerate cases. No remote call is made when there
// is nothing to analyze.
var (
	trackerNoActivity = TrackerAnalysis{
		Summary: "No learning activity found.",
		Details: "Start a course to begin tracking your progress.",
	}
	trackerFallbackHeadline = "Analysis Complete"
)

// TrackerService analyzes learning patterns, completion history, and quiz
// scores into a narrative summary.
type TrackerService interface {
	Analyze(ctx context.Context, employeeID uint) (*TrackerAnalysis, error)
}

type trackerService struct {
	log            *logger.Logger
	pathRepo       repos.LearningPathRepo
	assessmentRepo repos.AssessmentRepo
	aiClient       AIClient
}

func NewTrackerService(log *logger.Logger, pathRepo repos.LearningPathRepo, assessmentRepo repos.AssessmentRepo, aiClient AIClient) TrackerService {
	return &trackerService{
		log:            log.With("service", "TrackerService"),
		pathRepo:       pathRepo,
		assessmentRepo: assessmentRepo,
		aiClient:       aiClient,
	}
}

func (s *trackerService) Analyze(ctx context.Context, employeeID uint) (*TrackerAnalysis, error) {
	courseHistory, err := s.pathRepo.GetCourseHistory(ctx, nil, employeeID)
	if err != nil {
		return nil, err
	}
	assessmentHistory, err := s.assessmentRepo.GetHistory(ctx, nil, employeeID)
	if err != nil {
		return nil, err
	}

	if len(courseHistory) == 0 && len(assessmentHistory) == 0 {
		result := trackerNoActivity
		return &result, nil
	}

	raw := s.aiClient.Complete(ctx, buildTrackerPrompt(courseHistory, assessmentHistory))
	decoded := DecodeObject(raw)
	summary, sok := decoded["summary"].(string)
	details, dok := decoded["details"].(string)
	if IsErrorResult(decoded) || !sok || !dok {
		// Structured parsing failed: surface the raw text under a fixed
		// headline rather than failing the request.
		return &TrackerAnalysis{Summary: trackerFallbackHeadline, Details: CleanModelOutput(raw)}, nil
	}
	return &TrackerAnalysis{Summary: summary, Details: details}, nil
}
