package services

import (
	"context"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
)

// QuizQuestion is one generated multiple-choice question. CorrectAnswerIndex
// is zero-based into Options.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// ContentService hosts the stateless generators keyed by course name: slide
// content and assessment questions. Results are the normalized structured
// data or the raw-text/error envelope; callers treat an error-tagged result
// as "no content available".
type ContentService interface {
	SlideContent(ctx context.Context, courseName string, slideNumber, totalSlides int) map[string]interface{}
	QuizQuestions(ctx context.Context, courseName string) ([]map[string]interface{}, map[string]interface{})
}

type contentService struct {
	log      *logger.Logger
	aiClient AIClient
}

func NewContentService(log *logger.Logger, aiClient AIClient) ContentService {
	return &contentService{
		log:      log.With("service", "ContentService"),
		aiClient: aiClient,
	}
}

func (s *contentService) SlideContent(ctx context.Context, courseName string, slideNumber, totalSlides int) map[string]interface{} {
	raw := s.aiClient.Complete(ctx, buildSlideContentPrompt(courseName, slideNumber, totalSlides))
	return DecodeObject(raw)
}

func (s *contentService) QuizQuestions(ctx context.Context, courseName string) ([]map[string]interface{}, map[string]interface{}) {
	raw := s.aiClient.Complete(ctx, buildQuizPrompt(courseName))
	return DecodeArray(raw)
}
