package services

import (
	"context"
	"testing"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
)

func TestSlideContent(t *testing.T) {
	ai := &fakeAIClient{reply: "```json\n{\"title\": \"Intro\", \"image_url\": \"\", \"concept\": \"c\", \"example\": \"e\"}\n```"}
	svc := NewContentService(logger.NewNop(), ai)

	slide := svc.SlideContent(context.Background(), "HTML Fundamentals", 1, 5)
	if IsErrorResult(slide) {
		t.Fatalf("unexpected error result: %v", slide)
	}
	if slide["title"] != "Intro" || slide["concept"] != "c" {
		t.Fatalf("slide=%v", slide)
	}
}

func TestSlideContentPassesErrorThrough(t *testing.T) {
	ai := &fakeAIClient{reply: `{"error": "AI Error: timeout"}`}
	svc := NewContentService(logger.NewNop(), ai)

	slide := svc.SlideContent(context.Background(), "HTML Fundamentals", 1, 5)
	if !IsErrorResult(slide) {
		t.Fatalf("slide=%v, want error result", slide)
	}
}

func TestQuizQuestions(t *testing.T) {
	ai := &fakeAIClient{reply: `[
		{"question": "q1", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 0},
		{"question": "q2", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 3}
	]`}
	svc := NewContentService(logger.NewNop(), ai)

	questions, envelope := svc.QuizQuestions(context.Background(), "HTML Fundamentals")
	if envelope != nil {
		t.Fatalf("unexpected envelope: %v", envelope)
	}
	if len(questions) != 2 || questions[1]["question"] != "q2" {
		t.Fatalf("questions=%v", questions)
	}
}

func TestQuizQuestionsMalformed(t *testing.T) {
	ai := &fakeAIClient{reply: "here are your questions: 1) ..."}
	svc := NewContentService(logger.NewNop(), ai)

	questions, envelope := svc.QuizQuestions(context.Background(), "HTML Fundamentals")
	if questions != nil {
		t.Fatalf("questions=%v, want nil", questions)
	}
	if envelope == nil || envelope["error"] != DecodeParseErrorMessage {
		t.Fatalf("envelope=%v, want parse-error envelope", envelope)
	}
}
