package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
)

func TestSplitSkills(t *testing.T) {
	skills := map[string]int{
		"HTML":       90,
		"CSS":        85,
		"JavaScript": 80,
		"Python":     40,
		"Java":       30,
		"C":          20,
	}
	top, weak := splitSkills(skills, 3)

	for _, name := range []string{"HTML", "CSS", "JavaScript"} {
		if _, ok := top[name]; !ok {
			t.Fatalf("top=%v, missing %s", top, name)
		}
	}
	for _, name := range []string{"Python", "Java", "C"} {
		if _, ok := weak[name]; !ok {
			t.Fatalf("weak=%v, missing %s", weak, name)
		}
	}
	if len(top) != 3 || len(weak) != 3 {
		t.Fatalf("top=%v weak=%v, want 3 each", top, weak)
	}
}

func TestSplitSkillsTiesBreakByName(t *testing.T) {
	skills := map[string]int{"B": 50, "A": 50, "C": 50, "D": 50}
	top, _ := splitSkills(skills, 2)
	if _, ok := top["A"]; !ok {
		t.Fatalf("top=%v, want alphabetical tiebreak to include A", top)
	}
	if _, ok := top["B"]; !ok {
		t.Fatalf("top=%v, want alphabetical tiebreak to include B", top)
	}
}

func TestCareerReport(t *testing.T) {
	f := newTestFixture(t)
	roleID := f.seedFrontendRole(t)
	employee := f.createEmployee(t, "Ann Lee", roleID, map[string]int{
		"html_score":       90,
		"css_score":        20,
		"javascript_score": 85,
	})

	ai := &fakeAIClient{reply: "## Roadmap\nFocus on CSS."}
	svc := NewAnalysisService(logger.NewNop(), f.employeeRepo, ai)

	report, err := svc.CareerReport(context.Background(), employee.ID)
	if err != nil {
		t.Fatalf("CareerReport: %v", err)
	}
	if report.Employee["name"] != "Ann Lee" || report.Employee["role"] != "Frontend Developer" {
		t.Fatalf("employee=%v", report.Employee)
	}
	if report.TopSkills["HTML"] != 90 {
		t.Fatalf("top skills=%v, want HTML 90", report.TopSkills)
	}
	if _, ok := report.WeakSkills["CSS"]; !ok {
		t.Fatalf("weak skills=%v, want CSS present", report.WeakSkills)
	}
	if report.Analysis != "## Roadmap\nFocus on CSS." {
		t.Fatalf("analysis=%q", report.Analysis)
	}
}

func TestCareerReportUnknownEmployee(t *testing.T) {
	f := newTestFixture(t)
	svc := NewAnalysisService(logger.NewNop(), f.employeeRepo, &fakeAIClient{})
	if _, err := svc.CareerReport(context.Background(), 42); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("err=%v, want ErrEmployeeNotFound", err)
	}
}
