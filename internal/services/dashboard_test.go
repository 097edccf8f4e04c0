package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

func TestDashboardStats(t *testing.T) {
	f := newTestFixture(t)
	roleID := f.seedFrontendRole(t)
	a := f.createEmployee(t, "Ann Lee", roleID, nil)
	b := f.createEmployee(t, "Bo Chen", roleID, nil)
	seedStep(t, f, a.ID, 1, types.StepStatusPassed)
	seedStep(t, f, a.ID, 2, types.StepStatusCompleted)
	seedStep(t, f, b.ID, 1, types.StepStatusInProgress)
	seedStep(t, f, b.ID, 2, types.StepStatusNotStarted)
	seedStep(t, f, b.ID, 3, types.StepStatusFailed)

	svc := NewDashboardService(logger.NewNop(), f.employeeRepo, f.pathRepo)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalEmployees != 2 {
		t.Fatalf("total=%d, want 2", stats.TotalEmployees)
	}

	chart := stats.CourseStatusChart
	wantLabels := []string{"Completed", "In Progress", "Not Started"}
	// Passed+Completed collapse into Completed; Failed counts as Not Started.
	wantData := []int64{2, 1, 2}
	for i, label := range wantLabels {
		if chart.Labels[i] != label || chart.Data[i] != wantData[i] {
			t.Fatalf("chart=%+v, want %v/%v", chart, wantLabels, wantData)
		}
	}

	progress := stats.LearningProgressChart
	if len(progress.Labels) != 1 || progress.Labels[0] != "Frontend Developer" || progress.Data[0] != 2 {
		t.Fatalf("progress chart=%+v, want both employees under Frontend Developer", progress)
	}
}

func TestAgentMetricsShape(t *testing.T) {
	svc := NewDashboardService(logger.NewNop(), nil, nil)
	metrics := svc.AgentMetrics()

	wantAgents := []string{"Recommender_Agent", "Course_Content_Agent", "Assessment_Agent", "Tracker_Agent"}
	if len(metrics) != len(wantAgents) {
		t.Fatalf("metrics=%v, want %d agents", metrics, len(wantAgents))
	}
	for _, agent := range wantAgents {
		m, ok := metrics[agent]
		if !ok {
			t.Fatalf("missing agent %s", agent)
		}
		if m.Queue < 0 || m.LatencyMs <= 0 {
			t.Fatalf("%s metric out of range: %+v", agent, m)
		}
		if !strings.HasSuffix(m.ErrorRate, "%") {
			t.Fatalf("%s error rate %q not percent-formatted", agent, m.ErrorRate)
		}
	}
}
