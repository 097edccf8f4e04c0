package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

func seedStep(t *testing.T, f *testFixture, employeeID uint, order int, status string) types.LearningPathStep {
	t.Helper()
	var course types.Course
	if err := f.db.Offset(order - 1).First(&course).Error; err != nil {
		t.Fatalf("load course: %v", err)
	}
	step := types.LearningPathStep{EmployeeID: employeeID, CourseID: course.ID, StepOrder: order, Status: status}
	if err := f.db.Create(&step).Error; err != nil {
		t.Fatalf("seed step: %v", err)
	}
	return step
}

func TestUpdateProgress(t *testing.T) {
	f := newTestFixture(t)
	roleID := f.seedFrontendRole(t)
	employee := f.createEmployee(t, "Ann Lee", roleID, nil)
	step := seedStep(t, f, employee.ID, 1, types.StepStatusNotStarted)
	svc := NewPathService(logger.NewNop(), f.pathRepo)

	cases := []struct {
		name         string
		progress     int
		wantStatus   string
		wantProgress int
	}{
		{name: "partial", progress: 50, wantStatus: types.StepStatusInProgress, wantProgress: 50},
		{name: "negative_clamped", progress: -10, wantStatus: types.StepStatusInProgress, wantProgress: 0},
		{name: "complete", progress: 100, wantStatus: types.StepStatusCompleted, wantProgress: 100},
		{name: "overshoot_clamped", progress: 250, wantStatus: types.StepStatusCompleted, wantProgress: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := svc.UpdateProgress(context.Background(), employee.ID, step.ID, tc.progress)
			if err != nil {
				t.Fatalf("UpdateProgress: %v", err)
			}
			if status != tc.wantStatus {
				t.Fatalf("status=%q, want %q", status, tc.wantStatus)
			}
			var reloaded types.LearningPathStep
			if err := f.db.First(&reloaded, step.ID).Error; err != nil {
				t.Fatalf("reload: %v", err)
			}
			if reloaded.Progress != tc.wantProgress || reloaded.Status != tc.wantStatus {
				t.Fatalf("row=%+v, want progress %d status %q", reloaded, tc.wantProgress, tc.wantStatus)
			}
		})
	}
}

func TestUpdateProgressWrongEmployee(t *testing.T) {
	f := newTestFixture(t)
	roleID := f.seedFrontendRole(t)
	owner := f.createEmployee(t, "Ann Lee", roleID, nil)
	other := f.createEmployee(t, "Bo Chen", roleID, nil)
	step := seedStep(t, f, owner.ID, 1, types.StepStatusNotStarted)

	svc := NewPathService(logger.NewNop(), f.pathRepo)
	if _, err := svc.UpdateProgress(context.Background(), other.ID, step.ID, 50); !errors.Is(err, ErrStepNotFound) {
		t.Fatalf("err=%v, want ErrStepNotFound for foreign step", err)
	}
}

func TestWorkflow(t *testing.T) {
	f := newTestFixture(t)
	roleID := f.seedFrontendRole(t)
	svc := NewPathService(logger.NewNop(), f.pathRepo)

	t.Run("no_path", func(t *testing.T) {
		employee := f.createEmployee(t, "Ann Lee", roleID, nil)
		w, err := svc.Workflow(context.Background(), employee.ID)
		if err != nil {
			t.Fatalf("Workflow: %v", err)
		}
		if !w.ProfileLoaded || w.RecommendationsGenerated {
			t.Fatalf("workflow=%+v, want profile only", w)
		}
	})

	t.Run("mixed_statuses", func(t *testing.T) {
		employee := f.createEmployee(t, "Bo Chen", roleID, nil)
		seedStep(t, f, employee.ID, 1, types.StepStatusPassed)
		seedStep(t, f, employee.ID, 2, types.StepStatusCompleted)
		seedStep(t, f, employee.ID, 3, types.StepStatusInProgress)

		w, err := svc.Workflow(context.Background(), employee.ID)
		if err != nil {
			t.Fatalf("Workflow: %v", err)
		}
		if !w.RecommendationsGenerated || !w.LearningInProgress || !w.AssessmentPending || !w.AssessmentCompleted {
			t.Fatalf("workflow=%+v, want all stages flagged", w)
		}
	})
}

func TestPendingListsCompletedAndFailed(t *testing.T) {
	f := newTestFixture(t)
	roleID := f.seedFrontendRole(t)
	employee := f.createEmployee(t, "Ann Lee", roleID, nil)
	seedStep(t, f, employee.ID, 1, types.StepStatusCompleted)
	seedStep(t, f, employee.ID, 2, types.StepStatusFailed)
	seedStep(t, f, employee.ID, 3, types.StepStatusPassed)

	svc := NewPathService(logger.NewNop(), f.pathRepo)
	pending, err := svc.Pending(context.Background(), employee.ID)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending count=%d, want 2 (completed and failed)", len(pending))
	}
}
