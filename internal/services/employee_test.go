package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

func newEmployeeService(f *testFixture) EmployeeService {
	return NewEmployeeService(f.db, logger.NewNop(), f.employeeRepo, f.credentialRepo, f.tokenRepo, f.pathRepo, f.assessmentRepo)
}

func TestDeleteEmployeeCascades(t *testing.T) {
	f := newTestFixture(t)
	roleID := f.seedFrontendRole(t)
	employee := f.createEmployee(t, "Ann Lee", roleID, nil)

	credential := types.Credential{EmployeeID: employee.ID, Username: "annlee1", PasswordHash: "x"}
	if err := f.db.Create(&credential).Error; err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	token := types.CredentialToken{CredentialID: credential.ID, AccessToken: "at", RefreshToken: "rt", ExpiresAt: time.Now().Add(time.Hour)}
	if err := f.db.Create(&token).Error; err != nil {
		t.Fatalf("seed token: %v", err)
	}
	var course types.Course
	if err := f.db.First(&course).Error; err != nil {
		t.Fatalf("load course: %v", err)
	}
	step := types.LearningPathStep{EmployeeID: employee.ID, CourseID: course.ID, StepOrder: 1}
	if err := f.db.Create(&step).Error; err != nil {
		t.Fatalf("seed step: %v", err)
	}
	attempt := types.AssessmentAttempt{StepID: step.ID, Score: 80, Passed: true}
	if err := f.db.Create(&attempt).Error; err != nil {
		t.Fatalf("seed attempt: %v", err)
	}

	if err := newEmployeeService(f).Delete(context.Background(), employee.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	counts := map[string]interface{}{
		"employees":           &types.Employee{},
		"credentials":         &types.Credential{},
		"credential_tokens":   &types.CredentialToken{},
		"learning_path_steps": &types.LearningPathStep{},
		"assessment_attempts": &types.AssessmentAttempt{},
	}
	for table, model := range counts {
		var n int64
		if err := f.db.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n != 0 {
			t.Fatalf("%s left behind: %d rows", table, n)
		}
	}
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	f := newTestFixture(t)
	if err := newEmployeeService(f).Delete(context.Background(), 42); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("err=%v, want ErrEmployeeNotFound", err)
	}
}

func TestListEmployeesIncludesRoleName(t *testing.T) {
	f := newTestFixture(t)
	roleID := f.seedFrontendRole(t)
	f.createEmployee(t, "Ann Lee", roleID, nil)
	f.createEmployee(t, "Bo Chen", roleID, nil)

	rows, err := newEmployeeService(f).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count=%d, want 2", len(rows))
	}
	if rows[0].RoleName != "Frontend Developer" {
		t.Fatalf("role name=%q, want Frontend Developer", rows[0].RoleName)
	}
}
