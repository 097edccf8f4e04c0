package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/tabular"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/utils"
)

func newOnboarding(f *testFixture) OnboardingService {
	return NewOnboardingService(f.db, logger.NewNop(), f.employeeRepo, f.credentialRepo)
}

func TestAddEmployeeDerivesCredential(t *testing.T) {
	f := newTestFixture(t)
	f.seedFrontendRole(t)
	svc := newOnboarding(f)

	employee, err := svc.AddEmployee(context.Background(), AddEmployeeInput{
		Name:     "Ann Lee",
		Password: "s3cret",
		HTML:     80,
	})
	if err != nil {
		t.Fatalf("AddEmployee: %v", err)
	}
	if employee.ID == 0 {
		t.Fatal("employee id not assigned")
	}
	if employee.RoleID != 1 {
		t.Fatalf("role id=%d, want default 1", employee.RoleID)
	}
	if employee.HTMLScore != 80 || employee.CSSScore != 0 {
		t.Fatalf("scores=%+v, want html 80 and css default 0", employee)
	}

	var credential types.Credential
	if err := f.db.Where("employee_id = ?", employee.ID).First(&credential).Error; err != nil {
		t.Fatalf("load credential: %v", err)
	}
	wantUsername := fmt.Sprintf("annlee%d", employee.ID)
	if credential.Username != wantUsername {
		t.Fatalf("username=%q, want %q", credential.Username, wantUsername)
	}
	if credential.IsAdmin {
		t.Fatal("new employee credential must not be admin")
	}
	if credential.PasswordHash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if !utils.CheckPassword(credential.PasswordHash, "s3cret") {
		t.Fatal("stored hash does not verify against the input password")
	}
}

func TestBulkOnboardMissingNameColumn(t *testing.T) {
	f := newTestFixture(t)
	svc := newOnboarding(f)

	table := &tabular.Table{
		Columns: []string{"ROLE_ID", "HTML_SCORE"},
		Rows:    []tabular.Row{{"ROLE_ID": "1", "HTML_SCORE": "50"}},
	}
	if _, err := svc.BulkOnboard(context.Background(), table); err == nil {
		t.Fatal("expected rejection for missing NAME column")
	} else if err.Error() != "File is missing the required 'NAME' column." {
		t.Fatalf("err=%q, want missing-NAME message", err.Error())
	}

	var count int64
	f.db.Model(&types.Employee{}).Count(&count)
	if count != 0 {
		t.Fatalf("employees created=%d, want 0", count)
	}
}

func TestBulkOnboardCreatesRoster(t *testing.T) {
	f := newTestFixture(t)
	f.seedFrontendRole(t)
	svc := newOnboarding(f)

	table := &tabular.Table{
		Columns: []string{"NAME", "HTML_SCORE", "JAVASCRIPT_SCORE"},
		Rows: []tabular.Row{
			{"NAME": "Ann Lee", "HTML_SCORE": "85", "JAVASCRIPT_SCORE": "60"},
			{"NAME": "Bo Chen", "HTML_SCORE": "40"},
			{"NAME": ""}, // blank name rows are skipped, not failed
		},
	}
	added, err := svc.BulkOnboard(context.Background(), table)
	if err != nil {
		t.Fatalf("BulkOnboard: %v", err)
	}
	if added != 2 {
		t.Fatalf("added=%d, want 2", added)
	}

	var employees []types.Employee
	if err := f.db.Order("id").Find(&employees).Error; err != nil {
		t.Fatalf("load employees: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("employee count=%d, want 2", len(employees))
	}
	if employees[0].HTMLScore != 85 || employees[0].JavascriptScore != 60 {
		t.Fatalf("first employee scores=%+v", employees[0])
	}
	if employees[1].JavascriptScore != 0 {
		t.Fatalf("absent score column should default to 0, got %d", employees[1].JavascriptScore)
	}

	// Roster credentials get the placeholder password pass<id>, hashed.
	for _, e := range employees {
		var credential types.Credential
		if err := f.db.Where("employee_id = ?", e.ID).First(&credential).Error; err != nil {
			t.Fatalf("load credential for %d: %v", e.ID, err)
		}
		if !utils.CheckPassword(credential.PasswordHash, fmt.Sprintf("pass%d", e.ID)) {
			t.Fatalf("placeholder password does not verify for employee %d", e.ID)
		}
	}
}

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		employeeID uint
		want       string
	}{
		{name: "spaces_stripped", input: "Ann Lee", employeeID: 7, want: "annlee7"},
		{name: "already_lower", input: "bo", employeeID: 12, want: "bo12"},
		{name: "surrounding_whitespace", input: "  Cara Díaz ", employeeID: 3, want: "caradíaz3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveUsername(tc.input, tc.employeeID); got != tc.want {
				t.Fatalf("deriveUsername(%q, %d)=%q, want %q", tc.input, tc.employeeID, got, tc.want)
			}
		})
	}
}
