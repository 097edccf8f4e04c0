package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// MaxOpenConns(1) keeps every statement on the same :memory: database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gdb.AutoMigrate(
		&types.Role{},
		&types.Skill{},
		&types.RoleSkillRequirement{},
		&types.Employee{},
		&types.Credential{},
		&types.CredentialToken{},
		&types.Course{},
		&types.LearningPathStep{},
		&types.AssessmentAttempt{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// fakeAIClient returns canned output and counts invocations.
type fakeAIClient struct {
	reply string
	calls int
}

func (f *fakeAIClient) Complete(ctx context.Context, prompt string) string {
	f.calls++
	return f.reply
}

type testFixture struct {
	db             *gorm.DB
	employeeRepo   repos.EmployeeRepo
	credentialRepo repos.CredentialRepo
	tokenRepo      repos.CredentialTokenRepo
	roleRepo       repos.RoleRepo
	courseRepo     repos.CourseRepo
	pathRepo       repos.LearningPathRepo
	assessmentRepo repos.AssessmentRepo
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	gdb := newTestDB(t)
	log := logger.NewNop()
	return &testFixture{
		db:             gdb,
		employeeRepo:   repos.NewEmployeeRepo(gdb, log),
		credentialRepo: repos.NewCredentialRepo(gdb, log),
		tokenRepo:      repos.NewCredentialTokenRepo(gdb, log),
		roleRepo:       repos.NewRoleRepo(gdb, log),
		courseRepo:     repos.NewCourseRepo(gdb, log),
		pathRepo:       repos.NewLearningPathRepo(gdb, log),
		assessmentRepo: repos.NewAssessmentRepo(gdb, log),
	}
}

// seedFrontendRole creates a role with three skill requirements and one
// course per skill. Returns the role id.
func (f *testFixture) seedFrontendRole(t *testing.T) uint {
	t.Helper()
	role := types.Role{Name: "Frontend Developer"}
	if err := f.db.Create(&role).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	skills := []struct {
		name     string
		column   string
		required int
		course   string
	}{
		{"HTML", "html_score", 70, "HTML Fundamentals"},
		{"CSS", "css_score", 70, "Advanced CSS Layouts"},
		{"JavaScript", "javascript_score", 75, "JavaScript Essentials"},
	}
	for _, s := range skills {
		skill := types.Skill{Name: s.name, ScoreColumn: s.column}
		if err := f.db.Create(&skill).Error; err != nil {
			t.Fatalf("seed skill %s: %v", s.name, err)
		}
		req := types.RoleSkillRequirement{RoleID: role.ID, SkillID: skill.ID, RequiredProficiency: s.required}
		if err := f.db.Create(&req).Error; err != nil {
			t.Fatalf("seed requirement %s: %v", s.name, err)
		}
		course := types.Course{Name: s.course, SkillID: skill.ID}
		if err := f.db.Create(&course).Error; err != nil {
			t.Fatalf("seed course %s: %v", s.course, err)
		}
	}
	return role.ID
}

func (f *testFixture) createEmployee(t *testing.T, name string, roleID uint, scores map[string]int) *types.Employee {
	t.Helper()
	employee := &types.Employee{Name: name, RoleID: roleID}
	for column, score := range scores {
		employee.SetScoreFor(column, score)
	}
	if err := f.db.Create(employee).Error; err != nil {
		t.Fatalf("seed employee %s: %v", name, err)
	}
	return employee
}
