package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/utils"
)

// Seed inserts the static reference data (roles, skills, requirements,
// courses) and a default admin credential. Idempotent: rows are looked up by
// name before insert, so repeated startups leave the data unchanged.
func Seed(gdb *gorm.DB, log *logger.Logger) error {
	seedLog := log.With("service", "Seed")

	skills := []types.Skill{
		{Name: "HTML", ScoreColumn: "html_score"},
		{Name: "CSS", ScoreColumn: "css_score"},
		{Name: "JavaScript", ScoreColumn: "javascript_score"},
		{Name: "Python", ScoreColumn: "python_score"},
		{Name: "Java", ScoreColumn: "java_score"},
		{Name: "C", ScoreColumn: "c_score"},
		{Name: "C++", ScoreColumn: "cpp_score"},
		{Name: "SQL Testing", ScoreColumn: "sql_testing_score"},
		{Name: "Testing Tools", ScoreColumn: "tools_course_score"},
	}
	skillIDs := map[string]uint{}
	for i := range skills {
		if err := gdb.Where(types.Skill{Name: skills[i].Name}).FirstOrCreate(&skills[i]).Error; err != nil {
			return fmt.Errorf("Failed to seed skill %q: %w", skills[i].Name, err)
		}
		skillIDs[skills[i].Name] = skills[i].ID
	}

	roles := []types.Role{
		{Name: "Frontend Developer"},
		{Name: "Backend Developer"},
		{Name: "QA Engineer"},
	}
	roleIDs := map[string]uint{}
	for i := range roles {
		if err := gdb.Where(types.Role{Name: roles[i].Name}).FirstOrCreate(&roles[i]).Error; err != nil {
			return fmt.Errorf("Failed to seed role %q: %w", roles[i].Name, err)
		}
		roleIDs[roles[i].Name] = roles[i].ID
	}

	requirements := []struct {
		role     string
		skill    string
		required int
	}{
		{"Frontend Developer", "HTML", 70},
		{"Frontend Developer", "CSS", 70},
		{"Frontend Developer", "JavaScript", 75},
		{"Backend Developer", "Python", 75},
		{"Backend Developer", "Java", 70},
		{"Backend Developer", "SQL Testing", 65},
		{"QA Engineer", "SQL Testing", 75},
		{"QA Engineer", "Testing Tools", 80},
		{"QA Engineer", "Python", 60},
	}
	for _, r := range requirements {
		req := types.RoleSkillRequirement{
			RoleID:              roleIDs[r.role],
			SkillID:             skillIDs[r.skill],
			RequiredProficiency: r.required,
		}
		if err := gdb.Where(types.RoleSkillRequirement{RoleID: req.RoleID, SkillID: req.SkillID}).
			Attrs(types.RoleSkillRequirement{RequiredProficiency: req.RequiredProficiency}).
			FirstOrCreate(&req).Error; err != nil {
			return fmt.Errorf("Failed to seed requirement %s/%s: %w", r.role, r.skill, err)
		}
	}

	courses := []struct {
		name  string
		skill string
	}{
		{"HTML Fundamentals", "HTML"},
		{"Advanced CSS Layouts", "CSS"},
		{"JavaScript Essentials", "JavaScript"},
		{"Python for Engineers", "Python"},
		{"Java Programming Basics", "Java"},
		{"C Programming Deep Dive", "C"},
		{"Modern C++", "C++"},
		{"SQL for Testers", "SQL Testing"},
		{"Test Automation Tools", "Testing Tools"},
	}
	for _, c := range courses {
		course := types.Course{Name: c.name, SkillID: skillIDs[c.skill]}
		if err := gdb.Where(types.Course{Name: c.name}).
			Attrs(types.Course{SkillID: course.SkillID}).
			FirstOrCreate(&course).Error; err != nil {
			return fmt.Errorf("Failed to seed course %q: %w", c.name, err)
		}
	}

	// Default admin account. The admin owns a placeholder employee row so the
	// credential's 1:1 employee reference holds for every login.
	var adminCount int64
	if err := gdb.Model(&types.Credential{}).Where("is_admin = ?", true).Count(&adminCount).Error; err != nil {
		return fmt.Errorf("Failed to check for admin credential: %w", err)
	}
	if adminCount == 0 {
		adminPassword := utils.GetEnv("ADMIN_PASSWORD", "admin123", log)
		hash, err := utils.HashPassword(adminPassword)
		if err != nil {
			return err
		}
		adminEmployee := types.Employee{Name: "Administrator", RoleID: roleIDs["Backend Developer"]}
		if err := gdb.Create(&adminEmployee).Error; err != nil {
			return fmt.Errorf("Failed to seed admin employee: %w", err)
		}
		adminCredential := types.Credential{
			EmployeeID:   adminEmployee.ID,
			Username:     "admin",
			PasswordHash: hash,
			IsAdmin:      true,
		}
		if err := gdb.Create(&adminCredential).Error; err != nil {
			return fmt.Errorf("Failed to seed admin credential: %w", err)
		}
		seedLog.Info("Seeded default admin credential", "username", "admin")
	}

	return nil
}
