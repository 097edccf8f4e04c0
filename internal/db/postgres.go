package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "skillpath", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Role{},
		&types.Skill{},
		&types.RoleSkillRequirement{},
		&types.Employee{},
		&types.Credential{},
		&types.CredentialToken{},
		&types.Course{},
		&types.LearningPathStep{},
		&types.AssessmentAttempt{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name string
		stmt string
	}{
		{"fk_credentials_employee_id", `
			ALTER TABLE "credentials"
			ADD CONSTRAINT "fk_credentials_employee_id"
			FOREIGN KEY ("employee_id")
			REFERENCES "employees"("id")
			ON DELETE CASCADE
		`},
		{"fk_credential_tokens_credential_id", `
			ALTER TABLE "credential_tokens"
			ADD CONSTRAINT "fk_credential_tokens_credential_id"
			FOREIGN KEY ("credential_id")
			REFERENCES "credentials"("id")
			ON DELETE CASCADE
		`},
		{"fk_learning_path_steps_employee_id", `
			ALTER TABLE "learning_path_steps"
			ADD CONSTRAINT "fk_learning_path_steps_employee_id"
			FOREIGN KEY ("employee_id")
			REFERENCES "employees"("id")
			ON DELETE CASCADE
		`},
		{"fk_assessment_attempts_step_id", `
			ALTER TABLE "assessment_attempts"
			ADD CONSTRAINT "fk_assessment_attempts_step_id"
			FOREIGN KEY ("step_id")
			REFERENCES "learning_path_steps"("id")
			ON DELETE CASCADE
		`},
	}
	for _, c := range constraints {
		var count int64
		s.db.Raw(`SELECT COUNT(*) FROM information_schema.table_constraints WHERE constraint_name = ?`, c.name).Scan(&count)
		if count > 0 {
			continue
		}
		if err := s.db.Exec(c.stmt).Error; err != nil {
			return fmt.Errorf("Failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
