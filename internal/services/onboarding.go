package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/tabular"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/utils"
)

// scoreColumnsByHeader maps roster column headers to employee score columns.
// The same headers, minus the _SCORE suffix, are accepted by the single-add
// API.
var scoreColumnsByHeader = map[string]string{
	"HTML_SCORE":         "html_score",
	"CSS_SCORE":          "css_score",
	"JAVASCRIPT_SCORE":   "javascript_score",
	"PYTHON_SCORE":       "python_score",
	"JAVA_SCORE":         "java_score",
	"C_SCORE":            "c_score",
	"CPP_SCORE":          "cpp_score",
	"SQL_TESTING_SCORE":  "sql_testing_score",
	"TOOLS_COURSE_SCORE": "tools_course_score",
}

// AddEmployeeInput is the single-add request body. Absent scores default
// to 0; absent role defaults to role id 1.
type AddEmployeeInput struct {
	Name        string `json:"name" binding:"required"`
	Password    string `json:"password" binding:"required"`
	RoleID      uint   `json:"role_id"`
	HTML        int    `json:"html"`
	CSS         int    `json:"css"`
	Javascript  int    `json:"javascript"`
	Python      int    `json:"python"`
	Java        int    `json:"java"`
	C           int    `json:"c"`
	Cpp         int    `json:"cpp"`
	SQLTesting  int    `json:"sql_testing"`
	ToolsCourse int    `json:"tools_course"`
}

// OnboardingService creates employees and their derived credentials, singly
// or from an uploaded roster. Batch inserts are all-or-nothing.
type OnboardingService interface {
	AddEmployee(ctx context.Context, input AddEmployeeInput) (*types.Employee, error)
	BulkOnboard(ctx context.Context, table *tabular.Table) (int, error)
}

type onboardingService struct {
	db             *gorm.DB
	log            *logger.Logger
	employeeRepo   repos.EmployeeRepo
	credentialRepo repos.CredentialRepo
}

func NewOnboardingService(db *gorm.DB, log *logger.Logger, employeeRepo repos.EmployeeRepo, credentialRepo repos.CredentialRepo) OnboardingService {
	return &onboardingService{
		db:             db,
		log:            log.With("service", "OnboardingService"),
		employeeRepo:   employeeRepo,
		credentialRepo: credentialRepo,
	}
}

func (s *onboardingService) AddEmployee(ctx context.Context, input AddEmployeeInput) (*types.Employee, error) {
	roleID := input.RoleID
	if roleID == 0 {
		roleID = 1
	}
	employee := &types.Employee{
		Name:             input.Name,
		HTMLScore:        input.HTML,
		CSSScore:         input.CSS,
		JavascriptScore:  input.Javascript,
		PythonScore:      input.Python,
		JavaScore:        input.Java,
		CScore:           input.C,
		CppScore:         input.Cpp,
		SQLTestingScore:  input.SQLTesting,
		ToolsCourseScore: input.ToolsCourse,
		RoleID:           roleID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.employeeRepo.Create(ctx, tx, []*types.Employee{employee}); err != nil {
			return err
		}
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			return err
		}
		credential := &types.Credential{
			EmployeeID:   employee.ID,
			Username:     deriveUsername(employee.Name, employee.ID),
			PasswordHash: hash,
		}
		if _, err := s.credentialRepo.Create(ctx, tx, []*types.Credential{credential}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to add employee: %w", err)
	}
	return employee, nil
}

// BulkOnboard inserts one employee and credential per roster row. The whole
// batch is rejected when the NAME column is absent, and any insert failure
// rolls back everything, reporting zero added.
func (s *onboardingService) BulkOnboard(ctx context.Context, table *tabular.Table) (int, error) {
	if table == nil || !table.HasColumn("NAME") {
		return 0, fmt.Errorf("File is missing the required 'NAME' column.")
	}

	added := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range table.Rows {
			name := row.Get("NAME")
			if name == "" {
				continue
			}
			employee := &types.Employee{Name: name, RoleID: 1}
			for header, column := range scoreColumnsByHeader {
				employee.SetScoreFor(column, row.GetInt(header, 0))
			}
			if _, err := s.employeeRepo.Create(ctx, tx, []*types.Employee{employee}); err != nil {
				return err
			}

			// Placeholder password derived from the new id; the employee is
			// expected to change it. Stored hashed like every credential.
			hash, err := utils.HashPassword("pass" + strconv.FormatUint(uint64(employee.ID), 10))
			if err != nil {
				return err
			}
			credential := &types.Credential{
				EmployeeID:   employee.ID,
				Username:     deriveUsername(name, employee.ID),
				PasswordHash: hash,
			}
			if _, err := s.credentialRepo.Create(ctx, tx, []*types.Credential{credential}); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("Bulk onboarding complete", "employees_added", added)
	return added, nil
}

// deriveUsername lower-cases the name, strips spaces, and appends the
// numeric employee id: "Ann Lee" with id 7 becomes "annlee7".
func deriveUsername(name string, employeeID uint) string {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
	return base + strconv.FormatUint(uint64(employeeID), 10)
}
