package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

// EmployeeListRow is one row of the admin employee table.
type EmployeeListRow struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	RoleName string `json:"role_name"`
}

// RoleCountRow is one per-role headcount bucket for the dashboard.
type RoleCountRow struct {
	RoleName string `json:"role_name"`
	Count    int64  `json:"count"`
}

type EmployeeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, employees []*types.Employee) ([]*types.Employee, error)
	GetByID(ctx context.Context, tx *gorm.DB, employeeID uint) (*types.Employee, error)
	GetByIDWithRole(ctx context.Context, tx *gorm.DB, employeeID uint) (*types.Employee, error)
	List(ctx context.Context, tx *gorm.DB) ([]EmployeeListRow, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CountByRole(ctx context.Context, tx *gorm.DB) ([]RoleCountRow, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, employeeID uint) (int64, error)
}

type employeeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	repoLog := baseLog.With("repo", "EmployeeRepo")
	return &employeeRepo{db: db, log: repoLog}
}

func (r *employeeRepo) Create(ctx context.Context, tx *gorm.DB, employees []*types.Employee) ([]*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(employees) == 0 {
		return []*types.Employee{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, tx *gorm.DB, employeeID uint) (*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Employee
	if err := transaction.WithContext(ctx).
		Where("id = ?", employeeID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *employeeRepo) GetByIDWithRole(ctx context.Context, tx *gorm.DB, employeeID uint) (*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Employee
	if err := transaction.WithContext(ctx).
		Preload("Role").
		Where("id = ?", employeeID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *employeeRepo) List(ctx context.Context, tx *gorm.DB) ([]EmployeeListRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []EmployeeListRow
	if err := transaction.WithContext(ctx).
		Model(&types.Employee{}).
		Select("employees.id, employees.name, roles.name AS role_name").
		Joins("LEFT JOIN roles ON roles.id = employees.role_id").
		Order("employees.id").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *employeeRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Employee{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *employeeRepo) CountByRole(ctx context.Context, tx *gorm.DB) ([]RoleCountRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []RoleCountRow
	if err := transaction.WithContext(ctx).
		Model(&types.Employee{}).
		Select("roles.name AS role_name, COUNT(employees.id) AS count").
		Joins("JOIN roles ON roles.id = employees.role_id").
		Group("roles.name").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *employeeRepo) DeleteByID(ctx context.Context, tx *gorm.DB, employeeID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	result := transaction.WithContext(ctx).
		Where("id = ?", employeeID).
		Delete(&types.Employee{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
