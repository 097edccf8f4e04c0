package types

import (
	"time"
)

// Credential is 1:1 with Employee. Passwords are stored as bcrypt hashes.
type Credential struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeID   uint      `gorm:"uniqueIndex;not null;column:employee_id" json:"employee_id"`
	Employee     *Employee `gorm:"constraint:OnDelete:CASCADE;foreignKey:EmployeeID;references:ID" json:"-"`
	Username     string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false;column:is_admin" json:"is_admin"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (Credential) TableName() string {
	return "credentials"
}
