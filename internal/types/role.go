package types

// Role is a job role. Static reference data.
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null;column:name" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

// Skill names one skill domain and the employee score column it maps to.
type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null;column:name" json:"name"`
	ScoreColumn string `gorm:"not null;column:score_column" json:"score_column"`
}

func (Skill) TableName() string {
	return "skills"
}

// RoleSkillRequirement sets the proficiency threshold a role demands for a
// skill. Static reference data, never mutated by the application.
type RoleSkillRequirement struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	RoleID              uint   `gorm:"index:idx_role_skill,unique;not null;column:role_id" json:"role_id"`
	Role                *Role  `gorm:"foreignKey:RoleID;references:ID" json:"-"`
	SkillID             uint   `gorm:"index:idx_role_skill,unique;not null;column:skill_id" json:"skill_id"`
	Skill               *Skill `gorm:"foreignKey:SkillID;references:ID" json:"skill,omitempty"`
	RequiredProficiency int    `gorm:"not null;column:required_proficiency" json:"required_proficiency"`
}

func (RoleSkillRequirement) TableName() string {
	return "role_skill_requirements"
}
