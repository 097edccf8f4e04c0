package types

// Course teaches exactly one skill.
type Course struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"uniqueIndex;not null;column:name" json:"name"`
	SkillID uint   `gorm:"index;not null;column:skill_id" json:"skill_id"`
	Skill   *Skill `gorm:"foreignKey:SkillID;references:ID" json:"skill,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
