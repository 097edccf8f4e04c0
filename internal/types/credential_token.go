package types

import (
	"time"
)

// CredentialToken is one issued access/refresh token pair. Rows are deleted
// on logout and cascade away with the owning credential.
type CredentialToken struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CredentialID uint        `gorm:"index;not null;column:credential_id" json:"credential_id"`
	Credential   *Credential `gorm:"constraint:OnDelete:CASCADE;foreignKey:CredentialID;references:ID" json:"-"`
	AccessToken  string      `gorm:"uniqueIndex;not null;column:access_token" json:"access_token"`
	RefreshToken string      `gorm:"uniqueIndex;not null;column:refresh_token" json:"refresh_token"`
	ExpiresAt    time.Time   `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}

func (CredentialToken) TableName() string {
	return "credential_tokens"
}
