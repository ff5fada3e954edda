package models

import (
	"time"
)

// OAuthToken is an issued access token. A row that no longer exists is a revoked token.
type OAuthToken struct {
	ID          uint    `gorm:"primaryKey"`
	ClientID    string  `gorm:"index;not null"`
	UserID      *string `gorm:"index"` // nil for client credentials without an owner
	AccessToken string  `gorm:"uniqueIndex;not null"`
	Scopes      string
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
