package models

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is an API client allowed to request tokens. Secret holds a bcrypt hash.
type OAuthClient struct {
	ID         string `gorm:"primaryKey"`
	Secret     string `gorm:"not null"`
	Name       string
	Domain     string
	UserID     uint   // owner; client_credentials tokens act as this user
	Scopes     string // space separated
	GrantTypes string // space separated: "password client_credentials"
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// The methods below satisfy oauth2.ClientInfo and oauth2.ClientPasswordVerifier.

func (c *OAuthClient) GetID() string     { return c.ID }
func (c *OAuthClient) GetSecret() string { return c.Secret }
func (c *OAuthClient) GetDomain() string { return c.Domain }
func (c *OAuthClient) IsPublic() bool    { return false }

func (c *OAuthClient) GetUserID() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}

// VerifyPassword checks a plain client secret against the stored hash.
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}

// AllowsGrant reports whether grantType is listed in GrantTypes.
func (c *OAuthClient) AllowsGrant(grantType string) bool {
	for _, g := range strings.Fields(c.GrantTypes) {
		if g == grantType {
			return true
		}
	}
	return false
}
