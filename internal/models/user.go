package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"size:150;uniqueIndex;not null"`
	Email       string
	Password    string  `gorm:"not null" json:"-"`
	IsSuperuser bool    `gorm:"default:false"`
	Groups      []Group `gorm:"many2many:user_groups;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Group is a named role group. Membership in "Manager" or "Delivery Crew"
// grants the matching role.
type Group struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:150;uniqueIndex;not null"`
}

// HashPassword replaces the plain text password with its bcrypt hash.
func (u *User) HashPassword() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
