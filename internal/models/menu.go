package models

import (
	"github.com/shopspring/decimal"
)

// Category groups menu items. Title is unique.
type Category struct {
	ID    uint   `gorm:"primaryKey"`
	Slug  string `gorm:"size:255;index"`
	Title string `gorm:"size:255;uniqueIndex;not null"`
}

// MenuItem is a dish on the menu
type MenuItem struct {
	ID         uint            `gorm:"primaryKey"`
	Title      string          `gorm:"size:255;uniqueIndex;not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Featured   bool            `gorm:"index;default:false"`
	CategoryID uint            `gorm:"index;not null"`
	Category   Category
}
