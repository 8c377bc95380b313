package models

import "time"

type MenuItem struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	Name        string            `json:"name" gorm:"not null"`
	Description string            `json:"description"`
	Price       int64             `json:"price" gorm:"not null"`
	Image       string            `json:"image"`
	Category    string            `json:"category"`
	Variants    []MenuItemVariant `json:"variants,omitempty" gorm:"foreignKey:MenuItemID"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// MenuItemVariant is a named price option for a dish, e.g. "0.7 porsiya"
type MenuItemVariant struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	MenuItemID uint   `json:"-" gorm:"not null;index"`
	Name       string `json:"name" gorm:"not null"`
	Price      int64  `json:"price" gorm:"not null"`
}
