package models

import "time"

// CourierStatus marks whether a courier takes part in assignment
type CourierStatus string

const (
	CourierActive   CourierStatus = "active"
	CourierInactive CourierStatus = "inactive"
)

type Courier struct {
	ID             string        `json:"id" gorm:"primaryKey"`
	Name           string        `json:"name" gorm:"not null"`
	Phone          string        `json:"phone" gorm:"not null"`
	TelegramChatID string        `json:"telegramChatId,omitempty"`
	Status         CourierStatus `json:"status" gorm:"not null;default:'active'"`
	CreatedAt      time.Time     `json:"createdAt"`
}
