package models

import "time"

// OrderStatus represents the lifecycle state of an order. Transitions
// are deliberately unconstrained so the back office can move an order
// between any two states.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is how the customer pays for an order
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

// DeliveryType distinguishes pickup from courier delivery
type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

// Location is a customer-supplied delivery coordinate pair
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Order struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	CustomerName     string        `json:"customerName" gorm:"not null"`
	Phone            string        `json:"phone" gorm:"not null"`
	LocationLat      *float64      `json:"locationLat,omitempty"`
	LocationLng      *float64      `json:"locationLng,omitempty"`
	PaymentMethod    PaymentMethod `json:"paymentMethod" gorm:"not null"`
	PaymentConfirmed bool          `json:"paymentConfirmed"`
	Items            []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	Total            int64         `json:"total" gorm:"not null"`
	Status           OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	DeliveryType     DeliveryType  `json:"deliveryType" gorm:"not null"`
	// CourierID is a plain column, not an association. Deleting a
	// courier leaves the identifier dangling and readers must render
	// it as unassigned.
	CourierID string    `json:"courierId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	OrderID  uint   `json:"-" gorm:"not null;index"`
	Name     string `json:"name" gorm:"not null"`
	Quantity int    `json:"quantity" gorm:"not null"`
	Price    int64  `json:"price" gorm:"not null"` // snapshot price at time of order
}

// Location returns the delivery coordinates, or nil for pickup orders.
func (o *Order) Location() *Location {
	if o.LocationLat == nil || o.LocationLng == nil {
		return nil
	}
	return &Location{Lat: *o.LocationLat, Lng: *o.LocationLng}
}

// ValidStatus reports whether s is one of the known order states.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
