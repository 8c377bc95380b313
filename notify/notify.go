// Package notify delivers best-effort messages about order activity.
// Delivery failures are logged and swallowed; callers never block a
// committed state change on the outcome.
package notify

import "chorsu-feast-api/models"

type Notifier interface {
	// OrderAssigned tells a courier about a new or re-assigned order.
	OrderAssigned(order *models.Order, courier *models.Courier)
	// PaymentConfirmed tells the restaurant an online payment cleared.
	PaymentConfirmed(order *models.Order)
}

// Discard is a Notifier that drops everything. Used when no Telegram
// credentials are configured.
type Discard struct{}

func (Discard) OrderAssigned(*models.Order, *models.Courier) {}

func (Discard) PaymentConfirmed(*models.Order) {}
