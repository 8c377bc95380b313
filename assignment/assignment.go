// Package assignment picks which courier receives a delivery order.
// The same policy backs automatic assignment at checkout and the
// manual rebalance action in the back office.
package assignment

import "chorsu-feast-api/models"

// ChooseCourier returns the active courier carrying the fewest pending
// orders. Ties go to the courier listed first. Returns nil when no
// active courier exists.
func ChooseCourier(couriers []models.Courier, orders []models.Order) *models.Courier {
	var best *models.Courier
	bestLoad := 0
	for i := range couriers {
		courier := &couriers[i]
		if courier.Status != models.CourierActive {
			continue
		}
		load := 0
		for _, o := range orders {
			if o.CourierID == courier.ID && o.Status == models.StatusPending {
				load++
			}
		}
		if best == nil || load < bestLoad {
			best = courier
			bestLoad = load
		}
	}
	return best
}
