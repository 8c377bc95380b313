package assignment

import (
	"testing"

	"chorsu-feast-api/models"

	"github.com/stretchr/testify/assert"
)

func courier(id string, status models.CourierStatus) models.Courier {
	return models.Courier{ID: id, Name: "Courier " + id, Phone: "+998900000000", Status: status}
}

func pendingOrder(courierID string) models.Order {
	return models.Order{CourierID: courierID, Status: models.StatusPending}
}

func TestChooseCourierPicksLeastLoaded(t *testing.T) {
	couriers := []models.Courier{
		courier("a", models.CourierActive),
		courier("b", models.CourierActive),
	}
	orders := []models.Order{
		pendingOrder("b"),
		pendingOrder("b"),
	}

	got := ChooseCourier(couriers, orders)
	assert.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestChooseCourierTieGoesToFirstListed(t *testing.T) {
	couriers := []models.Courier{
		courier("a", models.CourierActive),
		courier("b", models.CourierActive),
		courier("c", models.CourierActive),
	}
	orders := []models.Order{
		pendingOrder("a"),
		pendingOrder("b"),
		pendingOrder("c"),
	}

	got := ChooseCourier(couriers, orders)
	assert.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestChooseCourierEmptyRegistry(t *testing.T) {
	assert.Nil(t, ChooseCourier(nil, nil))
	assert.Nil(t, ChooseCourier([]models.Courier{}, []models.Order{pendingOrder("a")}))
}

func TestChooseCourierSkipsInactive(t *testing.T) {
	couriers := []models.Courier{
		courier("a", models.CourierInactive),
		courier("b", models.CourierActive),
	}

	got := ChooseCourier(couriers, nil)
	assert.NotNil(t, got)
	assert.Equal(t, "b", got.ID)

	// All inactive means nobody to assign
	couriers[1].Status = models.CourierInactive
	assert.Nil(t, ChooseCourier(couriers, nil))
}

func TestChooseCourierIgnoresNonPendingLoad(t *testing.T) {
	couriers := []models.Courier{
		courier("a", models.CourierActive),
		courier("b", models.CourierActive),
	}
	// Courier a has plenty of history but nothing in flight
	orders := []models.Order{
		{CourierID: "a", Status: models.StatusCompleted},
		{CourierID: "a", Status: models.StatusCancelled},
		pendingOrder("b"),
	}

	got := ChooseCourier(couriers, orders)
	assert.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}
