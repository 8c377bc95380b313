package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chorsu-feast-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	path    string
	payload map[string]any
}

func newTestTelegram(t *testing.T) (*Telegram, *[]apiCall) {
	calls := &[]apiCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		*calls = append(*calls, apiCall{path: r.URL.Path, payload: payload})
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	tg := NewTelegram("test-token", "restaurant-chat")
	tg.BaseURL = srv.URL
	tg.Client = srv.Client()
	return tg, calls
}

func deliveryOrder() *models.Order {
	lat, lng := 41.2, 69.2
	return &models.Order{
		ID:           7,
		CustomerName: "Aziz",
		Phone:        "+998901234567",
		LocationLat:  &lat,
		LocationLng:  &lng,
		Items: []models.OrderItem{
			{Name: "Palov", Quantity: 2, Price: 45000},
		},
		Total:        90000,
		DeliveryType: models.DeliveryDelivery,
	}
}

func TestOrderAssignedSendsMessageAndLocation(t *testing.T) {
	tg, calls := newTestTelegram(t)
	courier := &models.Courier{ID: "c1", TelegramChatID: "courier-chat"}

	tg.OrderAssigned(deliveryOrder(), courier)

	require.Len(t, *calls, 2)
	assert.Equal(t, "/bottest-token/sendMessage", (*calls)[0].path)
	assert.Equal(t, "courier-chat", (*calls)[0].payload["chat_id"])
	assert.Equal(t, "HTML", (*calls)[0].payload["parse_mode"])

	assert.Equal(t, "/bottest-token/sendLocation", (*calls)[1].path)
	assert.Equal(t, 41.2, (*calls)[1].payload["latitude"])
	assert.Equal(t, 69.2, (*calls)[1].payload["longitude"])
}

func TestOrderAssignedSkipsCourierWithoutChat(t *testing.T) {
	tg, calls := newTestTelegram(t)

	tg.OrderAssigned(deliveryOrder(), &models.Courier{ID: "c1"})

	assert.Empty(t, *calls)
}

func TestOrderAssignedPickupHasNoLocationPin(t *testing.T) {
	tg, calls := newTestTelegram(t)
	order := deliveryOrder()
	order.LocationLat, order.LocationLng = nil, nil
	order.DeliveryType = models.DeliveryPickup

	tg.OrderAssigned(order, &models.Courier{ID: "c1", TelegramChatID: "courier-chat"})

	require.Len(t, *calls, 1)
	assert.Equal(t, "/bottest-token/sendMessage", (*calls)[0].path)
}

func TestPaymentConfirmedGoesToRestaurantChat(t *testing.T) {
	tg, calls := newTestTelegram(t)

	tg.PaymentConfirmed(deliveryOrder())

	require.Len(t, *calls, 1)
	assert.Equal(t, "restaurant-chat", (*calls)[0].payload["chat_id"])
	assert.Contains(t, (*calls)[0].payload["text"], "#7")
}

func TestFormatOrderMessage(t *testing.T) {
	msg := FormatOrderMessage(deliveryOrder())

	assert.Contains(t, msg, "Yangi buyurtma #7")
	assert.Contains(t, msg, "Aziz")
	assert.Contains(t, msg, "+998901234567")
	assert.Contains(t, msg, "Palov x2 — 90000 UZS")
	assert.Contains(t, msg, "Jami: <b>90000 UZS</b>")
	assert.Contains(t, msg, "Lokatsiya quyida")
}
