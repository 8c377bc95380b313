package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"chorsu-feast-api/models"
)

const defaultAPIBase = "https://api.telegram.org"

// Telegram sends notifications through the Telegram Bot API using
// sendMessage and sendLocation.
type Telegram struct {
	BotToken string
	// ChatID is the restaurant's own chat, used for payment
	// confirmations. Courier messages go to each courier's chat.
	ChatID  string
	BaseURL string
	Client  *http.Client
}

func NewTelegram(botToken, chatID string) *Telegram {
	return &Telegram{
		BotToken: botToken,
		ChatID:   chatID,
		BaseURL:  defaultAPIBase,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (t *Telegram) OrderAssigned(order *models.Order, courier *models.Courier) {
	if courier.TelegramChatID == "" {
		log.Printf("Courier %s has no telegram chat, skipping order #%d notification", courier.ID, order.ID)
		return
	}
	t.sendMessage(courier.TelegramChatID, FormatOrderMessage(order))
	if loc := order.Location(); loc != nil {
		t.sendLocation(courier.TelegramChatID, loc.Lat, loc.Lng)
	}
}

func (t *Telegram) PaymentConfirmed(order *models.Order) {
	if t.ChatID == "" {
		return
	}
	msg := fmt.Sprintf("✅ To'lov tasdiqlandi — buyurtma <b>#%d</b> (%s, %d UZS)",
		order.ID, order.CustomerName, order.Total)
	t.sendMessage(t.ChatID, msg)
}

// FormatOrderMessage builds the HTML summary a courier receives.
func FormatOrderMessage(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆕 <b>Yangi buyurtma #%d</b>\n", order.ID)
	fmt.Fprintf(&b, "Mijoz: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Tel: %s\n", order.Phone)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d — %d UZS\n", item.Name, item.Quantity, item.Price*int64(item.Quantity))
	}
	fmt.Fprintf(&b, "Jami: <b>%d UZS</b>\n", order.Total)
	if order.DeliveryType == models.DeliveryDelivery {
		b.WriteString("Turi: Yetkazib berish")
		if order.Location() != nil {
			b.WriteString("\n📍 Lokatsiya quyida")
		}
	} else {
		b.WriteString("Turi: Olib ketish")
	}
	return b.String()
}

func (t *Telegram) sendMessage(chatID, text string) {
	t.post("sendMessage", map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
}

func (t *Telegram) sendLocation(chatID string, lat, lng float64) {
	t.post("sendLocation", map[string]any{
		"chat_id":   chatID,
		"latitude":  lat,
		"longitude": lng,
	})
}

func (t *Telegram) post(method string, payload map[string]any) {
	if t.BotToken == "" {
		log.Println("Telegram credentials not set, dropping", method)
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Telegram %s marshal failed: %v", method, err)
		return
	}
	url := fmt.Sprintf("%s/bot%s/%s", t.BaseURL, t.BotToken, method)
	resp, err := t.Client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("Telegram %s failed: %v", method, err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("Telegram %s returned status %d", method, resp.StatusCode)
	}
}
