package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"chorsu-feast-api/config"
	"chorsu-feast-api/handlers"
	"chorsu-feast-api/middleware"
	"chorsu-feast-api/models"
	"chorsu-feast-api/routes"
	"chorsu-feast-api/stream"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type assignedCall struct {
	orderID   uint
	courierID string
}

// fakeNotifier records gateway calls instead of hitting Telegram
type fakeNotifier struct {
	assigned  []assignedCall
	confirmed []uint
}

func (f *fakeNotifier) OrderAssigned(o *models.Order, c *models.Courier) {
	f.assigned = append(f.assigned, assignedCall{orderID: o.ID, courierID: c.ID})
}

func (f *fakeNotifier) PaymentConfirmed(o *models.Order) {
	f.confirmed = append(f.confirmed, o.ID)
}

// setup wires a fresh in-memory database, a recording notifier and a
// fresh event hub, then builds the full router.
func setup(t *testing.T) (*gin.Engine, *fakeNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pool of in-memory sqlite connections would each see their own
	// empty database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.MenuItem{},
		&models.MenuItemVariant{},
		&models.Courier{},
		&models.Order{},
		&models.OrderItem{},
	))

	config.DB = db
	config.App = &config.Config{JWTSecret: "test-secret"}
	config.JWTSecret = []byte("test-secret")

	fn := &fakeNotifier{}
	handlers.Notifier = fn
	handlers.Events = stream.NewHub()

	r := gin.New()
	routes.SetupRoutes(r)
	return r, fn
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateToken(&models.Admin{ID: 1, Username: "admin"})
	require.NoError(t, err)
	return token
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func addCourier(t *testing.T, r *gin.Engine, name, chatID string) models.Courier {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/couriers", gin.H{
		"name":           name,
		"phone":          "+998901112233",
		"telegramChatId": chatID,
	}, adminToken(t))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Courier models.Courier `json:"courier"`
	}
	decode(t, w, &resp)
	return resp.Courier
}

func checkoutBody(deliveryType string) gin.H {
	body := gin.H{
		"customerName":  "John Doe",
		"phone":         "+998901234567",
		"deliveryType":  deliveryType,
		"paymentMethod": "cash",
		"items": []gin.H{
			{"name": "Palov", "quantity": 2, "price": 45000},
		},
	}
	if deliveryType == "delivery" {
		body["location"] = gin.H{"lat": 41.2, "lng": 69.2}
	}
	return body
}

func dbOrder(id uint, out *models.Order) error {
	return config.DB.Preload("Items").First(out, id).Error
}

func dbMenuItem(id uint, out *models.MenuItem) error {
	return config.DB.Preload("Variants").First(out, id).Error
}

func countRows(model any) int64 {
	var count int64
	config.DB.Model(model).Count(&count)
	return count
}

func createOrder(t *testing.T, r *gin.Engine, body gin.H) models.Order {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Order models.Order `json:"order"`
	}
	decode(t, w, &resp)
	return resp.Order
}
