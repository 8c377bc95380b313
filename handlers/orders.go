package handlers

import (
	"net/http"

	"chorsu-feast-api/assignment"
	"chorsu-feast-api/config"
	"chorsu-feast-api/models"
	"chorsu-feast-api/stream"

	"github.com/gin-gonic/gin"
)

type OrderItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Price    int64  `json:"price" binding:"min=0"`
}

type CreateOrderRequest struct {
	CustomerName string           `json:"customerName" binding:"required"`
	Phone        string           `json:"phone" binding:"required"`
	Location     *models.Location `json:"location"`
	// Total is accepted for wire compatibility with older clients but
	// always recomputed from the items server-side.
	Total         int64                `json:"total"`
	DeliveryType  models.DeliveryType  `json:"deliveryType" binding:"required,oneof=pickup delivery"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash card online"`
	Items         []OrderItemRequest   `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder handles customer checkout: snapshots the cart, computes
// the total, auto-assigns a courier for delivery orders and notifies
// them best-effort.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DeliveryType == models.DeliveryDelivery && req.Location == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location is required for delivery orders"})
		return
	}

	var items []models.OrderItem
	var total int64
	for _, item := range req.Items {
		total += item.Price * int64(item.Quantity)
		items = append(items, models.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	order := models.Order{
		CustomerName:     req.CustomerName,
		Phone:            req.Phone,
		PaymentMethod:    req.PaymentMethod,
		PaymentConfirmed: req.PaymentMethod != models.PaymentOnline, // online waits for explicit confirmation
		Items:            items,
		Total:            total,
		Status:           models.StatusPending,
		DeliveryType:     req.DeliveryType,
	}
	if req.DeliveryType == models.DeliveryDelivery {
		order.LocationLat = &req.Location.Lat
		order.LocationLng = &req.Location.Lng
	}

	// Pick the least-loaded active courier before committing, so the
	// courier id is part of the created record.
	var assigned *models.Courier
	if req.DeliveryType == models.DeliveryDelivery {
		assigned = pickCourier()
		if assigned != nil {
			order.CourierID = assigned.ID
		}
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	// Best-effort: a notification failure never rolls back the order
	if assigned != nil {
		Notifier.OrderAssigned(&order, assigned)
	}
	Events.Publish(stream.Event{Type: stream.EventOrderCreated, OrderID: order.ID, Order: &order})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created",
		"order":   order,
	})
}

// pickCourier runs the assignment policy over a snapshot of the
// courier registry and the pending orders.
func pickCourier() *models.Courier {
	var couriers []models.Courier
	config.DB.Order("created_at asc").Find(&couriers)

	var pending []models.Order
	config.DB.Where("status = ?", models.StatusPending).Find(&pending)

	return assignment.ChooseCourier(couriers, pending)
}

// ListOrders returns all orders newest first, with a per-status
// summary for the back-office dashboard table.
func ListOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc, id desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(orders),
		"order_summary": summary,
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order between states. Any state is
// reachable from any other; the back office may override freely.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + string(req.Status)})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	Events.Publish(stream.Event{Type: stream.EventStatusUpdated, OrderID: order.ID})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order updated",
		"order_id": order.ID,
		"status":   req.Status,
	})
}

type AssignCourierRequest struct {
	CourierID *string `json:"courierId"`
}

// AssignCourier sets or clears an order's courier. Clearing never
// notifies; setting a real courier always re-sends the notification,
// even when the courier is unchanged.
func AssignCourier(c *gin.Context) {
	var req AssignCourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if req.CourierID == nil || *req.CourierID == "" || *req.CourierID == "unassigned" {
		if err := config.DB.Model(&order).Update("courier_id", "").Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		Events.Publish(stream.Event{Type: stream.EventCourierAssigned, OrderID: order.ID})
		c.JSON(http.StatusOK, gin.H{"message": "Courier unassigned", "order_id": order.ID})
		return
	}

	var courier models.Courier
	if err := config.DB.Where("id = ?", *req.CourierID).First(&courier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Courier not found"})
		return
	}

	if err := config.DB.Model(&order).Update("courier_id", courier.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	order.CourierID = courier.ID

	Notifier.OrderAssigned(&order, &courier)
	Events.Publish(stream.Event{Type: stream.EventCourierAssigned, OrderID: order.ID})

	c.JSON(http.StatusOK, gin.H{
		"message":    "Courier assigned",
		"order_id":   order.ID,
		"courier_id": courier.ID,
	})
}

// AutoAssignCourier is the manual rebalance action: it runs the same
// policy as checkout and hands the order to the least-loaded courier.
func AutoAssignCourier(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	courier := pickCourier()
	if courier == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No active couriers available"})
		return
	}

	if err := config.DB.Model(&order).Update("courier_id", courier.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	order.CourierID = courier.ID

	Notifier.OrderAssigned(&order, courier)
	Events.Publish(stream.Event{Type: stream.EventCourierAssigned, OrderID: order.ID})

	c.JSON(http.StatusOK, gin.H{
		"message":    "Courier assigned",
		"order_id":   order.ID,
		"courier_id": courier.ID,
	})
}

// ConfirmPayment marks an online payment as received. Idempotent: the
// flag only ever moves to true.
func ConfirmPayment(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Model(&order).Update("payment_confirmed", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	order.PaymentConfirmed = true

	Notifier.PaymentConfirmed(&order)
	Events.Publish(stream.Event{Type: stream.EventPaymentConfirmed, OrderID: order.ID})

	c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed", "order_id": order.ID})
}

// DeleteOrder removes an order and its line items. Hard delete, no
// tombstone.
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if err := config.DB.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	Events.Publish(stream.Event{Type: stream.EventOrderDeleted, OrderID: order.ID})

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted", "order_id": order.ID})
}
