package handlers

import (
	"net/http"

	"chorsu-feast-api/config"
	"chorsu-feast-api/models"

	"github.com/gin-gonic/gin"
)

// GetKitchenBoard returns pending orders oldest first, the way the
// kitchen works through them.
func GetKitchenBoard(c *gin.Context) {
	var orders []models.Order
	err := config.DB.Preload("Items").
		Where("status = ?", models.StatusPending).
		Order("created_at asc, id asc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetDashboard returns the back-office overview numbers
func GetDashboard(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	var totalRevenue int64
	summary := map[string]int{}
	for _, o := range orders {
		totalRevenue += o.Total
		summary[string(o.Status)]++
	}

	var menuCount int64
	config.DB.Model(&models.MenuItem{}).Count(&menuCount)
	var courierCount int64
	config.DB.Model(&models.Courier{}).Count(&courierCount)

	c.JSON(http.StatusOK, gin.H{
		"total_revenue": totalRevenue,
		"total_orders":  len(orders),
		"menu_items":    menuCount,
		"couriers":      courierCount,
		"order_summary": summary,
	})
}
