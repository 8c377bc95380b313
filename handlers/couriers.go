package handlers

import (
	"net/http"

	"chorsu-feast-api/config"
	"chorsu-feast-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListCouriers returns the registry in creation order — the order the
// assignment policy uses to break ties.
func ListCouriers(c *gin.Context) {
	var couriers []models.Courier
	if err := config.DB.Order("created_at asc").Find(&couriers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load couriers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(couriers), "couriers": couriers})
}

type AddCourierRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	TelegramChatID string `json:"telegramChatId"`
}

// AddCourier registers a courier; new couriers start active
func AddCourier(c *gin.Context) {
	var req AddCourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	courier := models.Courier{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
		Status:         models.CourierActive,
	}
	if err := config.DB.Create(&courier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add courier"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Courier added", "courier": courier})
}

type UpdateCourierStatusRequest struct {
	Status models.CourierStatus `json:"status" binding:"required,oneof=active inactive"`
}

// UpdateCourierStatus toggles a courier's availability. Inactive
// couriers are skipped by the assignment policy but keep their
// existing orders.
func UpdateCourierStatus(c *gin.Context) {
	var req UpdateCourierStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var courier models.Courier
	if err := config.DB.Where("id = ?", c.Param("id")).First(&courier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Courier not found"})
		return
	}

	if err := config.DB.Model(&courier).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update courier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Courier updated", "id": courier.ID, "status": req.Status})
}

// DeleteCourier removes a courier. Orders keep the stale courier id;
// readers render it as unassigned when lookup fails.
func DeleteCourier(c *gin.Context) {
	var courier models.Courier
	if err := config.DB.Where("id = ?", c.Param("id")).First(&courier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Courier not found"})
		return
	}

	if err := config.DB.Delete(&courier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete courier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Courier deleted", "id": courier.ID})
}
