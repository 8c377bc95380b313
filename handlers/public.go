package handlers

import (
	"net/http"

	"chorsu-feast-api/config"
	"chorsu-feast-api/models"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the menu with variants embedded (public)
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Preload("Variants")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Order("id asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}
