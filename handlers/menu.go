package handlers

import (
	"net/http"

	"chorsu-feast-api/config"
	"chorsu-feast-api/models"

	"github.com/gin-gonic/gin"
)

type MenuItemVariantRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
}

type MenuItemRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	Price       int64                    `json:"price" binding:"min=0"`
	Image       string                   `json:"image"`
	Category    string                   `json:"category"`
	Variants    []MenuItemVariantRequest `json:"variants" binding:"dive"`
}

func (r *MenuItemRequest) variants() []models.MenuItemVariant {
	var variants []models.MenuItemVariant
	for _, v := range r.Variants {
		variants = append(variants, models.MenuItemVariant{Name: v.Name, Price: v.Price})
	}
	return variants
}

// AddMenuItem creates a new dish (admin only)
func AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Variants:    req.variants(),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem replaces a dish by id; variants are replaced
// wholesale. Existing orders keep their snapshot prices.
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"image":       req.Image,
		"category":    req.Category,
	}
	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}

	if err := config.DB.Where("menu_item_id = ?", item.ID).Delete(&models.MenuItemVariant{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	item.Variants = req.variants()
	for i := range item.Variants {
		item.Variants[i].MenuItemID = item.ID
	}
	if len(item.Variants) > 0 {
		if err := config.DB.Create(&item.Variants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a dish and its variants (admin only)
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	if err := config.DB.Where("menu_item_id = ?", item.ID).Delete(&models.MenuItemVariant{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "id": item.ID})
}
