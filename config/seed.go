package config

import (
	"log"

	"chorsu-feast-api/models"

	"gorm.io/gorm"
)

// starterMenu is the restaurant's launch menu. It is inserted on first
// run only; after that the menu lives entirely in the database.
var starterMenu = []models.MenuItem{
	{
		Name:        "Palov",
		Description: "An'anaviy o'zbek palovi mol go'shti, sabzi va ziravorlar bilan",
		Price:       45000,
		Image:       "/assets/plov.jpg",
		Category:    "1-taom",
		Variants: []models.MenuItemVariant{
			{Name: "0.7 porsiya", Price: 35000},
			{Name: "1 porsiya", Price: 45000},
			{Name: "1 kg", Price: 200000},
		},
	},
	{
		Name:        "Somsa",
		Description: "Go'shtli pishirilgan buxorcha samsa",
		Price:       12000,
		Image:       "/assets/samsa.jpg",
		Category:    "1-taom",
	},
	{
		Name:        "Shashlik",
		Description: "Ko'mirda pishirilgan mol go'shti shashlik",
		Price:       35000,
		Image:       "/assets/shashlik.jpg",
		Category:    "1-taom",
		Variants: []models.MenuItemVariant{
			{Name: "1 dona", Price: 35000},
		},
	},
	{
		Name:        "Chorsu",
		Description: "Lahm go'shdan iborat",
		Price:       60000,
		Image:       "/assets/chorsu.jpg",
		Category:    "1-taom",
	},
	{
		Name:        "Manti",
		Description: "Bug'da pishirilgan katta go'shtli chuchvara",
		Price:       28000,
		Image:       "/assets/manti.jpg",
		Category:    "1-taom",
		Variants: []models.MenuItemVariant{
			{Name: "1 porsiya (5 dona)", Price: 28000},
		},
	},
	{
		Name:        "Lag'mon",
		Description: "Qo'lda tayyorlangan uzun noodle sabzavotlar va go'sht bilan",
		Price:       32000,
		Image:       "/assets/lagman.jpg",
		Category:    "2-taom",
		Variants: []models.MenuItemVariant{
			{Name: "0.7 porsiya", Price: 25000},
			{Name: "1 porsiya", Price: 32000},
		},
	},
	{
		Name:        "Coca-Cola",
		Description: "Muzdek Coca-Cola",
		Price:       8000,
		Image:       "/assets/coca_cola.png",
		Category:    "Ichimliklar",
		Variants: []models.MenuItemVariant{
			{Name: "0.5L", Price: 8000},
			{Name: "1.5L", Price: 18000},
			{Name: "2L", Price: 22000},
		},
	},
	{
		Name:        "Fanta",
		Description: "Muzdek Fanta",
		Price:       8000,
		Image:       "/assets/fanta.jpg",
		Category:    "Ichimliklar",
		Variants: []models.MenuItemVariant{
			{Name: "0.5L", Price: 8000},
			{Name: "1.5L", Price: 18000},
			{Name: "2L", Price: 22000},
		},
	},
	{
		Name:        "Pepsi",
		Description: "Muzdek Pepsi",
		Price:       8000,
		Image:       "/assets/pepsi.png",
		Category:    "Ichimliklar",
		Variants: []models.MenuItemVariant{
			{Name: "0.5L", Price: 8000},
			{Name: "1.5L", Price: 18000},
			{Name: "2L", Price: 22000},
		},
	},
	{
		Name:        "Flash",
		Description: "Quvvat beruvchi ichimlik",
		Price:       12000,
		Image:       "/assets/flash.png",
		Category:    "Ichimliklar",
		Variants: []models.MenuItemVariant{
			{Name: "0.5L", Price: 12000},
		},
	},
	{
		Name:        "Chortoq",
		Description: "Ma'danli suv",
		Price:       5000,
		Image:       "/assets/chortoq.png",
		Category:    "Ichimliklar",
		Variants: []models.MenuItemVariant{
			{Name: "0.5L", Price: 5000},
		},
	},
	{
		Name:        "Sok",
		Description: "Tabiiy meva sharbatlari",
		Price:       15000,
		Image:       "/assets/juice.png",
		Category:    "Ichimliklar",
		Variants: []models.MenuItemVariant{
			{Name: "Shaftoli 1L", Price: 15000},
			{Name: "Olma 1L", Price: 15000},
			{Name: "Apelsin 1L", Price: 15000},
			{Name: "Olcha 1L", Price: 15000},
		},
	},
	{
		Name:        "Suv",
		Description: "Toza ichimlik suvi",
		Price:       3000,
		Image:       "/assets/water.png",
		Category:    "Ichimliklar",
		Variants: []models.MenuItemVariant{
			{Name: "Gazsiz 0.5L", Price: 3000},
			{Name: "Gazsiz 1.5L", Price: 6000},
			{Name: "Gazli 0.5L", Price: 3000},
			{Name: "Gazli 1.5L", Price: 6000},
		},
	},
}

func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}
	if err := db.Create(&starterMenu).Error; err != nil {
		log.Println("Failed to seed starter menu:", err)
		return
	}
	log.Printf("Seeded starter menu with %d items", len(starterMenu))
}
