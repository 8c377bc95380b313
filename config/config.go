package config

import (
	"log"

	"chorsu-feast-api/models"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	App *Config
	DB  *gorm.DB
	// JWTSecret used to sign admin tokens
	JWTSecret []byte
)

type Config struct {
	Port             string `mapstructure:"port"`
	GinMode          string `mapstructure:"gin_mode"`
	DatabasePath     string `mapstructure:"database_path"`
	JWTSecret        string `mapstructure:"jwt_secret"`
	AdminUsername    string `mapstructure:"admin_username"`
	AdminPassword    string `mapstructure:"admin_password"`
	TelegramBotToken string `mapstructure:"telegram_bot_token"`
	TelegramChatID   string `mapstructure:"telegram_chat_id"` // restaurant's own chat, for payment confirmations
}

// Load reads the configuration using Viper: optional config file,
// environment variables, then defaults.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	viper.SetDefault("port", "8080")
	viper.SetDefault("gin_mode", "debug")
	viper.SetDefault("database_path", "chorsu_feast.db")
	viper.SetDefault("jwt_secret", "chorsu_feast_super_secret_2024")
	viper.SetDefault("admin_username", "admin")
	viper.SetDefault("admin_password", "chorsu2024")
	viper.SetDefault("telegram_bot_token", "")
	viper.SetDefault("telegram_chat_id", "")

	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	App = &config
	JWTSecret = []byte(config.JWTSecret)
	return App, nil
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(App.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Admin{},
		&models.MenuItem{},
		&models.MenuItemVariant{},
		&models.Courier{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seedAdmin(DB)
	seedMenu(DB)

	log.Println("✅ Database connected and migrated successfully")
}

// seedAdmin creates the back-office account from config when absent.
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.Admin{}).Where("username = ?", App.AdminUsername).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(App.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	if err := db.Create(&models.Admin{Username: App.AdminUsername, PasswordHash: string(hash)}).Error; err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}
	log.Printf("Seeded admin account %q", App.AdminUsername)
}
