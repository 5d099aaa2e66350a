package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Studio working hours and slot geometry.
	WorkStartHour              int    `mapstructure:"WORK_START_HOUR"`
	WorkEndHour                int    `mapstructure:"WORK_END_HOUR"`
	SlotIntervalMinutes        int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	AppointmentDurationMinutes int    `mapstructure:"APPOINTMENT_DURATION_MINUTES"`
	CleanupBufferMinutes       int    `mapstructure:"CLEANUP_BUFFER_MINUTES"`
	Timezone                   string `mapstructure:"TIMEZONE"`

	// Google workspace identifiers.
	CalendarID    string `mapstructure:"CALENDAR_ID"`
	SpreadsheetID string `mapstructure:"SPREADSHEET_ID"`
	SheetRange    string `mapstructure:"SHEET_RANGE"`
	DriveFolderID string `mapstructure:"DRIVE_FOLDER_ID"`

	// File storage backend: "drive" or "cloudinary".
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	CloudinaryURL  string `mapstructure:"CLOUDINARY_URL"`

	// Notification settings.
	ArtistEmail    string `mapstructure:"ARTIST_EMAIL"`
	SenderEmail    string `mapstructure:"SENDER_EMAIL"`
	SenderName     string `mapstructure:"SENDER_NAME"`
	WhatsappNumber string `mapstructure:"WHATSAPP_NUMBER"`
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`

	// Region used when parsing client phone numbers.
	PhoneRegion string `mapstructure:"PHONE_REGION"`

	// Comma-separated list of allowed CORS origins.
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("WORK_START_HOUR", 9)
	viper.SetDefault("WORK_END_HOUR", 21)
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("APPOINTMENT_DURATION_MINUTES", 60)
	viper.SetDefault("CLEANUP_BUFFER_MINUTES", 30)
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("SHEET_RANGE", "Registros!A1")
	viper.SetDefault("STORAGE_BACKEND", "drive")
	viper.SetDefault("SENDER_NAME", "Estúdio de Tatuagem")
	viper.SetDefault("PHONE_REGION", "BR")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
