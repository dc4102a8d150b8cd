package utils

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Email    EmailConfig
	Booking  BookingConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// AdminConfig holds the shared secret for admin endpoints. When KeyHash is
// set it takes precedence over Key and is compared with bcrypt.
type AdminConfig struct {
	Key     string
	KeyHash string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

// BookingConfig is the scheduling window: working hours as minutes since
// midnight, plus the earliest date bookings may be made for.
type BookingConfig struct {
	WorkStartMin int
	WorkEndMin   int
	LaunchDate   time.Time
}

type UploadConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("WORK_START", "08:15")
	viper.SetDefault("WORK_END", "14:00")
	viper.SetDefault("LAUNCH_DATE", "2025-08-18")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	workStart, err := ParseClock(viper.GetString("WORK_START"))
	if err != nil {
		return nil, fmt.Errorf("parse WORK_START: %w", err)
	}

	workEnd, err := ParseClock(viper.GetString("WORK_END"))
	if err != nil {
		return nil, fmt.Errorf("parse WORK_END: %w", err)
	}

	launchDate, err := time.Parse("2006-01-02", viper.GetString("LAUNCH_DATE"))
	if err != nil {
		return nil, fmt.Errorf("parse LAUNCH_DATE: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			Key:     viper.GetString("ADMIN_KEY"),
			KeyHash: viper.GetString("ADMIN_KEY_HASH"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
			To:       viper.GetString("EMAIL_TO"),
		},
		Booking: BookingConfig{
			WorkStartMin: workStart,
			WorkEndMin:   workEnd,
			LaunchDate:   launchDate,
		},
		Upload: UploadConfig{
			Dir: viper.GetString("UPLOAD_DIR"),
		},
	}

	return config, nil
}
