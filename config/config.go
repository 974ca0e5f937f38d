package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisHoldDB          int    `mapstructure:"REDIS_HOLD_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Booking grid. Every branch runs on one wall clock; availability is
	// always computed in this timezone.
	BookingTimezone     string `mapstructure:"BOOKING_TIMEZONE"`
	BookingDayStart     string `mapstructure:"BOOKING_DAY_START"`
	BookingDayEnd       string `mapstructure:"BOOKING_DAY_END"`
	SlotIntervalMinutes int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	SlotHoldTTLMinutes  int    `mapstructure:"SLOT_HOLD_TTL_MINUTES"`
	ReminderLeadMinutes int    `mapstructure:"REMINDER_LEAD_MINUTES"`

	// Stripe. An empty key disables booking deposits.
	StripeKey          string `mapstructure:"STRIPE_KEY"`
	DepositAmountCents int64  `mapstructure:"DEPOSIT_AMOUNT_CENTS"`
	DepositCurrency    string `mapstructure:"DEPOSIT_CURRENCY"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_HOLD_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "trimly")
	viper.SetDefault("BOOKING_TIMEZONE", "Asia/Karachi")
	viper.SetDefault("BOOKING_DAY_START", "10:00")
	viper.SetDefault("BOOKING_DAY_END", "21:00")
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("SLOT_HOLD_TTL_MINUTES", 10)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 120)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("DEPOSIT_AMOUNT_CENTS", 500)
	viper.SetDefault("DEPOSIT_CURRENCY", "usd")

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
