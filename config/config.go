package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Recurring RecurringConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string
	JWTExpirationHours int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RecurringConfig selects how monthly payment orders are priced.
// Strategy is "per_delivery" (weekly basket x number of deliveries) or
// "flat" (MonthlyFee regardless of basket).
type RecurringConfig struct {
	PricingStrategy string
	MonthlyFee      string
}

// Load reads .env (if present) and the OS environment into a Config.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("config: .env not found, using environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "fam_backoffice")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("RECURRING_PRICING", "per_delivery")
	viper.SetDefault("RECURRING_MONTHLY_FEE", "0")

	// Fallback to PORT (common on PaaS) if SERVER_PORT is missing.
	viper.BindEnv("SERVER_PORT", "PORT")

	cfg := &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Recurring: RecurringConfig{
			PricingStrategy: viper.GetString("RECURRING_PRICING"),
			MonthlyFee:      viper.GetString("RECURRING_MONTHLY_FEE"),
		},
	}

	if cfg.Server.JWTSecret == "" {
		cfg.Server.JWTSecret = "dev-insecure-secret-change-me"
		log.Println("config: JWT_SECRET not set, using insecure development secret")
	}
	return cfg
}
