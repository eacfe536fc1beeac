package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Google Sheets data source. API key and spreadsheet ID are required;
	// without them no fetch is ever attempted.
	SheetsAPIKey      string `mapstructure:"SHEETS_API_KEY"`
	SheetID           string `mapstructure:"SHEET_ID"`
	DefaultSheetName  string `mapstructure:"DEFAULT_SHEET_NAME"`
	ContactsSheetName string `mapstructure:"CONTACTS_SHEET_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Grid cache TTL in seconds.
	GridCacheTTL int `mapstructure:"GRID_CACHE_TTL"`

	// Staff access gate.
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	AccessPasswordHash string `mapstructure:"ACCESS_PASSWORD_HASH"`
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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("GRID_CACHE_TTL", 300)
	viper.SetDefault("CONTACTS_SHEET_NAME", "CONTACTS")
	// Secrets default empty: viper only unmarshals environment variables
	// for keys it already knows about.
	viper.SetDefault("SHEETS_API_KEY", "")
	viper.SetDefault("SHEET_ID", "")
	viper.SetDefault("DEFAULT_SHEET_NAME", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ACCESS_PASSWORD_HASH", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// ValidateSheetsConfig reports whether the required data-source credentials
// are present. Handlers call this before going anywhere near the network.
func ValidateSheetsConfig() error {
	if AppConfig.SheetsAPIKey == "" || AppConfig.SheetID == "" {
		return errors.New("missing SHEETS_API_KEY or SHEET_ID; check your environment")
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
