package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/lettora/lettora-backend/internal/matching"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Matching MatchingConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret string
}

// MatchingConfig exposes the scoring policy knobs. Weights are tunable
// centrally; they are never accepted per request.
type MatchingConfig struct {
	Weights         matching.Weights
	CatalogCacheTTL time.Duration
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("CATALOG_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("LOG_LEVEL", "info")

	weights := matching.DefaultWeights()
	if viper.IsSet("MATCH_WEIGHT_PRICE") {
		weights = matching.Weights{
			Price:        viper.GetInt("MATCH_WEIGHT_PRICE"),
			Bedrooms:     viper.GetInt("MATCH_WEIGHT_BEDROOMS"),
			PropertyType: viper.GetInt("MATCH_WEIGHT_PROPERTY_TYPE"),
			Location:     viper.GetInt("MATCH_WEIGHT_LOCATION"),
			Amenities:    viper.GetInt("MATCH_WEIGHT_AMENITIES"),
		}
	}

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			AccessSecret: viper.GetString("JWT_ACCESS_SECRET"),
		},
		Matching: MatchingConfig{
			Weights:         weights,
			CatalogCacheTTL: time.Duration(viper.GetInt("CATALOG_CACHE_TTL_SECONDS")) * time.Second,
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if err := c.Matching.Weights.Validate(); err != nil {
		return err
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
