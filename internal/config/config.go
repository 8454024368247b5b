package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env     string
	Server  ServerConfig
	MongoDB MongoDBConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Cache   CacheConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds token-signing configuration. UserSecret and AdminSecret
// must be distinct: a token signed for one scope never verifies in the other.
type JWTConfig struct {
	UserSecret  string
	AdminSecret string
	ExpiresIn   int // seconds; 0 issues tokens without an exp claim
}

// RedisConfig holds the optional Redis cache configuration.
// An empty Addr disables Redis and the preview cache stays in-process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig holds cache tuning knobs
type CacheConfig struct {
	PreviewTTLSeconds int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Env", "dev")
	viper.SetDefault("Server.Port", "3002")
	viper.SetDefault("Server.AllowedOrigins", []string{
		"http://localhost:5500",
		"http://127.0.0.1:5500",
	})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "coursify")
	viper.SetDefault("JWT.ExpiresIn", 0)
	viper.SetDefault("Redis.Addr", "")
	viper.SetDefault("Redis.DB", 0)
	viper.SetDefault("Cache.PreviewTTLSeconds", 30)

	_ = viper.BindEnv("MongoDB.URI", "MONGODB_URL")
	_ = viper.BindEnv("MongoDB.Database", "MONGODB_DATABASE")
	_ = viper.BindEnv("JWT.UserSecret", "JWT_USER_SECRET")
	_ = viper.BindEnv("JWT.AdminSecret", "JWT_ADMIN_SECRET")
	_ = viper.BindEnv("Server.Port", "PORT")
	_ = viper.BindEnv("Redis.Addr", "REDIS_ADDR")
	_ = viper.BindEnv("Redis.Password", "REDIS_PASSWORD")
}
