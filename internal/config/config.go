package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the process reads from its environment.
type Config struct {
	Env              string
	Port             string
	MongoURI         string
	DBName           string
	LogLevel         string
	CORSAllowOrigins []string
}

// Load reads configuration from environment variables, applying defaults
// where nothing is set. Call godotenv.Load first if a .env file should be
// honored.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("DB_NAME", "devlearn")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	origins := strings.Split(v.GetString("CORS_ALLOW_ORIGINS"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Env:              v.GetString("APP_ENV"),
		Port:             v.GetString("PORT"),
		MongoURI:         v.GetString("MONGO_URI"),
		DBName:           v.GetString("DB_NAME"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		CORSAllowOrigins: origins,
	}
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
