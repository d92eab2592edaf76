package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	Env            string
	DatabaseURL    string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	JWTSecret      string
	MetricsEnabled bool
}

// Load reads configuration from the environment. A .env file, if present,
// is loaded by the caller before this runs.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "inventory")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("METRICS_ENABLED", true)

	return Config{
		Port:           v.GetString("PORT"),
		Env:            v.GetString("APP_ENV"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		DBHost:         v.GetString("DB_HOST"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBPort:         v.GetString("DB_PORT"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
	}
}

// DSN returns the Postgres connection string, preferring DATABASE_URL when set.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
