package config

import (
	"os"
)

type Config struct {
	ServerPort  string
	Store       string
	SessionFile string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
}

func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Store:       getEnv("STORE", "memory"),
		SessionFile: getEnv("SESSION_FILE", "skillswap_session.json"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "skillswap"),
		DBPassword:  getEnv("DB_PASSWORD", "skillswap_dev_password"),
		DBName:      getEnv("DB_NAME", "skillswap"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
