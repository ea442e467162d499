package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string
	GinMode  string
	// DemoMode abilita il seed degli utenti demo (admin/owner) al
	// posto delle credenziali cablate nel vecchio front-end.
	DemoMode bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	return &Config{
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "vico.db"),
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		DemoMode: getEnv("DEMO_MODE", "false") == "true",
	}
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		dsn := cfg.DBSource
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				getEnv("DB_USER", "root"),
				os.Getenv("DB_PASSWORD"),
				getEnv("DB_HOST", "127.0.0.1"),
				getEnv("DB_PORT", "3306"),
				getEnv("DB_NAME", "vico"),
			)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
