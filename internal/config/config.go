package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort    string
	CORSOrigins string
	StoreDriver string // memory | postgres
	DatabaseDSN string
	JWTSecret   string
	LogMode     string // development | production
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		StoreDriver: getEnv("STORE_DRIVER", "memory"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=vendas port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		LogMode:     getEnv("LOG_MODE", "development"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "vendas-dev-secret-nao-use-em-producao"
		log.Println("[WARN] JWT_SECRET não definido, usando segredo de desenvolvimento. Defina JWT_SECRET em produção.")
	}
	if cfg.StoreDriver != "memory" && cfg.StoreDriver != "postgres" {
		log.Fatalf("[FATAL] STORE_DRIVER inválido: %q (use 'memory' ou 'postgres')", cfg.StoreDriver)
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS usando valor padrão, defina o domínio real em produção.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
