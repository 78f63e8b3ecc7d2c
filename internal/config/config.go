package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultMaxUploadBytes = 1 << 30 // 1 GiB

type Config struct {
	HTTPAddr       string
	DataDir        string
	UploadDir      string
	UploadBaseURL  string
	MaxUploadBytes int64

	// DatabaseURL switches persistence to the Postgres backend when set;
	// empty means the file-backed record store under DataDir.
	DatabaseURL string

	// KafkaBrokers/KafkaTopic enable the event producer when both are set.
	KafkaBrokers []string
	KafkaTopic   string

	Environment string
}

func Load() (*Config, error) {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8081"),
		DataDir:       getenv("DATA_DIR", "data"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		UploadBaseURL: getenv("UPLOAD_BASE_URL", "/uploads"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		KafkaTopic:    getenv("KAFKA_TOPIC", "catalog-events"),
		Environment:   getenv("ENV", "development"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	cfg.MaxUploadBytes = defaultMaxUploadBytes
	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be a positive integer, got %q", raw)
		}
		cfg.MaxUploadBytes = n
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
