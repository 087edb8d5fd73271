package config

import (
	"os"
	"strings"
)

const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	// file | redis | postgres
	SnapshotBackend string
	SnapshotFile    string
	SnapshotSlot    string

	RedisAddr string
	RedisKey  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	KafkaEnabled bool
	KafkaBrokers []string
}

// Load reads the environment. Callers load .env beforehand when they want
// one (godotenv in cmd, same as the other binaries).
func Load() Config {
	cfg := Config{
		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", BackendFile),
		SnapshotFile:    getEnv("SNAPSHOT_FILE", "data/snapshot.json"),
		SnapshotSlot:    getEnv("SNAPSHOT_SLOT", "default"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisKey:  getEnv("REDIS_SNAPSHOT_KEY", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "hrm"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		KafkaEnabled: os.Getenv("KAFKA_BROKERS") != "",
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
