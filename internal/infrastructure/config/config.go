package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers       []string
	Topic         string
	PaymentsTopic string
	ConsumerGroup string
}

type CreditBureauConfig struct {
	// BaseURL selects the live HTTP bureau adapter; empty means the
	// deterministic stub is used.
	BaseURL string
	APIKey  string
	Bureau  string
}

type Config struct {
	GRPCPort     int
	HTTPPort     int
	DB           DatabaseConfig
	Kafka        KafkaConfig
	CreditBureau CreditBureauConfig
	JWTSecret    string
	ServiceName  string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.JWTSecret == "" {
		panic("JWT_SECRET environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9091),
		HTTPPort: getEnvInt("HTTP_PORT", 8091),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "asante"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "asante_backoffice"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:         getEnv("KAFKA_TOPIC", "backoffice-events"),
			PaymentsTopic: getEnv("KAFKA_PAYMENTS_TOPIC", "mobile-money-payments"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "asante-backoffice"),
		},
		CreditBureau: CreditBureauConfig{
			BaseURL: getEnv("CREDIT_BUREAU_URL", ""),
			APIKey:  getEnv("CREDIT_BUREAU_API_KEY", ""),
			Bureau:  getEnv("CREDIT_BUREAU", "METROPOL"),
		},
		JWTSecret:   getEnv("JWT_SECRET", ""),
		ServiceName: "asante-backoffice",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
