package config

import (
	"fmt"
	"os"
	"strconv"
)

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

// AppConfig — настройки самого сервиса.
type AppConfig struct {
	Env      string // development | production
	HTTPAddr string

	// Строгий режим одобрения: перед approve повторно проверяем пересечения
	// внутри транзакции. По умолчанию выключен — совместимость с исходным
	// поведением, где одобрение было ручным шлюзом.
	StrictApproval bool

	// Проверка суммы при создании бронирования: пересчитываем
	// rate_per_day * дни и сверяем с суммой вызывающей стороны.
	// По умолчанию выключена, сумма принимается на доверии.
	VerifyAmounts bool
}

func LoadDBConfig() (*DBConfig, error) {
	cfg := &DBConfig{
		Host:            getEnv("DB_HOST", "postgres"),
		User:            getEnv("DB_USER", "carrental"),
		Password:        getEnv("DB_PASSWORD", "carrental"),
		Name:            getEnv("DB_NAME", "carrental_db"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
		Port:            getEnvInt("DB_PORT", 5432),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
	}

	// минимальная валидация
	if cfg.Host == "" || cfg.User == "" || cfg.Name == "" {
		return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
	}

	return cfg, nil
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		StrictApproval: getEnvBool("STRICT_APPROVAL", false),
		VerifyAmounts:  getEnvBool("VERIFY_AMOUNTS", false),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
