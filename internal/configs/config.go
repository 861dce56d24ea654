package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Источники каталога
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourcePostgres = "postgres"
)

type RESTconfig struct {
	PORT               string
	CORSAllowedOrigins []string
}

type DBconfig struct {
	URL string
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type CatalogConfig struct {
	Source string // embedded | postgres
}

type BookingConfig struct {
	ServiceFee           int64
	HeroRotationInterval time.Duration
}

type FilterCacheConfig struct {
	Size int64
	TTL  time.Duration
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Rest         RESTconfig
	Database     DBconfig
	RabbitMQ     RabbitMQConfig
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
	Catalog      CatalogConfig
	Booking      BookingConfig
	FilterCache  FilterCacheConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Явно переданный .env обязан существовать, файл по умолчанию - нет.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	if len(envPath) > 0 {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("could not load .env file (path: %s): %w", envPath[0], err)
		}
	} else if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file: %w", err)
		}
		log.Println("Info: .env file not found, using environment variables")
	}

	cfg := &AppConfig{
		AppName: getEnvAsString("APP_NAME", "shortlet-service"),
	}

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.CORSAllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	cfg.Catalog.Source = strings.ToLower(getEnvAsString("CATALOG_SOURCE", CatalogSourceEmbedded))
	switch cfg.Catalog.Source {
	case CatalogSourceEmbedded:
	case CatalogSourcePostgres:
		cfg.Database.URL = os.Getenv("DATABASE_URL")
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required when CATALOG_SOURCE=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q, expected %s or %s", cfg.Catalog.Source, CatalogSourceEmbedded, CatalogSourcePostgres)
	}

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL environment variable is required when RABBITMQ_ENABLED=true")
		}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.Booking.ServiceFee = int64(getEnvAsInt("SERVICE_FEE", 75000))
	if cfg.Booking.ServiceFee < 0 {
		return nil, fmt.Errorf("SERVICE_FEE must not be negative, got %d", cfg.Booking.ServiceFee)
	}
	cfg.Booking.HeroRotationInterval = time.Duration(getEnvAsInt("HERO_ROTATION_INTERVAL_SEC", 7)) * time.Second
	if cfg.Booking.HeroRotationInterval <= 0 {
		return nil, fmt.Errorf("HERO_ROTATION_INTERVAL_SEC must be positive")
	}

	cfg.FilterCache.Size = int64(getEnvAsInt("FILTER_CACHE_SIZE", 1000))
	cfg.FilterCache.TTL = time.Duration(getEnvAsInt("FILTER_CACHE_TTL_SEC", 3600)) * time.Second

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsList - список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
