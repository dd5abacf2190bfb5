package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is built once at startup from environment variables and passed by
// reference to the components that need it. There is no package-level state.
type Config struct {
	ListenAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPoolSize int

	RedisAddr    string // empty disables the menu cache
	MenuCacheTTL time.Duration

	KafkaBroker string // empty disables order event publishing
	KafkaTopic  string

	CORSOrigins []string

	DefaultPageSize int
	MaxPageSize     int

	TicketBaseURL string

	LogLevel string
	LogFile  string
}

func Load() *Config {
	return &Config{
		ListenAddr: ":" + getenv("PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "cafe"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "cafe"),
		DBSSLMode:  getenv("DB_SSL_MODE", "disable"),
		DBPoolSize: getenvInt("DB_POOL_SIZE", 25),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		MenuCacheTTL: time.Duration(getenvInt("MENU_CACHE_TTL_SEC", 300)) * time.Second,

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getenv("KAFKA_ORDER_TOPIC", "cafe.orders"),

		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),

		DefaultPageSize: getenvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getenvInt("MAX_PAGE_SIZE", 100),

		TicketBaseURL: getenv("TICKET_BASE_URL", "http://localhost:8080"),

		LogLevel: getenv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func MustInitPostgres(c *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to access connection pool: ", err)
	}
	sqlDB.SetMaxOpenConns(c.DBPoolSize)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

// MustInitRedis returns nil when no address is configured; callers treat a nil
// client as "cache disabled".
func MustInitRedis(c *Config) *redis.Client {
	if c.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to Redis: ", err)
	}
	return client
}

func NewKafkaWriter(c *Config) *kafka.Writer {
	if c.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(c.KafkaBroker),
		Topic:    c.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

// SetupLogging configures the standard logrus logger; with LOG_FILE set the
// output rotates through lumberjack.
func SetupLogging(c *Config) {
	if c.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    32, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		PadLevelText:    true,
		DisableColors:   true,
		TimestampFormat: time.DateTime,
	})
}
