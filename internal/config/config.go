package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		ENV string
	}

	Log LogConfig

	DB DBConfig

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Cache struct {
		TTL time.Duration
	}

	GRPC struct {
		Host string
		Port string
	}

	HTTP struct {
		Addr string
	}

	Messages struct {
		DefaultLimit int
	}

	Seed struct {
		Users   int
		Courses int
	}
}

// LogConfig is shared with the logger package so tests can build one directly.
type LogConfig struct {
	Level     string
	Format    string
	Component string
	Source    bool
}

type DBConfig struct {
	Driver          string
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	ReplicaDSNs     []string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func New() *Config {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "production")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "golf_buddy")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "mysql"))
	cfg.DB.DSN = os.Getenv("DB_DSN")
	cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
	cfg.DB.User = getEnvDefault("DB_USER", "root")
	cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
	cfg.DB.Name = getEnvDefault("DB_NAME", "golf_buddy")
	cfg.DB.ReplicaDSNs = splitList(os.Getenv("DB_REPLICA_DSNS"))
	cfg.DB.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	cfg.DB.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 5)
	cfg.DB.ConnMaxLifetime = getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	switch cfg.DB.Driver {
	case "postgres":
		cfg.DB.Port = getEnvDefault("DB_PORT", "5432")
	default:
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
	}
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = cfg.DB.buildDSN()
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)
	cfg.Cache.TTL = getEnvDuration("CACHE_TTL", time.Hour)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Admin HTTP (health + metrics)
	cfg.HTTP.Addr = getEnvDefault("HTTP_ADDR", ":9090")

	cfg.Messages.DefaultLimit = getEnvInt("MESSAGES_DEFAULT_LIMIT", 100)

	cfg.Seed.Users = getEnvInt("SEED_USERS", 40)
	cfg.Seed.Courses = getEnvInt("SEED_COURSES", 12)

	return cfg
}

func (c DBConfig) buildDSN() string {
	switch c.Driver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.Host, c.Port, c.User, c.Password, c.Name,
		)
	case "sqlite":
		return c.Name + ".db"
	default:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name,
		)
	}
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
