package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"restaurant-menu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port    string
	GinMode string
	Env     string

	DB DBConfig

	UpstreamTimeout           time.Duration
	FilterInactiveRestaurants bool
	FilterInactiveMenus       bool
	HardDeleteItems           bool

	Translate       ExternalAPI
	Image           ExternalAPI
	ImageModel      string
	ExternalTimeout time.Duration
}

type DBConfig struct {
	Driver      string
	URL         string
	Host        string
	User        string
	Password    string
	Name        string
	Port        string
	SSLMode     string
	Source      string
	AutoMigrate bool
}

type ExternalAPI struct {
	URL string
	Key string
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", ""),
		Env:     getEnv("APP_ENV", "production"),
		DB: DBConfig{
			Driver:      strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			URL:         getEnv("DATABASE_URL", ""),
			Host:        getEnv("DB_HOST", "localhost"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "postgres"),
			Port:        getEnv("DB_PORT", "5432"),
			SSLMode:     getEnv("DB_SSLMODE", "require"),
			Source:      getEnv("DB_SOURCE", "restaurant_menu.db"),
			AutoMigrate: getBool("AUTO_MIGRATE", false),
		},
		UpstreamTimeout:           getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		FilterInactiveRestaurants: getBool("FILTER_INACTIVE_RESTAURANTS", true),
		FilterInactiveMenus:       getBool("FILTER_INACTIVE_MENUS", false),
		HardDeleteItems:           getBool("HARD_DELETE_ITEMS", false),
		Translate: ExternalAPI{
			URL: getEnv("TRANSLATE_API_URL", ""),
			Key: getEnv("TRANSLATE_API_KEY", ""),
		},
		Image: ExternalAPI{
			URL: getEnv("IMAGE_API_URL", ""),
			Key: getEnv("IMAGE_API_KEY", ""),
		},
		ImageModel:      getEnv("IMAGE_MODEL", ""),
		ExternalTimeout: getDuration("EXTERNAL_TIMEOUT", 30*time.Second),
	}
}

// DSN prefers DATABASE_URL and falls back to the individual DB_* settings.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// InitDB opens the configured database and migrates the schema when AUTO_MIGRATE is set.
func InitDB(cfg DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.Source)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return db, nil
}

// NewLogger builds a JSON production logger, or a console logger when APP_ENV=development.
func NewLogger(env string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getDuration accepts Go durations ("15s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
