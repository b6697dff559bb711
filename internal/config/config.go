package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL    string
	LogLevel       string
	Location       *time.Location
	PasswordHasher string // sha256 | bcrypt
	DeriveHours    bool
	ClockSource    string
	ExportDir      string
	PDFFont        string // путь к TTF со шрифтом с кириллицей
	TelegramToken  string
	TelegramDebug  bool
}

var instance *Config
var once sync.Once

// Get возвращает конфиг приложения, загруженный один раз за процесс
func Get() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logrus.Fatalf("error loading config: %s", err.Error())
		}
		instance = cfg
	})

	return instance
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading env variables: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", "worktime.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		PasswordHasher: strings.ToLower(getEnv("PASSWORD_HASHER", "sha256")),
		DeriveHours:    getEnvAsBool("DERIVE_HOURS", false),
		ClockSource:    getEnv("CLOCK_SOURCE", "console"),
		ExportDir:      getEnv("EXPORT_DIR", "out"),
		PDFFont:        getEnv("PDF_FONT", ""),
		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramDebug:  getEnvAsBool("TELEGRAM_DEBUG", false),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("could not get db url")
	}

	switch cfg.PasswordHasher {
	case "sha256", "bcrypt":
	default:
		return nil, fmt.Errorf("unknown PASSWORD_HASHER %q", cfg.PasswordHasher)
	}

	loc, err := loadLocation(getEnv("TIMEZONE", ""))
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	return cfg, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}
