package config

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"
)

type Config struct {
	Env             string
	LogLevel        string
	HTTPAddr        string
	DBType          string
	DBDSN           string
	SQLitePath      string
	DataDir         string
	EmailDomain     string
	GeminiAPIKey    string
	ExerciseCatalog string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = loadDotEnv()
		cfg = &Config{
			Env:             getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			HTTPAddr:        getEnv("HTTP_ADDR", ":5000"),
			DBType:          getEnv("STORAGE_BACKEND", "file"),
			DBDSN:           getEnv("POSTGRES_DSN", ""),
			SQLitePath:      getEnv("SQLITE_PATH", "data/mindease.db"),
			DataDir:         getEnv("DATA_DIR", "data"),
			EmailDomain:     getEnv("EMAIL_DOMAIN", "example.com"),
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
			ExerciseCatalog: getEnv("EXERCISE_CATALOG", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.DBType {
	case "postgres":
		if c.DBDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	case "file":
		if c.DataDir == "" {
			return errors.New("File storage requires DATA_DIR to be set")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.EmailDomain == "" {
		return errors.New("EMAIL_DOMAIN must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadDotEnv() error {
	f, err := os.Open(".env")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := strings.TrimSuffix(scanner.Text(), "\r")
		if len(l) == 0 || l[0] == '#' {
			continue
		}
		kv := splitKV(l)
		if len(kv) == 2 {
			os.Setenv(kv[0], kv[1])
		}
	}
	return scanner.Err()
}

func splitKV(s string) []string {
	for i, c := range s {
		if c == '=' {
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
