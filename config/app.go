package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Port     string
	Env      string
	Debug    bool
	// RegistrationCacheTTL bounds how long built registrations are served from cache.
	RegistrationCacheTTL time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:              envOr("APP_NAME", "cptui.GO"),
			Port:                 envOr("PORT", "8080"),
			Env:                  os.Getenv("APP_ENV"),
			Debug:                os.Getenv("DEBUG") == "true",
			RegistrationCacheTTL: time.Duration(envInt("REGISTRATION_CACHE_TTL", 300)) * time.Second,
		}
	})
}

// App returns AppConfig, loading it on first use.
func App() *Config {
	LoadAppConfig()
	return AppConfig
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
