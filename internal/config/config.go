package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	StatePath    string
	DemoMode     bool
	TickInterval time.Duration
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8081"),
		StatePath:    getEnv("STATE_PATH", "tavola-dashboard.json"),
		DemoMode:     getBool("DEMO_MODE", true),
		TickInterval: getSeconds("DEMO_TICK_SECONDS", 12),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getSeconds(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
