package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	DefaultBits    int
	MaxBits        int
	DefaultCount   int
	MaxCount       int
	RateLimitRPS   float64
	RateLimitBurst int
}

const (
	defaultBits  = 8
	maxBits      = 64
	defaultCount = 10
	maxCount     = 50
)

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DefaultBits:    getEnvInt("DEFAULT_BITS", defaultBits),
		MaxBits:        getEnvInt("MAX_BITS", maxBits),
		DefaultCount:   getEnvInt("DEFAULT_COUNT", defaultCount),
		MaxCount:       getEnvInt("MAX_COUNT", maxCount),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}

	cfg.MaxBits, cfg.DefaultBits = checkLimit("MAX_BITS", cfg.MaxBits, maxBits, "DEFAULT_BITS", cfg.DefaultBits, defaultBits)
	cfg.MaxCount, cfg.DefaultCount = checkLimit("MAX_COUNT", cfg.MaxCount, maxCount, "DEFAULT_COUNT", cfg.DefaultCount, defaultCount)
	return cfg
}

// checkLimit keeps a limit positive and its default within [1, limit],
// warning and falling back when either is out of range.
func checkLimit(limitKey string, limit, limitFallback int, defKey string, def, defFallback int) (int, int) {
	if limit < 1 {
		slog.Warn("limit must be positive, using default", "key", limitKey, "value", limit, "default", limitFallback)
		limit = limitFallback
	}
	if def < 1 || def > limit {
		fallback := min(defFallback, limit)
		slog.Warn("default outside limit, using fallback", "key", defKey, "value", def, "limit", limit, "default", fallback)
		def = fallback
	}
	return limit, def
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
