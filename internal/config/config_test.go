package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "DEFAULT_BITS", "MAX_BITS", "DEFAULT_COUNT", "MAX_COUNT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.DefaultBits != 8 || cfg.MaxBits != 64 {
		t.Errorf("bits = %d/%d, want 8/64", cfg.DefaultBits, cfg.MaxBits)
	}
	if cfg.DefaultCount != 10 || cfg.MaxCount != 50 {
		t.Errorf("count = %d/%d, want 10/50", cfg.DefaultCount, cfg.MaxCount)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_BITS", "12")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("MAX_COUNT", "not-a-number")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.DefaultBits != 12 {
		t.Errorf("DefaultBits = %d, want 12", cfg.DefaultBits)
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Errorf("RateLimitRPS = %v, want 0.5", cfg.RateLimitRPS)
	}
	if cfg.MaxCount != 50 {
		t.Errorf("MaxCount = %d, want fallback 50", cfg.MaxCount)
	}
}

func TestLoad_LimitsAreChecked(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want [4]int // default bits, max bits, default count, max count
	}{
		{
			name: "default above max",
			env:  map[string]string{"DEFAULT_BITS": "100", "MAX_BITS": "64"},
			want: [4]int{8, 64, 10, 50},
		},
		{
			name: "zero max",
			env:  map[string]string{"MAX_BITS": "0", "MAX_COUNT": "-3"},
			want: [4]int{8, 64, 10, 50},
		},
		{
			name: "fallback default clamped to small max",
			env:  map[string]string{"MAX_BITS": "4", "DEFAULT_BITS": "0", "MAX_COUNT": "3", "DEFAULT_COUNT": "9"},
			want: [4]int{4, 4, 3, 3},
		},
		{
			name: "valid values kept",
			env:  map[string]string{"MAX_BITS": "20", "DEFAULT_BITS": "20", "MAX_COUNT": "5", "DEFAULT_COUNT": "1"},
			want: [4]int{20, 20, 1, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DEFAULT_BITS", "MAX_BITS", "DEFAULT_COUNT", "MAX_COUNT"} {
				t.Setenv(key, tt.env[key])
			}

			cfg := Load()

			got := [4]int{cfg.DefaultBits, cfg.MaxBits, cfg.DefaultCount, cfg.MaxCount}
			if got != tt.want {
				t.Errorf("limits = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
