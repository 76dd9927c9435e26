package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Tier groups endpoints that share one bucket per client
type Tier struct {
	Name    string
	Methods []string // empty matches every method
	Prefix  string   // path prefix; a trailing "/" matches sub-paths only
	Limit   int      // requests per window; 0 means unlimited
	Window  time.Duration
	Burst   int // defaults to Limit when 0
}

// Config holds rate limiter settings
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Tiers           []Tier
}

// LoadConfig reads the rate limiter settings from RATE_LIMIT_* variables
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		Tiers:           DefaultTiers(),
	}
}

// DefaultTiers returns the built-in endpoint tiers, most specific first.
func DefaultTiers() []Tier {
	writes := []string{"POST", "PUT", "PATCH", "DELETE"}
	return []Tier{
		{Name: "health", Prefix: "/health", Methods: []string{"GET"}},
		// PDF export launches a headless browser
		{Name: "pdf", Prefix: "/resume/export.pdf", Limit: 20, Window: time.Hour, Burst: 3},
		// a drag emits one move per pointer frame
		{Name: "drag", Prefix: "/resume/drag/", Methods: []string{"POST"}, Limit: 3000, Window: time.Minute, Burst: 120},
		{Name: "render", Prefix: "/resume/render", Methods: []string{"GET"}, Limit: 240, Window: time.Minute, Burst: 20},
		{Name: "write", Prefix: "/resume", Methods: writes, Limit: 300, Window: time.Minute, Burst: 30},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
