package config

import (
	"sync"
	"time"
)

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

var (
	rateLimitConfig *RateLimitConfig
	rateLimitOnce   sync.Once
)

func LoadRateLimitConfig() *RateLimitConfig {
	rateLimitOnce.Do(func() {
		v := newEnv(map[string]any{
			"RATE_LIMIT_MAX":    50,
			"RATE_LIMIT_WINDOW": "1m",
		})
		rateLimitConfig = &RateLimitConfig{
			Max:    v.GetInt("RATE_LIMIT_MAX"),
			Window: v.GetDuration("RATE_LIMIT_WINDOW"),
		}
	})
	return rateLimitConfig
}
