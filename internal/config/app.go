package config

import (
	"sync"

	logger "github.com/Bparsons0904/goLogger"
)

type AppConfig struct {
	Name string
	Env  string
	Port string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		v := newEnv(map[string]any{
			"APP_NAME": "room-cleaning-report",
		})
		env := v.GetString("APP_ENV")
		if env == "" {
			env = "development"
			logger.New("config").Function("LoadAppConfig").
				Warn("APP_ENV not set, using default", "env", env)
		}
		appConfig = &AppConfig{
			Name: v.GetString("APP_NAME"),
			Env:  env,
			Port: v.GetString("APP_PORT"),
		}
	})
	return appConfig
}

// IsProduction reports whether stack traces and dev messages must be hidden.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
