package config

import (
	"strings"
	"sync"
	"time"
)

// AuditorConfig points the field service at the auditor's receive endpoint,
// e.g. AUDITOR_ENDPOINT=http://127.0.0.1:5001/api/receive_report.
// An empty endpoint disables forwarding.
type AuditorConfig struct {
	Endpoint string
	Timeout  time.Duration
}

var (
	auditorConfig *AuditorConfig
	auditorOnce   sync.Once
)

func LoadAuditorConfig() *AuditorConfig {
	auditorOnce.Do(func() {
		v := newEnv(map[string]any{
			"AUDITOR_TIMEOUT": "5s",
		})
		auditorConfig = &AuditorConfig{
			Endpoint: strings.TrimSpace(v.GetString("AUDITOR_ENDPOINT")),
			Timeout:  v.GetDuration("AUDITOR_TIMEOUT"),
		}
	})
	return auditorConfig
}
