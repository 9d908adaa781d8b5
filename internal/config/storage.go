package config

import "sync"

type StorageConfig struct {
	ReportsDir  string
	ReceivedDir string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		v := newEnv(map[string]any{
			"REPORTS_DIR":  "./reports",
			"RECEIVED_DIR": "./received_reports",
		})
		storageConfig = &StorageConfig{
			ReportsDir:  v.GetString("REPORTS_DIR"),
			ReceivedDir: v.GetString("RECEIVED_DIR"),
		}
	})
	return storageConfig
}
