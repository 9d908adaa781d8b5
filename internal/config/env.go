package config

import "github.com/spf13/viper"

// newEnv returns a viper instance reading straight from the process
// environment, with the given defaults applied.
func newEnv(defaults map[string]any) *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}
