package configs

import (
	"weather-app/pkg/resource"
)

// EnvConfig holds the settings read straight from the environment, before any properties file
type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	Env = &EnvConfig{
		ApplicationName: resource.GetEnvOrDefault("APPLICATION_NAME", "weather-api"),
		ContextPath:     resource.GetEnvOrDefault("CONTEXT_PATH", ""),
	}
}
