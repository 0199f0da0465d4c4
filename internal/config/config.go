package config

import (
	"net"
	"time"

	"github.com/kickoffqi/demo-app-platform/internal/envconfig"
)

const (
	// DefaultServiceName identifies the application in every response.
	DefaultServiceName = "demo-app"
	// DefaultVersion is the build label reported by /health.
	DefaultVersion = "beta-test-3"
)

type Config struct {
	BindAddr        string        `validate:"required,ip"`
	Port            string        `validate:"required,numeric"`
	ServiceName     string        `validate:"required"`
	Version         string        `validate:"required"`
	LogLevel        string        `validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	Host            HostConfig
}

type HostConfig struct {
	Mode    string `validate:"required,oneof=request process"`
	PodName string
}

func Load() (Config, error) {
	shutdown, err := envconfig.GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BindAddr:        envconfig.Get("BIND_ADDR", "0.0.0.0"),
		Port:            envconfig.Get("PORT", "8080"),
		ServiceName:     envconfig.Get("SERVICE_NAME", DefaultServiceName),
		Version:         envconfig.Get("SERVICE_VERSION", DefaultVersion),
		LogLevel:        envconfig.Get("LOG_LEVEL", "info"),
		ShutdownTimeout: shutdown,
		Host: HostConfig{
			Mode:    envconfig.Get("HOSTNAME_MODE", "request"),
			PodName: envconfig.Get("POD_NAME", ""),
		},
	}
	return cfg, envconfig.Validate(cfg)
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.BindAddr, c.Port)
}
