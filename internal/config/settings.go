package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// ApplicationPublicKey is the hex encoded Ed25519 key the chat platform signs interactions with.
	ApplicationPublicKey string `env:"APPLICATION_PUBLIC_KEY"`
	// ReplayWindow rejects a signature seen again within the window. Zero disables the check.
	ReplayWindow time.Duration `env:"REPLAY_WINDOW"`
	// MaxTimestampSkew rejects timestamps further than this from now. Zero disables the check.
	MaxTimestampSkew time.Duration `env:"MAX_TIMESTAMP_SKEW"`
}

// SetDefaults fills zero values that have a sensible default.
func (s *Settings) SetDefaults() {
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.MonPort == 0 {
		s.MonPort = 8888
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "interactions-api"
	}
}
