package config

import (
	"time"
)

// ShutdownConfig содержит настройки корректного завершения работы.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"NOTEFUL_SHUTDOWN_TIMEOUT" env-default:"10"`
}

// GetTimeout возвращает таймаут завершения как time.Duration.
func (s *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}
