package config

import (
	"noteful/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Mode  string `yaml:"mode" env:"NOTEFUL_LOG_MODE" env-default:"development"`
	Level string `yaml:"level" env:"NOTEFUL_LOG_LEVEL" env-default:"info"`
}

// GetEnvironment возвращает окружение логгера исходя из режима.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}

	return logger.Development
}
