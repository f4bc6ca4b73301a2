package config

import (
	"time"
)

// JWTConfig содержит настройки выпуска токенов доступа.
type JWTConfig struct {
	Secret   string        `yaml:"secret" env:"NOTEFUL_JWT_SECRET" env-default:"noteful-dev-secret"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"NOTEFUL_JWT_TOKEN_TTL" env-default:"24h"`
}
