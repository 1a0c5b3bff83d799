package internal

import "time"

// Config is the full runtime configuration, loaded from the
// environment at startup. Every field is required unless it carries a
// default; a missing variable fails the boot.
type Config struct {
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath   string `env:"BADGER_FILEPATH,required=true"`
	ProjectCacheSize int    `env:"PROJECT_CACHE_SIZE,default=128"`

	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT,default=30s"`
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT,default=10s"`

	RedisAddr      string        `env:"REDIS_ADDR"`
	PublishEnabled bool          `env:"PUBLISH_ENABLED,default=false"`
	PublishStream  string        `env:"PUBLISH_STREAM,default=predictions"`
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT,default=5s"`

	APIKeyHash        string        `env:"API_KEY_HASH,required=true"`
	AuthTokenSecret   string        `env:"AUTH_TOKEN_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}
