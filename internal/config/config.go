package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	DatabasePath      string        `mapstructure:"database_path" yaml:"database_path"`
	UploadDir         string        `mapstructure:"upload_dir" yaml:"upload_dir"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	JWTSecret         string        `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	JWTIssuer         string        `mapstructure:"jwt_issuer" yaml:"jwt_issuer"`
	JWTAudience       string        `mapstructure:"jwt_audience" yaml:"jwt_audience"`
	// WSMessageLimit caps inbound WebSocket events per connection per
	// minute. Zero disables the limit.
	WSMessageLimit int `mapstructure:"ws_message_limit" yaml:"ws_message_limit"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		DatabasePath:      "bidchat.db",
		UploadDir:         "uploads",
		LogLevel:          "info",
		JWTSecret:         "change-me",
		JWTIssuer:         "bidchat",
		JWTAudience:       "bidchat",
		WSMessageLimit:    0,
	}
}
