// Package config loads the process configuration: defaults, then an optional
// config file, then IMGFIT_* environment variables. The result is a plain
// struct built once at startup and passed down; nothing reads configuration
// implicitly after that.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/imgfit/imgfit/internal/errs"
	"github.com/imgfit/imgfit/internal/objstore"
)

// Config is the full process configuration.
type Config struct {
	Server ServerConfig
	Store  objstore.Config
	Log    LogConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string

	// ShutdownTimeout bounds the drain period on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// Load reads configuration. path names an optional config file (YAML/TOML);
// pass "" to use only defaults and environment. Store credentials are
// expected from the environment: IMGFIT_STORE_ACCESS_KEY and
// IMGFIT_STORE_SECRET_KEY.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("store.endpoint", "localhost:9000")
	v.SetDefault("store.access_key", "")
	v.SetDefault("store.secret_key", "")
	v.SetDefault("store.use_ssl", false)
	v.SetDefault("store.region", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix("IMGFIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errs.Wrap(errs.ErrKindInvalidInput, "cannot read config file "+path, err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Store: objstore.Config{
			Endpoint:  v.GetString("store.endpoint"),
			AccessKey: v.GetString("store.access_key"),
			SecretKey: v.GetString("store.secret_key"),
			UseSSL:    v.GetBool("store.use_ssl"),
			Region:    v.GetString("store.region"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}, nil
}
