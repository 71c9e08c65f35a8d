package config

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/praxisgrc/praxis/pkg/logger"
)

// LoadConfig loads the configuration from file and environment variables.
// File keys can be overridden with PRAXIS_-prefixed environment variables,
// e.g. PRAXIS_DATABASE_HOST.
func LoadConfig(log logger.Logger) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/praxis/")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file is fine: defaults plus environment cover local runs.
	}

	v.SetEnvPrefix("PRAXIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Reload the log level on config file edits without a restart. The running
	// logger picks up the change through the hook registered with
	// Config.OnLogLevelChange.
	v.OnConfigChange(func(e fsnotify.Event) {
		level := v.GetString("log.level")
		cfg.Log.Level = level
		cfg.notifyLogLevel(level)
		log.Info(context.Background(), "configuration file changed",
			logger.Fields{"file": e.Name, "log_level": level})
	})
	v.WatchConfig()

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.pprof_enabled", false)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "praxis")
	v.SetDefault("database.database", "praxis")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", 60)
	v.SetDefault("database.max_conn_idle_time", 10)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.topic", "praxis.analytics.events")

	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.mount_path", "secret")
	v.SetDefault("vault.secret_key", "praxis/database")

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.issuer", "praxis-identity")

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_minute", 120)
	v.SetDefault("rate_limit.burst", 20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "praxis-analytics")
	v.SetDefault("tracing.sample_ratio", 0.1)
}
