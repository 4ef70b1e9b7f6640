package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	_defaultHTTPAddr       = ":3000"
	_defaultPurgeSchedule  = "0 3 * * *"
	_defaultPurgeRetention = 30 * 24 * time.Hour
	_defaultPurgeTick      = time.Minute
	_defaultOTelEndpoint   = "localhost:4317"
)

var configName = "server"
var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("inventory_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName(configName)
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")

		viper.SetDefault("general.log_level", "info")
		viper.SetDefault("general.environment", "production")
		viper.SetDefault("http.addr", _defaultHTTPAddr)
		viper.SetDefault("database.driver", "postgres")
		viper.SetDefault("purge.schedule", _defaultPurgeSchedule)
		viper.SetDefault("purge.retention", _defaultPurgeRetention)
		viper.SetDefault("purge.tick", _defaultPurgeTick)
		viper.SetDefault("telemetry.enabled", true)
		viper.SetDefault("telemetry.endpoint", _defaultOTelEndpoint)

		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel:    viper.GetString("general.log_level"),
				Environment: viper.GetString("general.environment"),
			},
			HTTP: HTTPConfig{
				Addr:           viper.GetString("http.addr"),
				AllowedOrigins: viper.GetStringSlice("http.allowed_origins"),
			},
			Database: DatabaseConfig{
				Driver: viper.GetString("database.driver"),
				DSN:    viper.GetString("database.dsn"),
			},
			Kafka: KafkaConfig{
				Brokers:        viper.GetStringSlice("kafka.brokers"),
				SchemaRegistry: viper.GetString("kafka.schema_registry"),
			},
			Purge: PurgeConfig{
				Schedule:  viper.GetString("purge.schedule"),
				Retention: viper.GetDuration("purge.retention"),
				Tick:      viper.GetDuration("purge.tick"),
			},
			Telemetry: TelemetryConfig{
				Enabled:  viper.GetBool("telemetry.enabled"),
				Endpoint: viper.GetString("telemetry.endpoint"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General   GeneralConfig
	HTTP      HTTPConfig
	Database  DatabaseConfig
	Kafka     KafkaConfig
	Purge     PurgeConfig
	Telemetry TelemetryConfig
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
}

// IsLocal reports whether the server runs against in-memory infrastructure.
func (c GeneralConfig) IsLocal() bool {
	return c.Environment == "local"
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

// DatabaseConfig selects the storage backend. Driver "sqlite" keeps
// everything in memory, anything else opens DSN with postgres.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

type KafkaConfig struct {
	Brokers        []string
	SchemaRegistry string
}

type PurgeConfig struct {
	Schedule  string
	Retention time.Duration
	Tick      time.Duration
}

// TelemetryConfig points the OTLP exporters at a collector. With Enabled
// false traces and metrics stay in the no-op providers.
type TelemetryConfig struct {
	Enabled  bool
	Endpoint string
}
