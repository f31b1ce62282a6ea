package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/nogi-trainer/internal/data/db"
	"github.com/yungbote/nogi-trainer/internal/platform/envutil"
)

const (
	CommentStorePostgres = "postgres"
	CommentStoreSQLite   = "sqlite"
	CommentStoreRedis    = "redis"
)

// Duration decodes "15s" style strings or bare integers as seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	s := strings.TrimSpace(node.Value)
	if s == "" {
		d.Duration = 0
		return nil
	}
	if dd, err := time.ParseDuration(s); err == nil {
		d.Duration = dd
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("duration must be like \"5s\" or whole seconds: %q", s)
	}
	d.Duration = time.Duration(n) * time.Second
	return nil
}

type HTTPConfig struct {
	Port              string   `yaml:"port"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	ReadTimeout       Duration `yaml:"read_timeout"`
	WriteTimeout      Duration `yaml:"write_timeout"`
	IdleTimeout       Duration `yaml:"idle_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`
	CORSAllowOrigins  []string `yaml:"cors_allow_origins"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type OtelSettings struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	Headers     string  `yaml:"headers"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type Config struct {
	LogMode        string            `yaml:"log_mode"`
	ServiceName    string            `yaml:"service_name"`
	Version        string            `yaml:"version"`
	HTTP           HTTPConfig        `yaml:"http"`
	CommentStore   string            `yaml:"comment_store"`
	Postgres       db.PostgresConfig `yaml:"postgres"`
	SQLitePath     string            `yaml:"sqlite_path"`
	Redis          RedisConfig       `yaml:"redis"`
	MetricsEnabled bool              `yaml:"metrics_enabled"`
	Otel           OtelSettings      `yaml:"otel"`
}

func defaultConfig() Config {
	return Config{
		LogMode:     "development",
		ServiceName: "nogi-trainer",
		HTTP: HTTPConfig{
			Port:              "3000",
			ReadHeaderTimeout: Duration{5 * time.Second},
			ReadTimeout:       Duration{15 * time.Second},
			WriteTimeout:      Duration{15 * time.Second},
			IdleTimeout:       Duration{2 * time.Minute},
			ShutdownTimeout:   Duration{15 * time.Second},
		},
		CommentStore: CommentStorePostgres,
		Postgres: db.PostgresConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "nogi_trainer",
			SSLMode: "disable",
		},
		SQLitePath: "trainer.db",
		Redis: RedisConfig{
			Addr:   "",
			Prefix: "nogi",
		},
		Otel: OtelSettings{SampleRatio: 1},
	}
}

// LoadConfig builds the server config from defaults, then the optional YAML
// file named by TRAINER_CONFIG_PATH, then the environment.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := strings.TrimSpace(os.Getenv("TRAINER_CONFIG_PATH")); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.ServiceName)
	cfg.Version = envutil.String("SERVICE_VERSION", cfg.Version)

	cfg.HTTP.Port = envutil.String("PORT", cfg.HTTP.Port)
	cfg.HTTP.ReadHeaderTimeout.Duration = envutil.Duration("HTTP_READ_HEADER_TIMEOUT", cfg.HTTP.ReadHeaderTimeout.Duration)
	cfg.HTTP.ReadTimeout.Duration = envutil.Duration("HTTP_READ_TIMEOUT", cfg.HTTP.ReadTimeout.Duration)
	cfg.HTTP.WriteTimeout.Duration = envutil.Duration("HTTP_WRITE_TIMEOUT", cfg.HTTP.WriteTimeout.Duration)
	cfg.HTTP.IdleTimeout.Duration = envutil.Duration("HTTP_IDLE_TIMEOUT", cfg.HTTP.IdleTimeout.Duration)
	cfg.HTTP.ShutdownTimeout.Duration = envutil.Duration("HTTP_SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout.Duration)
	cfg.HTTP.CORSAllowOrigins = envutil.List("CORS_ALLOW_ORIGINS", cfg.HTTP.CORSAllowOrigins)

	cfg.CommentStore = strings.ToLower(envutil.String("COMMENT_STORE", cfg.CommentStore))

	cfg.Postgres.Host = envutil.String("POSTGRES_HOST", cfg.Postgres.Host)
	cfg.Postgres.Port = envutil.String("POSTGRES_PORT", cfg.Postgres.Port)
	cfg.Postgres.User = envutil.String("POSTGRES_USER", cfg.Postgres.User)
	cfg.Postgres.Password = envutil.String("POSTGRES_PASSWORD", cfg.Postgres.Password)
	cfg.Postgres.Name = envutil.String("POSTGRES_NAME", cfg.Postgres.Name)
	cfg.Postgres.SSLMode = envutil.String("POSTGRES_SSLMODE", cfg.Postgres.SSLMode)
	cfg.SQLitePath = envutil.String("SQLITE_PATH", cfg.SQLitePath)

	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envutil.String("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = envutil.Int("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.Prefix = envutil.String("REDIS_PREFIX", cfg.Redis.Prefix)

	cfg.MetricsEnabled = envutil.Bool("METRICS_ENABLED", cfg.MetricsEnabled)

	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure)
	cfg.Otel.Headers = envutil.String("OTEL_EXPORTER_OTLP_HEADERS", cfg.Otel.Headers)
	if v := strings.TrimSpace(os.Getenv("OTEL_SAMPLER_RATIO")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Otel.SampleRatio = f
		}
	}

	if strings.TrimSpace(cfg.HTTP.Port) == "" {
		cfg.HTTP.Port = "3000"
	}
	if cfg.HTTP.ShutdownTimeout.Duration <= 0 {
		cfg.HTTP.ShutdownTimeout = Duration{15 * time.Second}
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.HTTP.Port, ":")
}
